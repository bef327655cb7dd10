//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"kinesis/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "kinesis.db"))
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestSQLiteStoreRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	input := testRun("run-1", time.Now().UTC())
	if err := store.SaveRun(ctx, input); err != nil {
		t.Fatalf("save run: %v", err)
	}

	output, ok, err := store.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted run")
	}
	if output.Behavior != input.Behavior || output.Ticks != input.Ticks {
		t.Fatalf("unexpected run: %+v", output)
	}

	// upsert keeps a single row per run
	input.Status = "fail"
	if err := store.SaveRun(ctx, input); err != nil {
		t.Fatalf("save run again: %v", err)
	}
	output, _, err = store.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if output.Status != "fail" {
		t.Fatalf("upsert not applied: %+v", output)
	}
}

func TestSQLiteStoreListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	base := time.Now().UTC()
	for i, id := range []string{"run-a", "run-b", "run-c"} {
		if err := store.SaveRun(ctx, testRun(id, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	runs, err := store.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("limit not applied: %d", len(runs))
	}
	if runs[0].RunID != "run-c" || runs[1].RunID != "run-b" {
		t.Fatalf("unexpected order: %s %s", runs[0].RunID, runs[1].RunID)
	}
}

func TestSQLiteStoreTickTraceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	input := model.TickTrace{
		VersionedRecord: Versioned(),
		RunID:           "run-1",
		Ticks: []model.TickRecord{
			{Seq: 1, Status: "running", Velocity: 1, Timestamp: time.Now().UTC()},
		},
	}
	if err := store.SaveTickTrace(ctx, input); err != nil {
		t.Fatalf("save trace: %v", err)
	}

	output, ok, err := store.GetTickTrace(ctx, "run-1")
	if err != nil {
		t.Fatalf("get trace: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted trace")
	}
	if len(output.Ticks) != 1 || output.Ticks[0].Status != "running" {
		t.Fatalf("unexpected trace: %+v", output)
	}
}

func TestSQLiteStoreRequiresPath(t *testing.T) {
	store := NewSQLiteStore("")
	if err := store.Init(context.Background()); err == nil {
		t.Fatal("expected missing path error")
	}
}
