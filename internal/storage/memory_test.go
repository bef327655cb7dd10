package storage

import (
	"context"
	"testing"
	"time"

	"kinesis/internal/model"
)

func testRun(runID string, startedAt time.Time) model.RunRecord {
	return model.RunRecord{
		VersionedRecord: Versioned(),
		RunID:           runID,
		Behavior:        "walk-then-stop",
		Status:          "success",
		Ticks:           42,
		StartedAt:       startedAt,
		EndedAt:         startedAt.Add(4 * time.Second),
	}
}

func TestMemoryStoreRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := testRun("run-1", time.Now())
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
	if output.Behavior != "walk-then-stop" || output.Ticks != 42 {
		t.Fatalf("unexpected run: %+v", output)
	}

	_, ok, err = store.GetRun(ctx, "missing")
	if err != nil {
		t.Fatalf("get missing run: %v", err)
	}
	if ok {
		t.Fatal("expected missing run")
	}
}

func TestMemoryStoreListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	base := time.Now()
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

func TestMemoryStoreTickTraceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := model.TickTrace{
		VersionedRecord: Versioned(),
		RunID:           "run-1",
		Ticks: []model.TickRecord{
			{Seq: 1, Status: "running", Velocity: 1, Timestamp: time.Now()},
			{Seq: 2, Status: "success", Velocity: 1, MeasuredX: 0.1, Timestamp: time.Now()},
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
	if len(output.Ticks) != 2 || output.Ticks[1].Status != "success" {
		t.Fatalf("unexpected trace: %+v", output)
	}
}
