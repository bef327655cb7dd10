package storage

import (
	"context"

	"kinesis/internal/model"
)

// Store persists run summaries and tick traces recorded by the executor.
// Behavior-tree state itself is never persisted; only observability data
// about completed or in-flight runs lands here.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run model.RunRecord) error
	GetRun(ctx context.Context, runID string) (model.RunRecord, bool, error)
	ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error)
	SaveTickTrace(ctx context.Context, trace model.TickTrace) error
	GetTickTrace(ctx context.Context, runID string) (model.TickTrace, bool, error)
}
