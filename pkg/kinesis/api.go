// Package kinesis is the public client surface over the behavior execution
// core: build a behavior from a plan (or the default walk-then-stop
// sequence), drive it with the reference executor, and inspect recorded
// runs.
package kinesis

import (
	"context"
	"fmt"
	"io"
	"time"

	"kinesis/internal/behavior"
	"kinesis/internal/exec"
	"kinesis/internal/motion"
	"kinesis/internal/plan"
	"kinesis/internal/services"
	"kinesis/internal/storage"
)

const defaultGoalX = 4.0

type Options struct {
	StoreKind string // memory|sqlite; empty means memory
	DBPath    string
}

type Client struct {
	store storage.Store
}

func New(ctx context.Context, opts Options) (*Client, error) {
	store, err := storage.NewStore(opts.StoreKind, opts.DBPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		return nil, err
	}
	return &Client{store: store}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

type RunRequest struct {
	PlanPath string        // plan document; empty builds the default behavior
	GoalX    float64       // goal for the default behavior; 0 means 4.0 m
	Period   time.Duration // tick period; 0 means the executor default
	Log      io.Writer     // diagnostic sink; nil discards notifications
}

type RunSummary struct {
	RunID    string
	Behavior string
	Status   string
	Ticks    int
	Duration time.Duration
}

func (c *Client) Run(ctx context.Context, req RunRequest) (RunSummary, error) {
	name, element, err := buildBehavior(req)
	if err != nil {
		return RunSummary{}, err
	}

	svc := services.Defaults()
	if req.Log != nil {
		svc.Messenger = services.NewWriterMessenger(req.Log)
	}

	executor := exec.New(exec.Config{
		Period:   req.Period,
		Services: svc,
		Store:    c.store,
	})

	res, err := executor.Run(ctx, element)
	if err != nil {
		return RunSummary{}, err
	}
	return RunSummary{
		RunID:    res.RunID,
		Behavior: name,
		Status:   res.Final.Status.String(),
		Ticks:    res.Ticks,
		Duration: res.EndedAt.Sub(res.StartedAt),
	}, nil
}

func buildBehavior(req RunRequest) (string, behavior.Element, error) {
	if req.PlanPath != "" {
		p, err := plan.Load(req.PlanPath)
		if err != nil {
			return "", nil, err
		}
		seq, err := p.Build()
		if err != nil {
			return "", nil, err
		}
		return p.Name, seq, nil
	}

	goal := req.GoalX
	if goal == 0 {
		goal = defaultGoalX
	}
	walk, err := motion.NewWalkToPosition(goal)
	if err != nil {
		return "", nil, err
	}
	stop, err := motion.NewStop()
	if err != nil {
		return "", nil, err
	}
	return "walk-then-stop", behavior.NewSequence(walk, stop), nil
}

type RunItem struct {
	RunID        string
	Behavior     string
	Status       string
	Ticks        int
	StartedAtUTC time.Time
	Duration     time.Duration
}

func (c *Client) Runs(ctx context.Context, limit int) ([]RunItem, error) {
	runs, err := c.store.ListRuns(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]RunItem, 0, len(runs))
	for _, run := range runs {
		items = append(items, RunItem{
			RunID:        run.RunID,
			Behavior:     run.Behavior,
			Status:       run.Status,
			Ticks:        run.Ticks,
			StartedAtUTC: run.StartedAt.UTC(),
			Duration:     run.EndedAt.Sub(run.StartedAt),
		})
	}
	return items, nil
}

type TickItem struct {
	Seq              int
	Status           string
	Velocity         float64
	MeasuredX        float64
	MeasuredVelocity float64
	KneeJerking      bool
	Timestamp        time.Time
}

func (c *Client) Trace(ctx context.Context, runID string) ([]TickItem, error) {
	trace, ok, err := c.store.GetTickTrace(ctx, runID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no trace recorded for run %s", runID)
	}
	items := make([]TickItem, 0, len(trace.Ticks))
	for _, tick := range trace.Ticks {
		items = append(items, TickItem{
			Seq:              tick.Seq,
			Status:           tick.Status,
			Velocity:         tick.Velocity,
			MeasuredX:        tick.MeasuredX,
			MeasuredVelocity: tick.MeasuredVelocity,
			KneeJerking:      tick.KneeJerking,
			Timestamp:        tick.Timestamp,
		})
	}
	return items, nil
}
