// Package exec provides the reference driver for behavior elements: a
// fixed-period tick loop with a simulated sensor feedback path.
package exec

import (
	"context"
	"time"

	"github.com/google/uuid"

	"kinesis/internal/behavior"
	"kinesis/internal/model"
	"kinesis/internal/services"
	"kinesis/internal/storage"
)

// DefaultPeriod is the tick period used when none is configured.
const DefaultPeriod = 100 * time.Millisecond

// Feedback advances the sensed state after a tick's actuation command has
// been applied. The reference implementation simulates walking; tests and
// demos can script sensor evolution instead.
type Feedback func(seq int, out model.Outcome, sense *model.SenseInfo)

// WalkingFeedback integrates the commanded velocity over one period and
// reflects it back as the measured velocity.
func WalkingFeedback(period time.Duration) Feedback {
	return func(_ int, out model.Outcome, sense *model.SenseInfo) {
		sense.MeasuredX += out.Actuate.Velocity * period.Seconds()
		sense.MeasuredVelocity = out.Actuate.Velocity
	}
}

type Config struct {
	Period   time.Duration
	Services services.Services
	Store    storage.Store // optional: record run summary and tick trace
	Feedback Feedback      // optional: defaults to WalkingFeedback
	RunID    string        // optional: generated when empty
}

type Executor struct {
	cfg Config
}

func New(cfg Config) *Executor {
	if cfg.Period <= 0 {
		cfg.Period = DefaultPeriod
	}
	if cfg.Services.Messenger == nil || cfg.Services.Reaction == nil {
		def := services.Defaults()
		if cfg.Services.Messenger == nil {
			cfg.Services.Messenger = def.Messenger
		}
		if cfg.Services.Reaction == nil {
			cfg.Services.Reaction = def.Reaction
		}
	}
	if cfg.Feedback == nil {
		cfg.Feedback = WalkingFeedback(cfg.Period)
	}
	return &Executor{cfg: cfg}
}

// Result summarizes a completed (or cancelled) run.
type Result struct {
	RunID     string
	Behavior  string
	Final     model.Outcome
	Ticks     int
	StartedAt time.Time
	EndedAt   time.Time
}

// Run drives the element to completion: initialize, tick at the fixed
// period while the outcome is running, then finalize. Finalize is always
// invoked once the element was initialized, even on cancellation or a
// call-order error, so the element's reaction mask is released.
func (e *Executor) Run(ctx context.Context, el behavior.Element) (Result, error) {
	runID := e.cfg.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	svc := e.cfg.Services
	sense := model.SenseInfo{Timestamp: time.Now()}

	res := Result{RunID: runID, StartedAt: time.Now()}

	meta, err := el.Initialize(svc)
	if err != nil {
		return res, err
	}
	res.Behavior = meta.Name
	svc.Messenger.Notify(meta.Name, "initialize")

	var (
		trace   []model.TickRecord
		out     model.Outcome
		tickErr error
		seq     int
	)

	ticker := time.NewTicker(e.cfg.Period)
	defer ticker.Stop()

loop:
	for {
		sense.Timestamp = time.Now()
		svc.Messenger.Notify(meta.Name, "tick")
		out, tickErr = el.Tick(sense)
		if tickErr != nil {
			break
		}
		seq++

		trace = append(trace, model.TickRecord{
			Seq:              seq,
			Status:           out.Status.String(),
			Velocity:         out.Actuate.Velocity,
			MeasuredX:        sense.MeasuredX,
			MeasuredVelocity: sense.MeasuredVelocity,
			KneeJerking:      sense.IsKneeJerking,
			Timestamp:        sense.Timestamp,
		})

		e.cfg.Feedback(seq, out, &sense)

		if out.Status.Terminal() {
			break
		}
		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
		}
	}

	finErr := el.Finalize()
	svc.Messenger.Notify(meta.Name, "finalize")

	res.Final = out
	res.Ticks = seq
	res.EndedAt = time.Now()

	switch {
	case tickErr != nil:
		return res, tickErr
	case finErr != nil:
		return res, finErr
	}

	status := out.Status.String()
	if ctx.Err() != nil && !out.Status.Terminal() {
		status = "cancelled"
	}
	if err := e.record(res, status, trace); err != nil {
		return res, err
	}
	if ctx.Err() != nil && !out.Status.Terminal() {
		return res, ctx.Err()
	}
	return res, nil
}

func (e *Executor) record(res Result, status string, trace []model.TickRecord) error {
	if e.cfg.Store == nil {
		return nil
	}
	ctx := context.Background()
	run := model.RunRecord{
		VersionedRecord: storage.Versioned(),
		RunID:           res.RunID,
		Behavior:        res.Behavior,
		Status:          status,
		Ticks:           res.Ticks,
		StartedAt:       res.StartedAt,
		EndedAt:         res.EndedAt,
	}
	if err := e.cfg.Store.SaveRun(ctx, run); err != nil {
		return err
	}
	return e.cfg.Store.SaveTickTrace(ctx, model.TickTrace{
		VersionedRecord: storage.Versioned(),
		RunID:           res.RunID,
		Ticks:           trace,
	})
}
