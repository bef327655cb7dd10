package motion

import (
	"fmt"
	"math"
	"time"

	"kinesis/internal/behavior"
	"kinesis/internal/model"
	"kinesis/internal/reaction"
	"kinesis/internal/services"
)

const (
	defaultWalkVelocity  = 1.0 // m/s
	defaultGoalThreshold = 0.1 // m
	defaultWalkTimeout   = 60 * time.Second
)

// WalkToPosition walks the robot along the x-axis toward the goal
// coordinate at constant velocity magnitude. It succeeds once the measured
// position is within the goal threshold, fails when the elapsed time since
// the first tick exceeds the timeout, and zeroes its commanded velocity
// while the knee-jerk reflex is in command, deferring to the reflex
// subsystem for that tick only.
type WalkToPosition struct {
	goalX         float64
	velocity      float64
	goalThreshold float64
	timeout       time.Duration

	svc    services.Services
	initTS time.Time
}

// WalkOption overrides one of the walk's default parameters.
type WalkOption func(*WalkToPosition)

func WithWalkVelocity(v float64) WalkOption {
	return func(w *WalkToPosition) { w.velocity = v }
}

func WithGoalThreshold(m float64) WalkOption {
	return func(w *WalkToPosition) { w.goalThreshold = m }
}

func WithWalkTimeout(d time.Duration) WalkOption {
	return func(w *WalkToPosition) { w.timeout = d }
}

// NewWalkToPosition builds the walk element for an absolute goal x
// coordinate in meters, wrapped in the standard motion lifecycle.
func NewWalkToPosition(goalX float64, opts ...WalkOption) (*behavior.Motion, error) {
	w := &WalkToPosition{
		goalX:         goalX,
		velocity:      defaultWalkVelocity,
		goalThreshold: defaultGoalThreshold,
		timeout:       defaultWalkTimeout,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.velocity <= 0 {
		return nil, fmt.Errorf("%w: walk velocity must be > 0", behavior.ErrInvalidConfig)
	}
	if w.goalThreshold <= 0 {
		return nil, fmt.Errorf("%w: goal threshold must be > 0", behavior.ErrInvalidConfig)
	}
	if w.timeout <= 0 {
		return nil, fmt.Errorf("%w: walk timeout must be > 0", behavior.ErrInvalidConfig)
	}
	return behavior.NewMotion(w)
}

func (*WalkToPosition) Name() string { return "WalkToPosition" }

func (*WalkToPosition) ReactionDefs() reaction.Defs {
	return reaction.Defs{
		// flinching while walking is acceptable
		Flinch:   reaction.DefDisabled,
		KneeJerk: reaction.DefEnabled,
	}
}

func (w *WalkToPosition) BindServices(svc services.Services) {
	w.svc = svc
}

func (w *WalkToPosition) DataInitialize(sense model.SenseInfo) {
	w.initTS = sense.Timestamp
}

func (w *WalkToPosition) Tick(sense model.SenseInfo) model.Outcome {
	out := model.Outcome{Status: model.StatusRunning}

	// always command a velocity, even on the terminal tick; the next
	// element takes control without a gap between elements
	distX := w.goalX - sense.MeasuredX
	if distX >= 0 {
		out.Actuate.Velocity = w.velocity
	} else {
		out.Actuate.Velocity = -w.velocity
	}

	switch {
	case math.Abs(distX) < w.goalThreshold:
		w.svc.Messenger.Notify(w.Name(), "goal reached")
		out.Status = model.StatusSuccess
	case sense.Timestamp.Sub(w.initTS) > w.timeout:
		w.svc.Messenger.Notify(w.Name(), "timeout")
		out.Status = model.StatusFail
	case sense.IsKneeJerking:
		// the reflex is in command now; command zero for safety and keep
		// running
		out.Actuate.Velocity = 0
	default:
		w.svc.Messenger.Notify(w.Name(), fmt.Sprintf(
			"velocity=%f pos=%f dist=%f goal=%f",
			out.Actuate.Velocity, sense.MeasuredX, distX, w.goalX))
	}

	return out
}
