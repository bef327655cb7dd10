// Package motion provides the concrete leaf elements of the motion layer.
package motion

import (
	"math"

	"kinesis/internal/behavior"
	"kinesis/internal/model"
	"kinesis/internal/reaction"
)

// stopVelocityTolerance is the measured-velocity magnitude below which the
// robot counts as stopped.
const stopVelocityTolerance = 1e-9

// Stop commands the robot to stop its motion. The element does not
// complete until motion has stopped.
type Stop struct{}

// NewStop returns the stop element wrapped in the standard motion
// lifecycle. Both reflex categories stay suppressed while stopping.
func NewStop() (*behavior.Motion, error) {
	return behavior.NewMotion(&Stop{})
}

func (*Stop) Name() string { return "Stop" }

func (*Stop) ReactionDefs() reaction.Defs {
	return reaction.Defs{
		KneeJerk: reaction.DefEnabled,
		Flinch:   reaction.DefEnabled,
	}
}

func (*Stop) Tick(sense model.SenseInfo) model.Outcome {
	out := model.Outcome{Status: model.StatusRunning}
	if math.Abs(sense.MeasuredVelocity) <= stopVelocityTolerance {
		out.Status = model.StatusSuccess
	}
	out.Actuate.Velocity = 0
	return out
}
