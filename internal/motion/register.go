package motion

import (
	"fmt"
	"time"

	"kinesis/internal/behavior"
	"kinesis/internal/plan"
)

const (
	StopElementType           = "stop"
	WalkToPositionElementType = "walk_to_position"
)

func init() {
	registerDefaultElements()
}

func registerDefaultElements() {
	plan.MustRegisterElement(plan.ElementSpec{
		Type: StopElementType,
		Factory: func(map[string]any) (behavior.Element, error) {
			return NewStop()
		},
	})
	plan.MustRegisterElement(plan.ElementSpec{
		Type: WalkToPositionElementType,
		Factory: func(params map[string]any) (behavior.Element, error) {
			goal, ok := plan.ParamFloat64(params, "goal")
			if !ok {
				return nil, fmt.Errorf("walk_to_position: goal param is required")
			}
			var opts []WalkOption
			if v, ok := plan.ParamFloat64(params, "velocity"); ok {
				opts = append(opts, WithWalkVelocity(v))
			}
			if v, ok := plan.ParamFloat64(params, "goal_threshold"); ok {
				opts = append(opts, WithGoalThreshold(v))
			}
			if v, ok := plan.ParamInt(params, "timeout_ms"); ok {
				opts = append(opts, WithWalkTimeout(time.Duration(v)*time.Millisecond))
			}
			return NewWalkToPosition(goal, opts...)
		},
	})
}
