// Package behavior implements the element lifecycle contract and the
// sequential composite that drives a robot's motion-control layer.
package behavior

import (
	"errors"

	"kinesis/internal/model"
	"kinesis/internal/services"
)

// Element is the minimal unit of behavior. The caller exclusively owns the
// call sequence: Initialize exactly once, Tick while the previous status
// was running, then Finalize exactly once. After Finalize the instance is
// reset and may be initialized again, which supports reusing the same
// behavior across iterations of an outer control loop.
type Element interface {
	Initialize(svc services.Services) (model.ElementMeta, error)
	Tick(sense model.SenseInfo) (model.Outcome, error)
	Finalize() error
}

// Call-order violations are caller bugs. They are reported through these
// sentinels so misuse is detectable, but the core performs no recovery.
var (
	ErrNotInitialized     = errors.New("element not initialized")
	ErrAlreadyInitialized = errors.New("element already initialized")
	ErrAwaitingFinalize   = errors.New("element ticked after terminal outcome")
	ErrInvalidConfig      = errors.New("invalid element configuration")
)
