package behavior

import (
	"fmt"

	"kinesis/internal/model"
	"kinesis/internal/reaction"
	"kinesis/internal/services"
)

// MotionSpec is the required configuration and control law of a leaf
// actuation element. Name must be non-empty and ReactionDefs must declare
// every category explicitly; both are validated when the Motion wrapper is
// constructed, before any tick can run.
type MotionSpec interface {
	Name() string
	ReactionDefs() reaction.Defs
	Tick(sense model.SenseInfo) model.Outcome
}

// DataInitializer is an optional spec capability run exactly once, on the
// first tick after initialize. Sensed state is unavailable inside
// Initialize itself, which is why the hook is deferred to the first tick.
type DataInitializer interface {
	DataInitialize(sense model.SenseInfo)
}

// Finalizer is an optional spec capability for cleanup, run before the
// reaction mask is released.
type Finalizer interface {
	Finalize()
}

// ServicesBinder is an optional spec capability that receives the
// collaborator bundle during initialize, for bodies that emit diagnostics.
type ServicesBinder interface {
	BindServices(svc services.Services)
}

type motionPhase int

const (
	phaseIdle motionPhase = iota
	phaseActive
	phaseTerminal
)

// Motion implements the Element lifecycle for a leaf actuation body. It
// activates the body's reaction mask for the element's entire active
// lifetime and releases the identical mask at finalize.
type Motion struct {
	spec      MotionSpec
	mask      reaction.Mask
	svc       services.Services
	firstTick bool
	phase     motionPhase
}

// NewMotion validates the spec's static configuration and wraps it.
// An unset name or a reaction category left at the required sentinel is a
// wiring error surfaced here, never at tick time.
func NewMotion(spec MotionSpec) (*Motion, error) {
	if spec.Name() == "" {
		return nil, fmt.Errorf("%w: motion element name is required", ErrInvalidConfig)
	}
	if err := spec.ReactionDefs().Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, spec.Name(), err)
	}
	return &Motion{spec: spec, mask: spec.ReactionDefs().Mask()}, nil
}

func (m *Motion) Initialize(svc services.Services) (model.ElementMeta, error) {
	if m.phase != phaseIdle {
		return model.ElementMeta{}, fmt.Errorf("%s: %w", m.spec.Name(), ErrAlreadyInitialized)
	}

	// reset internal state for continued reuse of the instance
	m.firstTick = true
	m.svc = svc
	m.phase = phaseActive

	if binder, ok := m.spec.(ServicesBinder); ok {
		binder.BindServices(svc)
	}

	// suppress the declared reflex categories for the element's lifetime
	m.svc.Reaction.Activate(m.mask)

	return model.ElementMeta{Name: m.spec.Name()}, nil
}

func (m *Motion) Tick(sense model.SenseInfo) (model.Outcome, error) {
	switch m.phase {
	case phaseIdle:
		return model.Outcome{}, fmt.Errorf("%s: %w", m.spec.Name(), ErrNotInitialized)
	case phaseTerminal:
		return model.Outcome{}, fmt.Errorf("%s: %w", m.spec.Name(), ErrAwaitingFinalize)
	}

	if m.firstTick {
		m.firstTick = false
		if init, ok := m.spec.(DataInitializer); ok {
			init.DataInitialize(sense)
		}
	}

	out := m.spec.Tick(sense)
	if out.Status.Terminal() {
		m.phase = phaseTerminal
	}
	return out, nil
}

func (m *Motion) Finalize() error {
	if m.phase == phaseIdle {
		return fmt.Errorf("%s: %w", m.spec.Name(), ErrNotInitialized)
	}

	if fin, ok := m.spec.(Finalizer); ok {
		fin.Finalize()
	}

	// release exactly the mask activated at initialize
	m.svc.Reaction.Release(m.mask)
	m.phase = phaseIdle
	return nil
}
