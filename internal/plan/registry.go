package plan

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"kinesis/internal/behavior"
)

var (
	ErrElementExists   = errors.New("element type already registered")
	ErrElementNotFound = errors.New("element type not found")
)

// ElementFactory builds an element from the params block of a plan entry.
type ElementFactory func(params map[string]any) (behavior.Element, error)

// ElementSpec registers a buildable element type.
type ElementSpec struct {
	Type    string
	Factory ElementFactory
}

var (
	registryMu sync.RWMutex
	registry   = map[string]ElementFactory{}
)

// RegisterElement makes an element type available to plan building.
// Concrete element packages register themselves at init time.
func RegisterElement(spec ElementSpec) error {
	if spec.Type == "" {
		return fmt.Errorf("element type is required")
	}
	if spec.Factory == nil {
		return fmt.Errorf("element factory is required: %s", spec.Type)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registry[spec.Type]; ok {
		return fmt.Errorf("%w: %s", ErrElementExists, spec.Type)
	}
	registry[spec.Type] = spec.Factory
	return nil
}

// MustRegisterElement panics on registration failure; for init-time use.
func MustRegisterElement(spec ElementSpec) {
	if err := RegisterElement(spec); err != nil {
		panic(err)
	}
}

func lookupElement(typ string) (ElementFactory, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := registry[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, typ)
	}
	return factory, nil
}

// RegisteredElementTypes lists the registered types in sorted order.
func RegisteredElementTypes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	types := make([]string, 0, len(registry))
	for typ := range registry {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}
