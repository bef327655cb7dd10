// Package plan loads declarative behavior plans and builds the sequence
// they describe from registered element factories.
package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"kinesis/internal/behavior"
)

// Plan is a declarative sequential behavior: an ordered list of element
// entries executed as an AND combination.
type Plan struct {
	Name     string         `yaml:"name"`
	Elements []ElementEntry `yaml:"elements"`
}

// ElementEntry names a registered element type with its parameters.
type ElementEntry struct {
	Type   string         `yaml:"type"`
	Params map[string]any `yaml:"params"`
}

// Load reads a plan document from disk.
func Load(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("load plan: %w", err)
	}
	return Parse(data)
}

// Parse decodes a plan document.
func Parse(data []byte) (Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("parse plan: %w", err)
	}
	if p.Name == "" {
		return Plan{}, fmt.Errorf("plan name is required")
	}
	for i, entry := range p.Elements {
		if entry.Type == "" {
			return Plan{}, fmt.Errorf("plan element %d: type is required", i)
		}
	}
	return p, nil
}

// Build constructs the plan's sequence from the element registry. An empty
// plan still builds; a sequence with no children fails on its first tick.
func (p Plan) Build() (*behavior.Sequence, error) {
	children := make([]behavior.Element, 0, len(p.Elements))
	for i, entry := range p.Elements {
		factory, err := lookupElement(entry.Type)
		if err != nil {
			return nil, fmt.Errorf("plan element %d: %w", i, err)
		}
		el, err := factory(entry.Params)
		if err != nil {
			return nil, fmt.Errorf("plan element %d (%s): %w", i, entry.Type, err)
		}
		children = append(children, el)
	}
	return behavior.NewSequence(children...), nil
}

// Tolerant coercion helpers for params blocks; YAML numbers arrive as int
// or float64 depending on their spelling.

func ParamFloat64(params map[string]any, key string) (float64, bool) {
	switch v := params[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func ParamInt(params map[string]any, key string) (int, bool) {
	switch v := params[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
