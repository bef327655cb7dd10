package plan

import (
	"errors"
	"testing"

	"kinesis/internal/behavior"
)

func TestRegisterElementDuplicate(t *testing.T) {
	spec := ElementSpec{
		Type: "dup",
		Factory: func(map[string]any) (behavior.Element, error) {
			return &nullElement{}, nil
		},
	}
	if err := RegisterElement(spec); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := RegisterElement(spec); !errors.Is(err, ErrElementExists) {
		t.Fatalf("expected ErrElementExists, got %v", err)
	}
}

func TestRegisterElementRequiresTypeAndFactory(t *testing.T) {
	if err := RegisterElement(ElementSpec{}); err == nil {
		t.Fatal("expected missing type error")
	}
	if err := RegisterElement(ElementSpec{Type: "no-factory"}); err == nil {
		t.Fatal("expected missing factory error")
	}
}

func TestRegisteredElementTypesSorted(t *testing.T) {
	registerNull(t, "zz-last")
	registerNull(t, "aa-first")

	types := RegisteredElementTypes()
	for i := 1; i < len(types); i++ {
		if types[i-1] > types[i] {
			t.Fatalf("types not sorted: %v", types)
		}
	}
}
