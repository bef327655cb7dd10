package plan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"kinesis/internal/behavior"
	"kinesis/internal/model"
	"kinesis/internal/services"
)

type nullElement struct {
	params map[string]any
}

func (e *nullElement) Initialize(services.Services) (model.ElementMeta, error) {
	return model.ElementMeta{Name: "null"}, nil
}

func (e *nullElement) Tick(model.SenseInfo) (model.Outcome, error) {
	return model.Outcome{Status: model.StatusSuccess}, nil
}

func (e *nullElement) Finalize() error { return nil }

func registerNull(t *testing.T, typ string) {
	t.Helper()
	err := RegisterElement(ElementSpec{
		Type: typ,
		Factory: func(params map[string]any) (behavior.Element, error) {
			return &nullElement{params: params}, nil
		},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
}

func TestParseValidPlan(t *testing.T) {
	p, err := Parse([]byte(`
name: test-plan
elements:
  - type: a
    params:
      goal: 4.0
  - type: b
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Name != "test-plan" {
		t.Fatalf("name: %q", p.Name)
	}
	if len(p.Elements) != 2 {
		t.Fatalf("elements: %d", len(p.Elements))
	}
	if p.Elements[0].Type != "a" {
		t.Fatalf("element 0 type: %q", p.Elements[0].Type)
	}
	if goal, ok := ParamFloat64(p.Elements[0].Params, "goal"); !ok || goal != 4.0 {
		t.Fatalf("goal param: %v %v", goal, ok)
	}
}

func TestParseRejectsMissingName(t *testing.T) {
	if _, err := Parse([]byte("elements: []\n")); err == nil {
		t.Fatal("expected missing name error")
	}
}

func TestParseRejectsUntypedElement(t *testing.T) {
	_, err := Parse([]byte(`
name: bad
elements:
  - params: {goal: 1}
`))
	if err == nil {
		t.Fatal("expected untyped element error")
	}
}

func TestBuildUnknownType(t *testing.T) {
	p := Plan{Name: "x", Elements: []ElementEntry{{Type: "does-not-exist"}}}
	_, err := p.Build()
	if !errors.Is(err, ErrElementNotFound) {
		t.Fatalf("expected ErrElementNotFound, got %v", err)
	}
}

func TestBuildPassesParamsToFactory(t *testing.T) {
	registerNull(t, "null-params")

	p, err := Parse([]byte(`
name: params
elements:
  - type: null-params
    params:
      goal: 2
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	seq, err := p.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if seq == nil {
		t.Fatal("expected sequence")
	}
}

func TestBuildEmptyPlan(t *testing.T) {
	p := Plan{Name: "empty"}
	seq, err := p.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	// an empty sequence is loadable; it fails on its first tick
	if _, err := seq.Initialize(services.Defaults()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	out, err := seq.Tick(model.SenseInfo{})
	if err != nil {
		t.Fatalf("tick: %v", err)
	}
	if out.Status != model.StatusFail {
		t.Fatalf("empty plan tick status: %v", out.Status)
	}
}

func TestLoadFromDisk(t *testing.T) {
	registerNull(t, "null-disk")

	path := filepath.Join(t.TempDir(), "plan.yaml")
	doc := "name: from-disk\nelements:\n  - type: null-disk\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write plan: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Name != "from-disk" {
		t.Fatalf("name: %q", p.Name)
	}
}

func TestParamCoercion(t *testing.T) {
	params := map[string]any{
		"int":   3,
		"float": 1.5,
		"str":   "nope",
	}

	if v, ok := ParamFloat64(params, "int"); !ok || v != 3 {
		t.Fatalf("int as float: %v %v", v, ok)
	}
	if v, ok := ParamFloat64(params, "float"); !ok || v != 1.5 {
		t.Fatalf("float: %v %v", v, ok)
	}
	if _, ok := ParamFloat64(params, "str"); ok {
		t.Fatal("string must not coerce to float")
	}
	if _, ok := ParamFloat64(params, "missing"); ok {
		t.Fatal("missing key must not coerce")
	}
	if v, ok := ParamInt(params, "float"); !ok || v != 1 {
		t.Fatalf("float as int: %v %v", v, ok)
	}
}
