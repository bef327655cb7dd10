package services

import (
	"strings"
	"testing"
)

func TestWriterMessengerFormat(t *testing.T) {
	var sb strings.Builder
	m := NewWriterMessenger(&sb)

	m.Notify("WalkToPosition", "goal reached")
	if sb.String() != "[WalkToPosition] goal reached\n" {
		t.Fatalf("unexpected output: %q", sb.String())
	}
}

func TestDefaultsAreSafeToUse(t *testing.T) {
	svc := Defaults()
	if svc.Messenger == nil || svc.Reaction == nil {
		t.Fatal("defaults must populate every collaborator")
	}

	// both are no-ops; calling them must not panic
	svc.Messenger.Notify("x", "y")
	svc.Reaction.Activate(0)
	svc.Reaction.Release(0)
}

func TestFuncMessenger(t *testing.T) {
	var got string
	m := FuncMessenger(func(source, msg string) { got = source + ":" + msg })
	m.Notify("Stop", "tick")
	if got != "Stop:tick" {
		t.Fatalf("unexpected capture: %q", got)
	}
}
