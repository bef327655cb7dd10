// Package services carries the collaborator bundle handed to every element
// at initialize. The bundle is copied by value, so elements never share
// mutable collaborator state.
package services

import (
	"fmt"
	"io"

	"kinesis/internal/reaction"
)

// Messenger is the fire-and-forget diagnostic sink. Implementations must
// not block and must not fail the caller.
type Messenger interface {
	Notify(source, msg string)
}

// Services bundles the collaborators common to all elements.
type Services struct {
	Messenger Messenger
	Reaction  reaction.Service
}

type nopMessenger struct{}

func (nopMessenger) Notify(string, string) {}

// Defaults returns a bundle that discards diagnostics and reaction calls.
func Defaults() Services {
	return Services{
		Messenger: nopMessenger{},
		Reaction:  reaction.NopService{},
	}
}

// WriterMessenger prints diagnostics as "[source] message" lines.
type WriterMessenger struct {
	w io.Writer
}

func NewWriterMessenger(w io.Writer) *WriterMessenger {
	return &WriterMessenger{w: w}
}

func (m *WriterMessenger) Notify(source, msg string) {
	fmt.Fprintf(m.w, "[%s] %s\n", source, msg)
}

// FuncMessenger adapts a function to the Messenger capability.
type FuncMessenger func(source, msg string)

func (f FuncMessenger) Notify(source, msg string) {
	f(source, msg)
}
