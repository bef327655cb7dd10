package exec

import (
	"context"

	"kinesis/internal/behavior"
)

// Handle tracks a run launched on a dedicated worker. Each worker owns its
// behavior tree exclusively; independent trees may run concurrently.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}

	result Result
	err    error
}

// Go launches the run asynchronously so the caller can continue other
// work, like mapping or planning.
func (e *Executor) Go(ctx context.Context, el behavior.Element) *Handle {
	runCtx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(h.done)
		defer cancel()
		h.result, h.err = e.Run(runCtx, el)
	}()

	return h
}

// Wait blocks until the run completes and returns its result.
func (h *Handle) Wait() (Result, error) {
	<-h.done
	return h.result, h.err
}

// Cancel stops driving ticks. The executor still finalizes the element so
// its reaction mask is released.
func (h *Handle) Cancel() {
	h.cancel()
}

// Done exposes completion for select-based callers.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
