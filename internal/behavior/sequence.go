package behavior

import (
	"kinesis/internal/model"
	"kinesis/internal/services"
)

// SequenceName is the meta name reported by every sequence composite.
const SequenceName = "Sequence"

// Sequence executes its children in order, one at a time, and can be
// thought of as an AND over the collection: each child must succeed for
// the sequence to proceed, and any failure ends the whole sequence with
// that failure. The sequence does not own its children; their lifetime is
// the caller's responsibility, and the sequence only issues the
// initialize/tick/finalize calls of whichever child is current.
type Sequence struct {
	children []Element

	svc         services.Services
	cursor      int
	newElement  bool
	childMeta   model.ElementMeta
	initialized bool
}

func NewSequence(children ...Element) *Sequence {
	return &Sequence{children: children}
}

func (s *Sequence) Initialize(svc services.Services) (model.ElementMeta, error) {
	s.svc = svc
	s.cursor = 0
	s.newElement = true
	s.initialized = true
	return model.ElementMeta{Name: SequenceName}, nil
}

func (s *Sequence) Tick(sense model.SenseInfo) (model.Outcome, error) {
	if !s.initialized {
		return model.Outcome{}, ErrNotInitialized
	}

	// past the last child: either the list was empty or a previous tick
	// finished the sequence. Either way there is no work left to succeed.
	if s.cursor >= len(s.children) {
		return model.Outcome{Status: model.StatusFail}, nil
	}

	child := s.children[s.cursor]
	if s.newElement {
		meta, err := child.Initialize(s.svc)
		if err != nil {
			return model.Outcome{}, err
		}
		s.childMeta = meta
		s.svc.Messenger.Notify(meta.Name, "initialize")
		s.newElement = false
	}

	s.svc.Messenger.Notify(s.childMeta.Name, "tick")
	cur, err := child.Tick(sense)
	if err != nil {
		return model.Outcome{}, err
	}

	if !cur.Status.Terminal() {
		return cur, nil
	}

	// at most one child is ever active, so the finished child releases its
	// reaction mask before the cursor moves on
	if err := child.Finalize(); err != nil {
		return model.Outcome{}, err
	}
	s.svc.Messenger.Notify(s.childMeta.Name, "finalize")
	s.newElement = true
	s.cursor++

	if s.cursor >= len(s.children) {
		// done with all children; forward the last child's terminal outcome
		return cur, nil
	}
	if cur.Status == model.StatusFail {
		// on failure the sequence ends and forwards the failing outcome;
		// remaining children are never initialized
		s.cursor = len(s.children)
		return cur, nil
	}
	// on success keep running, carrying the just-finished child's actuation
	// so this tick is never produced without a command. The next child is
	// initialized and first-ticked on the following call.
	return model.Outcome{Status: model.StatusRunning, Actuate: cur.Actuate}, nil
}

// Finalize is a no-op at the composite level: each child was already
// finalized individually at its own terminal transition.
func (s *Sequence) Finalize() error {
	if !s.initialized {
		return ErrNotInitialized
	}
	s.initialized = false
	return nil
}
