package reaction

import (
	"errors"
	"fmt"
)

// Def declares whether a reflex category stays active while a motion
// element holds control. The zero value is DefRequired so an element that
// never sets a category fails validation before its first tick.
type Def uint8

const (
	DefRequired Def = iota
	DefDisabled
	DefEnabled
)

func (d Def) String() string {
	switch d {
	case DefRequired:
		return "required"
	case DefDisabled:
		return "disabled"
	case DefEnabled:
		return "enabled"
	default:
		return "unknown"
	}
}

// Mask identifies a set of reflex categories. Bit layout: bit0 knee-jerk,
// bit1 flinch; further categories extend upward.
type Mask uint32

const (
	MaskKneeJerk Mask = 1 << 0
	MaskFlinch   Mask = 1 << 1
)

var ErrDefRequired = errors.New("reaction definition not set")

// Defs is the per-category declaration every motion element must carry.
type Defs struct {
	KneeJerk Def
	Flinch   Def
}

// Validate rejects declarations left at the required sentinel.
func (d Defs) Validate() error {
	if d.KneeJerk == DefRequired {
		return fmt.Errorf("knee-jerk: %w", ErrDefRequired)
	}
	if d.Flinch == DefRequired {
		return fmt.Errorf("flinch: %w", ErrDefRequired)
	}
	return nil
}

// Mask folds the enabled categories into a bitmap, the additive union the
// reaction service consumes.
func (d Defs) Mask() Mask {
	var m Mask
	if d.KneeJerk == DefEnabled {
		m |= MaskKneeJerk
	}
	if d.Flinch == DefEnabled {
		m |= MaskFlinch
	}
	return m
}

// Service suppresses and restores reflex categories. Calls are advisory,
// fire-and-forget and assumed non-failing; Activate and Release must be
// paired with identical masks around an element's active lifetime.
type Service interface {
	Activate(mask Mask)
	Release(mask Mask)
}

// NopService ignores all reaction calls.
type NopService struct{}

func (NopService) Activate(Mask) {}
func (NopService) Release(Mask)  {}
