package entry

import (
	"errors"
	"fmt"
)

// ErrInvalidPosition is the sentinel behind every InvalidPositionError.
var ErrInvalidPosition = errors.New("invalid position")

// Position is the 1-based order_in_series of an entry. The zero value means
// the entry has not been placed into a series yet.
type Position int

// Unset is the Position of an entry that was never placed.
const Unset Position = 0

// Int returns p as a plain int for transport and persistence.
func (p Position) Int() int {
	return int(p)
}

// IsSet reports whether p holds a position.
func (p Position) IsSet() bool {
	return p != Unset
}

// Span is an inclusive range of positions. A zero To leaves the range open
// towards the end of the series.
type Span struct {
	From Position
	To   Position
}

// AtLeast returns the open span [from, end of series].
func AtLeast(from Position) Span {
	return Span{From: from}
}

// Between returns the closed span [from, to].
func Between(from, to Position) Span {
	return Span{From: from, To: to}
}

// IsOpen reports whether the span runs to the end of the series.
func (s Span) IsOpen() bool {
	return s.To == Unset
}

// Contains reports whether p lies inside the span.
func (s Span) Contains(p Position) bool {
	if p < s.From {
		return false
	}
	return s.IsOpen() || p <= s.To
}

// Transition names the rule Ordering applied.
type Transition string

const (
	TransitionNone         Transition = "none"
	TransitionInsert       Transition = "insert"
	TransitionMoveForward  Transition = "move_forward"
	TransitionMoveBackward Transition = "move_backward"
	TransitionRelocate     Transition = "relocate"
	TransitionRemove       Transition = "remove"
)

// Change reports what an Ordering call did: the rule it applied, the
// position the entry ended up with and how many siblings were renumbered.
type Change struct {
	Transition Transition
	Position   Position
	Shifted    int64
}

// InvalidPositionError reports a requested position outside of
// [1, max+1], where max is the highest position among the entry's siblings.
type InvalidPositionError struct {
	Value  Position
	Reason string
}

func newInvalidPositionError(value Position, reason string) *InvalidPositionError {
	return &InvalidPositionError{Value: value, Reason: reason}
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidPosition, e.Reason)
}

func (e *InvalidPositionError) Unwrap() error {
	return ErrInvalidPosition
}
