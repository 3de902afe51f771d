package entry

import (
	"context"
	"fmt"
	"slices"

	"catalog/internal/core/domain/model/kernel"
)

// PositionStore is the slice of the entry relation Ordering works on. Every
// call must run inside the caller's transaction so the lock taken by
// LockSeries covers the reads and shifts that follow it.
type PositionStore interface {
	// LockSeries blocks until no other transaction is renumbering seriesID.
	LockSeries(ctx context.Context, seriesID kernel.UUID) error

	// MaxPosition returns the highest position in seriesID ignoring the
	// entry exclude, or Unset when there is no such entry.
	MaxPosition(ctx context.Context, seriesID kernel.UUID, exclude kernel.UUID) (Position, error)

	// ShiftPositions adds delta to the position of every entry of seriesID
	// inside span, except exclude, and returns the number of rows changed.
	ShiftPositions(ctx context.Context, seriesID kernel.UUID, exclude kernel.UUID, span Span, delta int) (int64, error)
}

// Ordering keeps the positions of every series gapless: a series with N
// entries always holds exactly the positions 1..N.
//
// Ordering is the only writer of an entry's series and position. It never
// persists the entry itself; the caller saves it through its repository in
// the same transaction as the PositionStore calls.
//
// Example usage:
//
//	ordering := entry.NewOrdering()
//	change, err := ordering.SetPosition(ctx, uow.EntryRepository(), e, seriesID, 2)
//	if errors.Is(err, entry.ErrInvalidPosition) {
//	    // report an input error, nothing was written
//	}
type Ordering struct{}

// NewOrdering creates a new Ordering instance.
func NewOrdering() Ordering {
	return Ordering{}
}

// SetPosition places e at position requested of series seriesID.
//
// Parameters:
//   - store: The transaction bound position store
//   - e: The entry to place; unplaced entries are inserted, placed ones moved
//   - seriesID: The target series, different from e.SeriesID() to relocate
//   - requested: The 1-based target position
//
// Returns:
//   - Change: The applied transition and the number of renumbered siblings
//   - error: *InvalidPositionError when requested is below 1 or past the
//     end of the series (max+1 when entering it, max when moving inside it),
//     or any store error unchanged
//
// Re-setting the current position of a placed entry touches the store not
// at all.
func (o Ordering) SetPosition(
	ctx context.Context,
	store PositionStore,
	e *Entry,
	seriesID kernel.UUID,
	requested Position,
) (Change, error) {
	if err := e.Validate(); err != nil {
		return Change{}, err
	}
	if err := seriesID.Validate(); err != nil {
		return Change{}, err
	}
	if err := o.validateLowerBound(requested); err != nil {
		return Change{}, err
	}

	switch {
	case !e.IsPlaced():
		return o.insert(ctx, store, e, seriesID, requested)
	case !e.seriesID.IsEqual(seriesID):
		return o.relocate(ctx, store, e, seriesID, requested)
	case e.position == requested:
		return Change{Transition: TransitionNone, Position: requested}, nil
	default:
		return o.move(ctx, store, e, requested)
	}
}

// RemovePosition closes the gap e leaves in its series. Call it in the same
// transaction that deletes e.
func (o Ordering) RemovePosition(ctx context.Context, store PositionStore, e *Entry) (Change, error) {
	if err := e.ValidatePlaced(); err != nil {
		return Change{}, err
	}

	if err := store.LockSeries(ctx, e.seriesID); err != nil {
		return Change{}, err
	}

	shifted, err := store.ShiftPositions(ctx, e.seriesID, e.id, AtLeast(e.position+1), -1)
	if err != nil {
		return Change{}, err
	}

	return Change{Transition: TransitionRemove, Position: e.position, Shifted: shifted}, nil
}

// LockSeries locks every given series once, in ascending id order, so two
// transactions locking overlapping sets never wait on each other in a cycle.
func (o Ordering) LockSeries(ctx context.Context, store PositionStore, seriesIDs ...kernel.UUID) error {
	ids := slices.Clone(seriesIDs)
	slices.SortFunc(ids, func(a, b kernel.UUID) int { return a.Compare(b) })
	ids = slices.CompactFunc(ids, func(a, b kernel.UUID) bool { return a.IsEqual(b) })

	for _, id := range ids {
		if err := store.LockSeries(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (o Ordering) insert(
	ctx context.Context,
	store PositionStore,
	e *Entry,
	seriesID kernel.UUID,
	requested Position,
) (Change, error) {
	if err := store.LockSeries(ctx, seriesID); err != nil {
		return Change{}, err
	}

	maxPos, err := store.MaxPosition(ctx, seriesID, e.id)
	if err != nil {
		return Change{}, err
	}
	if err = o.validateUpperBound(requested, maxPos+1); err != nil {
		return Change{}, err
	}

	var shifted int64
	if requested <= maxPos {
		if shifted, err = store.ShiftPositions(ctx, seriesID, e.id, AtLeast(requested), +1); err != nil {
			return Change{}, err
		}
	}

	e.place(seriesID, requested)
	return Change{Transition: TransitionInsert, Position: requested, Shifted: shifted}, nil
}

func (o Ordering) move(ctx context.Context, store PositionStore, e *Entry, requested Position) (Change, error) {
	if err := store.LockSeries(ctx, e.seriesID); err != nil {
		return Change{}, err
	}

	old := e.position

	// The entry keeps its own slot, so the series still ends at max(siblings, old).
	maxPos, err := store.MaxPosition(ctx, e.seriesID, e.id)
	if err != nil {
		return Change{}, err
	}
	if err = o.validateUpperBound(requested, max(maxPos, old)); err != nil {
		return Change{}, err
	}

	change := Change{Position: requested}
	if requested > old {
		change.Transition = TransitionMoveForward
		change.Shifted, err = store.ShiftPositions(ctx, e.seriesID, e.id, Between(old+1, requested), -1)
	} else {
		change.Transition = TransitionMoveBackward
		change.Shifted, err = store.ShiftPositions(ctx, e.seriesID, e.id, Between(requested, old-1), +1)
	}
	if err != nil {
		return Change{}, err
	}

	e.place(e.seriesID, requested)
	return change, nil
}

// relocate removes e from its current series and inserts it into seriesID.
func (o Ordering) relocate(
	ctx context.Context,
	store PositionStore,
	e *Entry,
	seriesID kernel.UUID,
	requested Position,
) (Change, error) {
	if err := o.LockSeries(ctx, store, e.seriesID, seriesID); err != nil {
		return Change{}, err
	}

	maxPos, err := store.MaxPosition(ctx, seriesID, e.id)
	if err != nil {
		return Change{}, err
	}
	if err = o.validateUpperBound(requested, maxPos+1); err != nil {
		return Change{}, err
	}

	compacted, err := store.ShiftPositions(ctx, e.seriesID, e.id, AtLeast(e.position+1), -1)
	if err != nil {
		return Change{}, err
	}

	var shifted int64
	if requested <= maxPos {
		if shifted, err = store.ShiftPositions(ctx, seriesID, e.id, AtLeast(requested), +1); err != nil {
			return Change{}, err
		}
	}

	e.place(seriesID, requested)
	return Change{Transition: TransitionRelocate, Position: requested, Shifted: compacted + shifted}, nil
}

func (o Ordering) validateLowerBound(requested Position) error {
	switch {
	case requested == Unset:
		return newInvalidPositionError(requested, "position can't be unset")
	case requested < 0:
		return newInvalidPositionError(requested, "position can't be <= 0")
	}
	return nil
}

func (o Ordering) validateUpperBound(requested, last Position) error {
	if requested > last {
		return newInvalidPositionError(requested, fmt.Sprintf("position must be between 1 and %d", last))
	}
	return nil
}
