package entry

import (
	"errors"
	"time"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"
	"catalog/internal/pkg/guard"
)

var (
	// ErrEntryIsNotConstructed is returned for an Entry that was not created
	// through NewEntry or RestoreEntry.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

	// ErrEntryIsNotPlaced is returned when an entry without a series and
	// position is about to be persisted or removed.
	ErrEntryIsNotPlaced = errors.New("entry has no series position")
)

// Entry is a single book, episode or movie of a series.
//
// Entry follows these invariants:
//   - Must have a valid identifier, name, date and entry type
//   - Series and position are assigned by Ordering only
//   - A persisted entry is always placed (has a series and a position >= 1)
type Entry struct {
	id          kernel.UUID
	name        kernel.Name
	date        time.Time
	entryTypeID kernel.UUID

	// seriesID and position are written by Ordering only.
	seriesID kernel.UUID
	position Position

	guard guard.ConstructorGuard
}

// NewEntry creates an entry that is not placed into any series yet. Hand it to
// Ordering.SetPosition before persisting it.
//
// Example:
//
//	e, err := entry.NewEntry(kernel.NewUUID(), "Theft of Swords", released, bookTypeID)
//	if err != nil {
//	    return err
//	}
//	if _, err = ordering.SetPosition(ctx, repo, e, seriesID, 1); err != nil {
//	    return err
//	}
//	return repo.Add(ctx, e)
func NewEntry(id kernel.UUID, name string, date time.Time, entryTypeID kernel.UUID) (*Entry, error) {
	e := &Entry{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		e.setID(id),
		e.Rename(name),
		e.Redate(date),
		e.Retype(entryTypeID),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEntry rebuilds a placed entry from persisted state.
func RestoreEntry(
	id kernel.UUID,
	name string,
	date time.Time,
	entryTypeID kernel.UUID,
	seriesID kernel.UUID,
	position Position,
) (*Entry, error) {
	e, err := NewEntry(id, name, date, entryTypeID)
	if err != nil {
		return nil, err
	}

	if err = seriesID.Validate(); err != nil {
		return nil, err
	}
	if position < 1 {
		return nil, errs.NewValueIsOutOfRangeError("position", position.Int(), 1, "series size")
	}

	e.place(seriesID, position)
	return e, nil
}

// Validate ensures the entry was built by a constructor.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ValidatePlaced ensures the entry is constructed and has a series position.
func (e *Entry) ValidatePlaced() error {
	if err := e.Validate(); err != nil {
		return err
	}
	if !e.IsPlaced() {
		return ErrEntryIsNotPlaced
	}
	return nil
}

// IsPlaced reports whether Ordering has assigned a series and position.
func (e *Entry) IsPlaced() bool {
	return e.position.IsSet()
}

func (e *Entry) ID() kernel.UUID {
	return e.id
}

func (e *Entry) Name() string {
	return e.name.String()
}

// Date returns the release date at midnight UTC.
func (e *Entry) Date() time.Time {
	return e.date
}

func (e *Entry) EntryTypeID() kernel.UUID {
	return e.entryTypeID
}

// SeriesID returns the owning series, or the zero UUID before placement.
func (e *Entry) SeriesID() kernel.UUID {
	return e.seriesID
}

// Position returns the order_in_series, or Unset before placement.
func (e *Entry) Position() Position {
	return e.position
}

// Rename validates and sets the entry name.
func (e *Entry) Rename(name string) error {
	n, err := kernel.NewName("name", name)
	if err != nil {
		return err
	}
	e.name = n
	return nil
}

// Redate sets the release date; only the calendar day is kept.
func (e *Entry) Redate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	y, m, d := date.Date()
	e.date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return nil
}

// Retype points the entry at another entry type.
func (e *Entry) Retype(entryTypeID kernel.UUID) error {
	if err := entryTypeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("entry type", err)
	}
	e.entryTypeID = entryTypeID
	return nil
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) place(seriesID kernel.UUID, position Position) {
	e.seriesID = seriesID
	e.position = position
}
