package character

import (
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"
	"catalog/internal/pkg/guard"
)

var ErrCharacterIsNotConstructed = errors.New("Character must be created via NewCharacter constructor")

// Character is a person or creature of a series.
type Character struct {
	id           kernel.UUID
	name         kernel.Name
	seriesID     kernel.UUID
	firstEntryID kernel.UUID
	guard        guard.ConstructorGuard
}

// NewCharacter creates a Character of seriesID first occurring in
// firstEntryID. Whether the entry really belongs to the series is enforced by
// the use case, which can see both records.
func NewCharacter(id kernel.UUID, name string, seriesID, firstEntryID kernel.UUID) (*Character, error) {
	c := &Character{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.Rename(name),
		c.MoveToSeries(seriesID),
		c.SetFirstEntry(firstEntryID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCharacter rebuilds a Character from persisted state.
func RestoreCharacter(id kernel.UUID, name string, seriesID, firstEntryID kernel.UUID) (*Character, error) {
	return NewCharacter(id, name, seriesID, firstEntryID)
}

func (c *Character) ID() kernel.UUID {
	return c.id
}

func (c *Character) Name() string {
	return c.name.String()
}

func (c *Character) SeriesID() kernel.UUID {
	return c.seriesID
}

// FirstEntryID returns the entry the character occurs in first.
func (c *Character) FirstEntryID() kernel.UUID {
	return c.firstEntryID
}

func (c *Character) Rename(name string) error {
	n, err := kernel.NewName("name", name)
	if err != nil {
		return err
	}
	c.name = n
	return nil
}

func (c *Character) MoveToSeries(seriesID kernel.UUID) error {
	if err := seriesID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("series", err)
	}
	c.seriesID = seriesID
	return nil
}

func (c *Character) SetFirstEntry(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("first entry", err)
	}
	c.firstEntryID = entryID
	return nil
}

func (c *Character) Validate() error {
	if c == nil {
		return ErrCharacterIsNotConstructed
	}
	return c.guard.Validate(ErrCharacterIsNotConstructed)
}

func (c *Character) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}
