package commands

import (
	"errors"
	"time"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"
)

var ErrUpdateEntryCommandIsNotConstructed = errors.New(
	"UpdateEntryCommand must be created via NewUpdateEntryCommand constructor",
)

// UpdateEntryCommand replaces every attribute of an existing entry. A new
// position moves the entry inside its series; a new series id relocates it.
type UpdateEntryCommand struct {
	entryAttributes

	guard guard.ConstructorGuard
}

func NewUpdateEntryCommand(
	entryID kernel.UUID,
	name string,
	date time.Time,
	entryTypeID kernel.UUID,
	seriesID kernel.UUID,
	position int,
) (UpdateEntryCommand, error) {
	attrs, err := newEntryAttributes(entryID, name, date, entryTypeID, seriesID, position)
	if err != nil {
		return UpdateEntryCommand{}, err
	}
	return UpdateEntryCommand{entryAttributes: attrs, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateEntryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEntryCommandIsNotConstructed)
}
