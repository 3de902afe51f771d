package commands

import (
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"
)

var ErrDeleteEntryCommandIsNotConstructed = errors.New(
	"DeleteEntryCommand must be created via NewDeleteEntryCommand constructor",
)

// DeleteEntryCommand removes an entry and closes the gap it leaves.
type DeleteEntryCommand struct { //nolint:recvcheck //using for validation
	entryID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewDeleteEntryCommand(entryID kernel.UUID) (DeleteEntryCommand, error) {
	if err := entryID.Validate(); err != nil {
		return DeleteEntryCommand{}, err
	}
	return DeleteEntryCommand{entryID: entryID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteEntryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteEntryCommandIsNotConstructed)
}

func (c DeleteEntryCommand) EntryID() kernel.UUID {
	return c.entryID
}
