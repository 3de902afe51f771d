package commands

import (
	"errors"
	"time"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"
)

var ErrCreateEntryCommandIsNotConstructed = errors.New(
	"CreateEntryCommand must be created via NewCreateEntryCommand constructor",
)

// CreateEntryCommand adds an entry to a series at a given order_in_series.
// The position itself is checked by entry.Ordering inside the transaction,
// against the series as it is at that moment.
//
// Example:
//
//	cmd, err := NewCreateEntryCommand(kernel.NewUUID(), "Theft of Swords", released, bookID, riyriaID, 1)
//	if err != nil {
//	    return fmt.Errorf("invalid entry data: %w", err)
//	}
//	if err = handler.Handle(ctx, cmd); errors.Is(err, entry.ErrInvalidPosition) {
//	    // nothing was written
//	}
type CreateEntryCommand struct {
	entryAttributes

	guard guard.ConstructorGuard
}

func NewCreateEntryCommand(
	entryID kernel.UUID,
	name string,
	date time.Time,
	entryTypeID kernel.UUID,
	seriesID kernel.UUID,
	position int,
) (CreateEntryCommand, error) {
	attrs, err := newEntryAttributes(entryID, name, date, entryTypeID, seriesID, position)
	if err != nil {
		return CreateEntryCommand{}, err
	}
	return CreateEntryCommand{entryAttributes: attrs, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateEntryCommand) Validate() error {
	return c.guard.Validate(ErrCreateEntryCommandIsNotConstructed)
}
