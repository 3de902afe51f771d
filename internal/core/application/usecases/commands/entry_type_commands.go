package commands

import (
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"
)

var (
	ErrCreateEntryTypeCommandIsNotConstructed = errors.New(
		"CreateEntryTypeCommand must be created via NewCreateEntryTypeCommand constructor",
	)
	ErrUpdateEntryTypeCommandIsNotConstructed = errors.New(
		"UpdateEntryTypeCommand must be created via NewUpdateEntryTypeCommand constructor",
	)
	ErrDeleteEntryTypeCommandIsNotConstructed = errors.New(
		"DeleteEntryTypeCommand must be created via NewDeleteEntryTypeCommand constructor",
	)
)

type CreateEntryTypeCommand struct {
	namedAttributes
	guard guard.ConstructorGuard
}

func NewCreateEntryTypeCommand(id kernel.UUID, name string) (CreateEntryTypeCommand, error) {
	attrs, err := newNamedAttributes(id, name)
	if err != nil {
		return CreateEntryTypeCommand{}, err
	}
	return CreateEntryTypeCommand{namedAttributes: attrs, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateEntryTypeCommand) Validate() error {
	return c.guard.Validate(ErrCreateEntryTypeCommandIsNotConstructed)
}

type UpdateEntryTypeCommand struct {
	namedAttributes
	guard guard.ConstructorGuard
}

func NewUpdateEntryTypeCommand(id kernel.UUID, name string) (UpdateEntryTypeCommand, error) {
	attrs, err := newNamedAttributes(id, name)
	if err != nil {
		return UpdateEntryTypeCommand{}, err
	}
	return UpdateEntryTypeCommand{namedAttributes: attrs, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateEntryTypeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEntryTypeCommandIsNotConstructed)
}

type DeleteEntryTypeCommand struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewDeleteEntryTypeCommand(id kernel.UUID) (DeleteEntryTypeCommand, error) {
	if err := id.Validate(); err != nil {
		return DeleteEntryTypeCommand{}, err
	}
	return DeleteEntryTypeCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteEntryTypeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteEntryTypeCommandIsNotConstructed)
}

func (c DeleteEntryTypeCommand) ID() kernel.UUID {
	return c.id
}
