package commands

import (
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"
)

var (
	ErrCreateSeriesCommandIsNotConstructed = errors.New(
		"CreateSeriesCommand must be created via NewCreateSeriesCommand constructor",
	)
	ErrUpdateSeriesCommandIsNotConstructed = errors.New(
		"UpdateSeriesCommand must be created via NewUpdateSeriesCommand constructor",
	)
	ErrDeleteSeriesCommandIsNotConstructed = errors.New(
		"DeleteSeriesCommand must be created via NewDeleteSeriesCommand constructor",
	)
)

// namedAttributes carries the id and name of series and entry types.
type namedAttributes struct {
	id   kernel.UUID
	name string
}

func newNamedAttributes(id kernel.UUID, name string) (namedAttributes, error) {
	if err := id.Validate(); err != nil {
		return namedAttributes{}, err
	}
	n, err := kernel.NewName("name", name)
	if err != nil {
		return namedAttributes{}, err
	}
	return namedAttributes{id: id, name: n.String()}, nil
}

func (a namedAttributes) ID() kernel.UUID {
	return a.id
}

func (a namedAttributes) Name() string {
	return a.name
}

type CreateSeriesCommand struct {
	namedAttributes
	guard guard.ConstructorGuard
}

func NewCreateSeriesCommand(id kernel.UUID, name string) (CreateSeriesCommand, error) {
	attrs, err := newNamedAttributes(id, name)
	if err != nil {
		return CreateSeriesCommand{}, err
	}
	return CreateSeriesCommand{namedAttributes: attrs, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateSeriesCommand) Validate() error {
	return c.guard.Validate(ErrCreateSeriesCommandIsNotConstructed)
}

// UpdateSeriesCommand renames a series.
type UpdateSeriesCommand struct {
	namedAttributes
	guard guard.ConstructorGuard
}

func NewUpdateSeriesCommand(id kernel.UUID, name string) (UpdateSeriesCommand, error) {
	attrs, err := newNamedAttributes(id, name)
	if err != nil {
		return UpdateSeriesCommand{}, err
	}
	return UpdateSeriesCommand{namedAttributes: attrs, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateSeriesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSeriesCommandIsNotConstructed)
}

// DeleteSeriesCommand deletes a series that no entry or character
// references anymore.
type DeleteSeriesCommand struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewDeleteSeriesCommand(id kernel.UUID) (DeleteSeriesCommand, error) {
	if err := id.Validate(); err != nil {
		return DeleteSeriesCommand{}, err
	}
	return DeleteSeriesCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteSeriesCommand) Validate() error {
	return c.guard.Validate(ErrDeleteSeriesCommandIsNotConstructed)
}

func (c DeleteSeriesCommand) ID() kernel.UUID {
	return c.id
}
