package commands

import (
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"
	"catalog/internal/pkg/guard"
)

var (
	ErrCreateCharacterCommandIsNotConstructed = errors.New(
		"CreateCharacterCommand must be created via NewCreateCharacterCommand constructor",
	)
	ErrUpdateCharacterCommandIsNotConstructed = errors.New(
		"UpdateCharacterCommand must be created via NewUpdateCharacterCommand constructor",
	)
	ErrDeleteCharacterCommandIsNotConstructed = errors.New(
		"DeleteCharacterCommand must be created via NewDeleteCharacterCommand constructor",
	)
)

type characterAttributes struct {
	characterID  kernel.UUID
	name         string
	seriesID     kernel.UUID
	firstEntryID kernel.UUID
}

func newCharacterAttributes(
	characterID kernel.UUID,
	name string,
	seriesID, firstEntryID kernel.UUID,
) (characterAttributes, error) {
	var errList []error

	if err := characterID.Validate(); err != nil {
		errList = append(errList, err)
	}
	n, err := kernel.NewName("name", name)
	if err != nil {
		errList = append(errList, err)
	}
	if err = seriesID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("series_id", err))
	}
	if err = firstEntryID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("occurs_first_in_entry_id", err))
	}
	if len(errList) > 0 {
		return characterAttributes{}, errors.Join(errList...)
	}

	return characterAttributes{
		characterID:  characterID,
		name:         n.String(),
		seriesID:     seriesID,
		firstEntryID: firstEntryID,
	}, nil
}

func (a characterAttributes) CharacterID() kernel.UUID {
	return a.characterID
}

func (a characterAttributes) Name() string {
	return a.name
}

func (a characterAttributes) SeriesID() kernel.UUID {
	return a.seriesID
}

func (a characterAttributes) FirstEntryID() kernel.UUID {
	return a.firstEntryID
}

// CreateCharacterCommand adds a character to a series. The first entry must
// belong to that series.
type CreateCharacterCommand struct {
	characterAttributes
	guard guard.ConstructorGuard
}

func NewCreateCharacterCommand(
	characterID kernel.UUID,
	name string,
	seriesID, firstEntryID kernel.UUID,
) (CreateCharacterCommand, error) {
	attrs, err := newCharacterAttributes(characterID, name, seriesID, firstEntryID)
	if err != nil {
		return CreateCharacterCommand{}, err
	}
	return CreateCharacterCommand{characterAttributes: attrs, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCharacterCommand) Validate() error {
	return c.guard.Validate(ErrCreateCharacterCommandIsNotConstructed)
}

type UpdateCharacterCommand struct {
	characterAttributes
	guard guard.ConstructorGuard
}

func NewUpdateCharacterCommand(
	characterID kernel.UUID,
	name string,
	seriesID, firstEntryID kernel.UUID,
) (UpdateCharacterCommand, error) {
	attrs, err := newCharacterAttributes(characterID, name, seriesID, firstEntryID)
	if err != nil {
		return UpdateCharacterCommand{}, err
	}
	return UpdateCharacterCommand{characterAttributes: attrs, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateCharacterCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCharacterCommandIsNotConstructed)
}

type DeleteCharacterCommand struct {
	characterID kernel.UUID
	guard       guard.ConstructorGuard
}

func NewDeleteCharacterCommand(characterID kernel.UUID) (DeleteCharacterCommand, error) {
	if err := characterID.Validate(); err != nil {
		return DeleteCharacterCommand{}, err
	}
	return DeleteCharacterCommand{characterID: characterID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCharacterCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCharacterCommandIsNotConstructed)
}

func (c DeleteCharacterCommand) CharacterID() kernel.UUID {
	return c.characterID
}
