package commands

import (
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"
	"catalog/internal/pkg/guard"
)

var (
	ErrCreateCharacterInfoCommandIsNotConstructed = errors.New(
		"CreateCharacterInfoCommand must be created via NewCreateCharacterInfoCommand constructor",
	)
	ErrUpdateCharacterInfoCommandIsNotConstructed = errors.New(
		"UpdateCharacterInfoCommand must be created via NewUpdateCharacterInfoCommand constructor",
	)
	ErrDeleteCharacterInfoCommandIsNotConstructed = errors.New(
		"DeleteCharacterInfoCommand must be created via NewDeleteCharacterInfoCommand constructor",
	)
)

type characterInfoAttributes struct {
	infoID      kernel.UUID
	text        string
	entryID     kernel.UUID
	characterID kernel.UUID
}

func newCharacterInfoAttributes(
	infoID kernel.UUID,
	text string,
	entryID, characterID kernel.UUID,
) (characterInfoAttributes, error) {
	var errList []error

	if err := infoID.Validate(); err != nil {
		errList = append(errList, err)
	}
	t, err := kernel.NewName("text", text)
	if err != nil {
		errList = append(errList, err)
	}
	if err = entryID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("entry_id", err))
	}
	if err = characterID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("character_id", err))
	}
	if len(errList) > 0 {
		return characterInfoAttributes{}, errors.Join(errList...)
	}

	return characterInfoAttributes{
		infoID:      infoID,
		text:        t.String(),
		entryID:     entryID,
		characterID: characterID,
	}, nil
}

func (a characterInfoAttributes) InfoID() kernel.UUID {
	return a.infoID
}

func (a characterInfoAttributes) Text() string {
	return a.text
}

func (a characterInfoAttributes) EntryID() kernel.UUID {
	return a.entryID
}

func (a characterInfoAttributes) CharacterID() kernel.UUID {
	return a.characterID
}

type CreateCharacterInfoCommand struct {
	characterInfoAttributes
	guard guard.ConstructorGuard
}

func NewCreateCharacterInfoCommand(
	infoID kernel.UUID,
	text string,
	entryID, characterID kernel.UUID,
) (CreateCharacterInfoCommand, error) {
	attrs, err := newCharacterInfoAttributes(infoID, text, entryID, characterID)
	if err != nil {
		return CreateCharacterInfoCommand{}, err
	}
	return CreateCharacterInfoCommand{characterInfoAttributes: attrs, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCharacterInfoCommand) Validate() error {
	return c.guard.Validate(ErrCreateCharacterInfoCommandIsNotConstructed)
}

type UpdateCharacterInfoCommand struct {
	characterInfoAttributes
	guard guard.ConstructorGuard
}

func NewUpdateCharacterInfoCommand(
	infoID kernel.UUID,
	text string,
	entryID, characterID kernel.UUID,
) (UpdateCharacterInfoCommand, error) {
	attrs, err := newCharacterInfoAttributes(infoID, text, entryID, characterID)
	if err != nil {
		return UpdateCharacterInfoCommand{}, err
	}
	return UpdateCharacterInfoCommand{characterInfoAttributes: attrs, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateCharacterInfoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCharacterInfoCommandIsNotConstructed)
}

type DeleteCharacterInfoCommand struct {
	infoID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewDeleteCharacterInfoCommand(infoID kernel.UUID) (DeleteCharacterInfoCommand, error) {
	if err := infoID.Validate(); err != nil {
		return DeleteCharacterInfoCommand{}, err
	}
	return DeleteCharacterInfoCommand{infoID: infoID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCharacterInfoCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCharacterInfoCommandIsNotConstructed)
}

func (c DeleteCharacterInfoCommand) InfoID() kernel.UUID {
	return c.infoID
}
