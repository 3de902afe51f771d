package commands

import (
	"context"

	"catalog/internal/core/domain/model/character"
)

type CreateCharacterInfoCommandHandler struct {
	uowFactory CharacterInfoUoWFactory
}

func NewCreateCharacterInfoCommandHandler(uowFactory CharacterInfoUoWFactory) CreateCharacterInfoCommandHandler {
	return CreateCharacterInfoCommandHandler{uowFactory: uowFactory}
}

// Handle stores the info. Unknown entry or character ids are rejected by the
// database as errs.ErrIntegrityViolation.
func (h CreateCharacterInfoCommandHandler) Handle(ctx context.Context, cmd CreateCharacterInfoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	info, err := character.NewInfo(cmd.InfoID(), cmd.Text(), cmd.EntryID(), cmd.CharacterID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CharacterInfoRepository().Add(ctx, info); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type UpdateCharacterInfoCommandHandler struct {
	uowFactory CharacterInfoUoWFactory
}

func NewUpdateCharacterInfoCommandHandler(uowFactory CharacterInfoUoWFactory) UpdateCharacterInfoCommandHandler {
	return UpdateCharacterInfoCommandHandler{uowFactory: uowFactory}
}

func (h UpdateCharacterInfoCommandHandler) Handle(ctx context.Context, cmd UpdateCharacterInfoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CharacterInfoRepository()

	info, err := repo.Get(ctx, cmd.InfoID())
	if err != nil {
		return err
	}

	if err = info.Rewrite(cmd.Text()); err != nil {
		return err
	}
	if err = info.Reassign(cmd.EntryID(), cmd.CharacterID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, info); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type DeleteCharacterInfoCommandHandler struct {
	uowFactory CharacterInfoUoWFactory
}

func NewDeleteCharacterInfoCommandHandler(uowFactory CharacterInfoUoWFactory) DeleteCharacterInfoCommandHandler {
	return DeleteCharacterInfoCommandHandler{uowFactory: uowFactory}
}

func (h DeleteCharacterInfoCommandHandler) Handle(ctx context.Context, cmd DeleteCharacterInfoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CharacterInfoRepository().Delete(ctx, cmd.InfoID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
