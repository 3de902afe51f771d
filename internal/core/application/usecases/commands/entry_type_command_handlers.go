package commands

import (
	"context"

	"catalog/internal/core/domain/model/entrytype"
)

type CreateEntryTypeCommandHandler struct {
	uowFactory EntryTypeUoWFactory
}

func NewCreateEntryTypeCommandHandler(uowFactory EntryTypeUoWFactory) CreateEntryTypeCommandHandler {
	return CreateEntryTypeCommandHandler{uowFactory: uowFactory}
}

func (h CreateEntryTypeCommandHandler) Handle(ctx context.Context, cmd CreateEntryTypeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	et, err := entrytype.NewEntryType(cmd.ID(), cmd.Name())
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

	if err = uow.EntryTypeRepository().Add(ctx, et); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type UpdateEntryTypeCommandHandler struct {
	uowFactory EntryTypeUoWFactory
}

func NewUpdateEntryTypeCommandHandler(uowFactory EntryTypeUoWFactory) UpdateEntryTypeCommandHandler {
	return UpdateEntryTypeCommandHandler{uowFactory: uowFactory}
}

func (h UpdateEntryTypeCommandHandler) Handle(ctx context.Context, cmd UpdateEntryTypeCommand) error {
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

	repo := uow.EntryTypeRepository()

	et, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	if err = et.Rename(cmd.Name()); err != nil {
		return err
	}

	if err = repo.Update(ctx, et); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type DeleteEntryTypeCommandHandler struct {
	uowFactory EntryTypeUoWFactory
}

func NewDeleteEntryTypeCommandHandler(uowFactory EntryTypeUoWFactory) DeleteEntryTypeCommandHandler {
	return DeleteEntryTypeCommandHandler{uowFactory: uowFactory}
}

// Handle deletes an entry type no entry uses anymore.
func (h DeleteEntryTypeCommandHandler) Handle(ctx context.Context, cmd DeleteEntryTypeCommand) error {
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

	if err := uow.EntryTypeRepository().Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
