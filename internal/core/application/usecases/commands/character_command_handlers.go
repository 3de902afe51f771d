package commands

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/core/domain/model/character"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/ports"
	"catalog/internal/pkg/errs"
)

// ErrFirstEntryOutsideSeries is returned when a character's first entry
// belongs to another series than the character.
var ErrFirstEntryOutsideSeries = errors.New("first entry belongs to another series")

type CreateCharacterCommandHandler struct {
	uowFactory CharacterUoWFactory
}

func NewCreateCharacterCommandHandler(uowFactory CharacterUoWFactory) CreateCharacterCommandHandler {
	return CreateCharacterCommandHandler{uowFactory: uowFactory}
}

func (h CreateCharacterCommandHandler) Handle(ctx context.Context, cmd CreateCharacterCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := character.NewCharacter(cmd.CharacterID(), cmd.Name(), cmd.SeriesID(), cmd.FirstEntryID())
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

	if err = checkFirstEntry(ctx, uow.EntryRepository(), cmd.SeriesID(), cmd.FirstEntryID()); err != nil {
		return err
	}

	if err = uow.CharacterRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type UpdateCharacterCommandHandler struct {
	uowFactory CharacterUoWFactory
}

func NewUpdateCharacterCommandHandler(uowFactory CharacterUoWFactory) UpdateCharacterCommandHandler {
	return UpdateCharacterCommandHandler{uowFactory: uowFactory}
}

func (h UpdateCharacterCommandHandler) Handle(ctx context.Context, cmd UpdateCharacterCommand) error {
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

	repo := uow.CharacterRepository()

	c, err := repo.Get(ctx, cmd.CharacterID())
	if err != nil {
		return err
	}

	if err = checkFirstEntry(ctx, uow.EntryRepository(), cmd.SeriesID(), cmd.FirstEntryID()); err != nil {
		return err
	}

	if err = errors.Join(
		c.Rename(cmd.Name()),
		c.MoveToSeries(cmd.SeriesID()),
		c.SetFirstEntry(cmd.FirstEntryID()),
	); err != nil {
		return err
	}

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type DeleteCharacterCommandHandler struct {
	uowFactory CharacterUoWFactory
}

func NewDeleteCharacterCommandHandler(uowFactory CharacterUoWFactory) DeleteCharacterCommandHandler {
	return DeleteCharacterCommandHandler{uowFactory: uowFactory}
}

func (h DeleteCharacterCommandHandler) Handle(ctx context.Context, cmd DeleteCharacterCommand) error {
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

	if err := uow.CharacterRepository().Delete(ctx, cmd.CharacterID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// checkFirstEntry ensures entryID exists and belongs to seriesID. Both ids
// come from the request body, so failures are input errors.
func checkFirstEntry(ctx context.Context, entries ports.EntryRepository, seriesID, entryID kernel.UUID) error {
	e, err := entries.Get(ctx, entryID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidErrorWithCause("occurs_first_in_entry_id", err)
	}
	if err != nil {
		return err
	}

	if !e.SeriesID().IsEqual(seriesID) {
		return errs.NewValueIsInvalidErrorWithCause("occurs_first_in_entry_id",
			fmt.Errorf("%w: entry %s is in series %s", ErrFirstEntryOutsideSeries, entryID, e.SeriesID()))
	}
	return nil
}
