package commands

import (
	"context"
	"log/slog"

	"catalog/internal/core/domain/model/entry"
)

// UpdateEntryCommandHandler rewrites an entry and moves or relocates it.
//
// Moving inside the series renumbers the siblings between the old and the new
// position; changing the series compacts the old series and shifts the new
// one. Re-sending the current series and position writes no sibling.
type UpdateEntryCommandHandler struct {
	uowFactory EntryUoWFactory
	ordering   entry.Ordering
	recorder   OrderingRecorder
	logger     *slog.Logger
}

func NewUpdateEntryCommandHandler(
	uowFactory EntryUoWFactory,
	recorder OrderingRecorder,
	logger *slog.Logger,
) UpdateEntryCommandHandler {
	return UpdateEntryCommandHandler{
		uowFactory: uowFactory,
		ordering:   entry.NewOrdering(),
		recorder:   recorderOrNop(recorder),
		logger:     loggerOrDefault(logger).With("component", "update_entry"),
	}
}

func (h UpdateEntryCommandHandler) Handle(ctx context.Context, cmd UpdateEntryCommand) error {
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

	repo := uow.EntryRepository()

	e, err := loadEntryLocked(ctx, h.ordering, repo, cmd.EntryID(), cmd.SeriesID())
	if err != nil {
		return err
	}

	if err = e.Rename(cmd.Name()); err != nil {
		return err
	}
	if err = e.Redate(cmd.Date()); err != nil {
		return err
	}
	if err = e.Retype(cmd.EntryTypeID()); err != nil {
		return err
	}

	change, err := h.ordering.SetPosition(ctx, repo, e, cmd.SeriesID(), cmd.Position())
	if err != nil {
		return seriesReferenceError(err)
	}

	if err = repo.Update(ctx, e); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.recorder.RecordChange(change)
	logChange(ctx, h.logger, e, change)
	return nil
}
