package commands

import (
	"context"
	"log/slog"

	"catalog/internal/core/domain/model/entry"
)

// DeleteEntryCommandHandler deletes an entry and shifts every later sibling
// down by one. A delete rejected by the database (the entry is still some
// character's first entry) rolls the renumbering back too.
type DeleteEntryCommandHandler struct {
	uowFactory EntryUoWFactory
	ordering   entry.Ordering
	recorder   OrderingRecorder
	logger     *slog.Logger
}

func NewDeleteEntryCommandHandler(
	uowFactory EntryUoWFactory,
	recorder OrderingRecorder,
	logger *slog.Logger,
) DeleteEntryCommandHandler {
	return DeleteEntryCommandHandler{
		uowFactory: uowFactory,
		ordering:   entry.NewOrdering(),
		recorder:   recorderOrNop(recorder),
		logger:     loggerOrDefault(logger).With("component", "delete_entry"),
	}
}

func (h DeleteEntryCommandHandler) Handle(ctx context.Context, cmd DeleteEntryCommand) error {
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

	e, err := loadEntryLocked(ctx, h.ordering, repo, cmd.EntryID())
	if err != nil {
		return err
	}

	change, err := h.ordering.RemovePosition(ctx, repo, e)
	if err != nil {
		return err
	}

	if err = repo.Delete(ctx, e.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.recorder.RecordChange(change)
	logChange(ctx, h.logger, e, change)
	return nil
}
