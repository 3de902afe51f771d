package commands

import (
	"context"
	"log/slog"

	"catalog/internal/core/domain/model/entry"
)

// CreateEntryCommandHandler inserts a new entry into its series, shifting the
// siblings at or after the requested position up by one.
type CreateEntryCommandHandler struct {
	uowFactory EntryUoWFactory
	ordering   entry.Ordering
	recorder   OrderingRecorder
	logger     *slog.Logger
}

// NewCreateEntryCommandHandler creates the handler. recorder and logger may
// be nil.
func NewCreateEntryCommandHandler(
	uowFactory EntryUoWFactory,
	recorder OrderingRecorder,
	logger *slog.Logger,
) CreateEntryCommandHandler {
	return CreateEntryCommandHandler{
		uowFactory: uowFactory,
		ordering:   entry.NewOrdering(),
		recorder:   recorderOrNop(recorder),
		logger:     loggerOrDefault(logger).With("component", "create_entry"),
	}
}

// Handle creates the entry and renumbers its siblings in one transaction.
// Errors wrapping entry.ErrInvalidPosition mean the requested position was
// out of bounds and nothing was written.
func (h CreateEntryCommandHandler) Handle(ctx context.Context, cmd CreateEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	e, err := entry.NewEntry(cmd.EntryID(), cmd.Name(), cmd.Date(), cmd.EntryTypeID())
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

	repo := uow.EntryRepository()

	change, err := h.ordering.SetPosition(ctx, repo, e, cmd.SeriesID(), cmd.Position())
	if err != nil {
		return seriesReferenceError(err)
	}

	if err = repo.Add(ctx, e); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.recorder.RecordChange(change)
	logChange(ctx, h.logger, e, change)
	return nil
}
