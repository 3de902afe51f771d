package commands

import (
	"context"
	"errors"
	"log/slog"

	"catalog/internal/core/domain/model/entry"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/ports"
	"catalog/internal/pkg/errs"
)

// maxLockAttempts bounds loadEntryLocked when the entry keeps moving to other
// series between the read and the lock.
const maxLockAttempts = 3

var ErrEntryKeepsMoving = errors.New("entry changed series while locking, retry the request")

// loadEntryLocked reads an entry after locking its series and the extra
// series, so its position cannot change until the transaction ends.
func loadEntryLocked(
	ctx context.Context,
	ordering entry.Ordering,
	repo ports.EntryRepository,
	id kernel.UUID,
	extra ...kernel.UUID,
) (*entry.Entry, error) {
	candidate, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	for range maxLockAttempts {
		seriesIDs := append([]kernel.UUID{candidate.SeriesID()}, extra...)
		if err = ordering.LockSeries(ctx, repo, seriesIDs...); err != nil {
			return nil, seriesReferenceError(err)
		}

		locked, err := repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if locked.SeriesID().IsEqual(candidate.SeriesID()) {
			return locked, nil
		}
		// Moved before the lock was taken; the locked read names the new series.
		candidate = locked
	}
	return nil, ErrEntryKeepsMoving
}

// seriesReferenceError turns a missing series into an input error: the
// series id came from the request body, not from the URL.
func seriesReferenceError(err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) && notFound.ParamName == "series" {
		return errs.NewValueIsInvalidErrorWithCause("series_id", err)
	}
	return err
}

func logChange(ctx context.Context, logger *slog.Logger, e *entry.Entry, change entry.Change) {
	logger.DebugContext(ctx, "entry position changed",
		"entry_id", e.ID().String(),
		"series_id", e.SeriesID().String(),
		"transition", string(change.Transition),
		"position", change.Position.Int(),
		"shifted", change.Shifted,
	)
}

func recorderOrNop(recorder OrderingRecorder) OrderingRecorder {
	if recorder == nil {
		return nopRecorder{}
	}
	return recorder
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
