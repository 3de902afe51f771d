package commands

import (
	"errors"
	"time"

	"catalog/internal/core/domain/model/entry"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"
)

var ErrDateIsRequired = errs.NewValueIsRequiredError("date")

// entryAttributes is the full field set of an entry as sent by a client on
// create and on update.
type entryAttributes struct {
	entryID     kernel.UUID
	name        string
	date        time.Time
	entryTypeID kernel.UUID
	seriesID    kernel.UUID
	position    entry.Position
}

func newEntryAttributes(
	entryID kernel.UUID,
	name string,
	date time.Time,
	entryTypeID kernel.UUID,
	seriesID kernel.UUID,
	position int,
) (entryAttributes, error) {
	a := entryAttributes{position: entry.Position(position)}

	if err := errors.Join(
		a.setEntryID(entryID),
		a.setName(name),
		a.setDate(date),
		a.setEntryTypeID(entryTypeID),
		a.setSeriesID(seriesID),
	); err != nil {
		return entryAttributes{}, err
	}

	return a, nil
}

func (a entryAttributes) EntryID() kernel.UUID {
	return a.entryID
}

func (a entryAttributes) Name() string {
	return a.name
}

func (a entryAttributes) Date() time.Time {
	return a.date
}

func (a entryAttributes) EntryTypeID() kernel.UUID {
	return a.entryTypeID
}

func (a entryAttributes) SeriesID() kernel.UUID {
	return a.seriesID
}

// Position returns the requested order_in_series, not yet bounds checked.
func (a entryAttributes) Position() entry.Position {
	return a.position
}

func (a *entryAttributes) setEntryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.entryID = id
	return nil
}

func (a *entryAttributes) setName(name string) error {
	n, err := kernel.NewName("name", name)
	if err != nil {
		return err
	}
	a.name = n.String()
	return nil
}

func (a *entryAttributes) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}
	a.date = date
	return nil
}

func (a *entryAttributes) setEntryTypeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("entrytype_id", err)
	}
	a.entryTypeID = id
	return nil
}

func (a *entryAttributes) setSeriesID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("series_id", err)
	}
	a.seriesID = id
	return nil
}
