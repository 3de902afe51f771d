// Package series models the series aggregate: a named collection of entries
// and characters, such as a novel cycle or a TV show.
package series

import (
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"
)

// ErrSeriesIsNotConstructed is returned when using a zero Series.
var ErrSeriesIsNotConstructed = errors.New("Series must be created via NewSeries constructor")

// Series groups entries and characters. Entries of a series carry a gapless
// order_in_series maintained by entry.Ordering; the series itself only holds
// its name.
type Series struct {
	id    kernel.UUID
	name  kernel.Name
	guard guard.ConstructorGuard
}

// NewSeries creates a Series. Names are trimmed and must hold 1 to
// kernel.MaxNameLength characters.
func NewSeries(id kernel.UUID, name string) (*Series, error) {
	s := &Series{guard: guard.NewConstructorGuard()}

	if err := errors.Join(s.setID(id), s.Rename(name)); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSeries rebuilds a Series from persisted state.
func RestoreSeries(id kernel.UUID, name string) (*Series, error) {
	return NewSeries(id, name)
}

func (s *Series) ID() kernel.UUID {
	return s.id
}

func (s *Series) Name() string {
	return s.name.String()
}

// Rename validates and sets the series name.
func (s *Series) Rename(name string) error {
	n, err := kernel.NewName("name", name)
	if err != nil {
		return err
	}
	s.name = n
	return nil
}

func (s *Series) Validate() error {
	if s == nil {
		return ErrSeriesIsNotConstructed
	}
	return s.guard.Validate(ErrSeriesIsNotConstructed)
}

func (s *Series) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}
