package commands_test

import (
	"context"

	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/domain/model/character"
	"catalog/internal/core/domain/model/entry"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/model/series"
	"catalog/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockEntryRepository struct{ mock.Mock }

func (m *MockEntryRepository) LockSeries(ctx context.Context, seriesID kernel.UUID) error {
	args := m.Called(ctx, seriesID)
	return args.Error(0)
}

func (m *MockEntryRepository) MaxPosition(ctx context.Context, seriesID, exclude kernel.UUID) (entry.Position, error) {
	args := m.Called(ctx, seriesID, exclude)
	return args.Get(0).(entry.Position), args.Error(1)
}

func (m *MockEntryRepository) ShiftPositions(
	ctx context.Context,
	seriesID, exclude kernel.UUID,
	span entry.Span,
	delta int,
) (int64, error) {
	args := m.Called(ctx, seriesID, exclude, span, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryRepository) Add(ctx context.Context, e *entry.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEntryRepository) Update(ctx context.Context, e *entry.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEntryRepository) Get(ctx context.Context, id kernel.UUID) (*entry.Entry, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*entry.Entry)
	return e, args.Error(1)
}

func (m *MockEntryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSeriesRepository struct{ mock.Mock }

func (m *MockSeriesRepository) Add(ctx context.Context, s *series.Series) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSeriesRepository) Update(ctx context.Context, s *series.Series) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSeriesRepository) Get(ctx context.Context, id kernel.UUID) (*series.Series, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*series.Series)
	return s, args.Error(1)
}

func (m *MockSeriesRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCharacterRepository struct{ mock.Mock }

func (m *MockCharacterRepository) Add(ctx context.Context, c *character.Character) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCharacterRepository) Update(ctx context.Context, c *character.Character) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCharacterRepository) Get(ctx context.Context, id kernel.UUID) (*character.Character, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*character.Character)
	return c, args.Error(1)
}

func (m *MockCharacterRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW implements every narrowed unit of work of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) EntryRepository() ports.EntryRepository {
	args := m.Called()
	return args.Get(0).(ports.EntryRepository)
}

func (m *MockUoW) SeriesRepository() ports.SeriesRepository {
	args := m.Called()
	return args.Get(0).(ports.SeriesRepository)
}

func (m *MockUoW) CharacterRepository() ports.CharacterRepository {
	args := m.Called()
	return args.Get(0).(ports.CharacterRepository)
}

type MockEntryUoWFactory struct{ mock.Mock }

func (m *MockEntryUoWFactory) Create() commands.EntryUoW {
	args := m.Called()
	return args.Get(0).(commands.EntryUoW)
}

type MockSeriesUoWFactory struct{ mock.Mock }

func (m *MockSeriesUoWFactory) Create() commands.SeriesUoW {
	args := m.Called()
	return args.Get(0).(commands.SeriesUoW)
}

type MockCharacterUoWFactory struct{ mock.Mock }

func (m *MockCharacterUoWFactory) Create() commands.CharacterUoW {
	args := m.Called()
	return args.Get(0).(commands.CharacterUoW)
}

type MockOrderingRecorder struct{ mock.Mock }

func (m *MockOrderingRecorder) RecordChange(change entry.Change) {
	m.Called(change)
}
