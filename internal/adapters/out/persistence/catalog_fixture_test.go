package persistence_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"catalog/internal/adapters/out/persistence"
	"catalog/internal/core/domain/model/character"
	"catalog/internal/core/domain/model/entry"
	"catalog/internal/core/domain/model/entrytype"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/model/series"
	"catalog/internal/core/ports"
	"catalog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var released = time.Date(2011, time.November, 23, 0, 0, 0, 0, time.UTC)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := persistence.Open(persistence.Options{
		Driver: persistence.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "catalog.db"),
	})
	require.NoError(t, err)
	require.NoError(t, persistence.Migrate(db))
	t.Cleanup(func() {
		_ = persistence.Close(db)
	})
	return db
}

// catalogFixture drives entry.Ordering through real units of work the way
// the entry command handlers do.
type catalogFixture struct {
	ctx      context.Context
	db       *gorm.DB
	factory  ports.UnitOfWorkFactory
	ordering entry.Ordering
	seriesID kernel.UUID
	typeID   kernel.UUID
	ids      map[string]kernel.UUID
}

func newCatalogFixture(t *testing.T, db *gorm.DB) *catalogFixture {
	t.Helper()
	f := &catalogFixture{
		ctx:      context.Background(),
		db:       db,
		factory:  persistence.NewGormUnitOfWorkFactory(db),
		ordering: entry.NewOrdering(),
		ids:      make(map[string]kernel.UUID),
	}
	f.seriesID = f.addSeries(t, "The Riyria Revelations")

	book, err := entrytype.NewEntryType(kernel.NewUUID(), "Book")
	require.NoError(t, err)
	require.NoError(t, f.inTx(func(uow ports.UnitOfWork) error {
		return uow.EntryTypeRepository().Add(f.ctx, book)
	}))
	f.typeID = book.ID()
	return f
}

func (f *catalogFixture) inTx(fn func(uow ports.UnitOfWork) error) error {
	uow := f.factory.Create()
	if err := uow.Begin(f.ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(f.ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}
	return uow.Commit(f.ctx)
}

func (f *catalogFixture) addSeries(t *testing.T, name string) kernel.UUID {
	t.Helper()
	s, err := series.NewSeries(kernel.NewUUID(), name)
	require.NoError(t, err)
	require.NoError(t, f.inTx(func(uow ports.UnitOfWork) error {
		return uow.SeriesRepository().Add(f.ctx, s)
	}))
	return s.ID()
}

func (f *catalogFixture) create(name string, seriesID kernel.UUID, pos entry.Position) error {
	e, err := entry.NewEntry(kernel.NewUUID(), name, released, f.typeID)
	if err != nil {
		return err
	}
	err = f.inTx(func(uow ports.UnitOfWork) error {
		repo := uow.EntryRepository()
		if _, err := f.ordering.SetPosition(f.ctx, repo, e, seriesID, pos); err != nil {
			return err
		}
		return repo.Add(f.ctx, e)
	})
	if err == nil {
		f.ids[name] = e.ID()
	}
	return err
}

func (f *catalogFixture) move(name string, seriesID kernel.UUID, pos entry.Position) error {
	return f.inTx(func(uow ports.UnitOfWork) error {
		repo := uow.EntryRepository()
		e, err := repo.Get(f.ctx, f.ids[name])
		if err != nil {
			return err
		}
		if _, err = f.ordering.SetPosition(f.ctx, repo, e, seriesID, pos); err != nil {
			return err
		}
		return repo.Update(f.ctx, e)
	})
}

func (f *catalogFixture) remove(name string) error {
	return f.inTx(func(uow ports.UnitOfWork) error {
		repo := uow.EntryRepository()
		e, err := repo.Get(f.ctx, f.ids[name])
		if err != nil {
			return err
		}
		if _, err = f.ordering.RemovePosition(f.ctx, repo, e); err != nil {
			return err
		}
		return repo.Delete(f.ctx, e.ID())
	})
}

// positions reads name -> order_in_series of a series straight from the table.
func (f *catalogFixture) positions(t *testing.T, seriesID kernel.UUID) map[string]int {
	t.Helper()
	var rows []struct {
		Name     string
		Position int
	}
	err := f.db.Table("entries").Select("name, position").Where("series_id = ?", seriesID.Bytes()).Scan(&rows).Error
	require.NoError(t, err)

	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.Name] = r.Position
	}
	return out
}

func assertGapless(t *testing.T, positions map[string]int) {
	t.Helper()
	seen := make(map[int]bool, len(positions))
	for name, pos := range positions {
		require.False(t, seen[pos], "position %d is taken twice (%s)", pos, name)
		seen[pos] = true
	}
	for i := 1; i <= len(positions); i++ {
		require.True(t, seen[i], "position %d is missing", i)
	}
}

func runReferenceScenario(t *testing.T, db *gorm.DB) {
	f := newCatalogFixture(t, db)

	require.NoError(t, f.create("entry1", f.seriesID, 1))
	require.NoError(t, f.create("entry2", f.seriesID, 2))
	require.NoError(t, f.create("entry3", f.seriesID, 3))

	require.NoError(t, f.create("entry4", f.seriesID, 1))
	assert.Equal(t, map[string]int{"entry4": 1, "entry1": 2, "entry2": 3, "entry3": 4}, f.positions(t, f.seriesID))

	require.NoError(t, f.create("entry5", f.seriesID, 5))
	require.NoError(t, f.move("entry1", f.seriesID, 4))
	assert.Equal(t, map[string]int{"entry4": 1, "entry2": 2, "entry3": 3, "entry1": 4, "entry5": 5}, f.positions(t, f.seriesID))

	require.NoError(t, f.move("entry1", f.seriesID, 2))
	assert.Equal(t, map[string]int{"entry4": 1, "entry1": 2, "entry2": 3, "entry3": 4, "entry5": 5}, f.positions(t, f.seriesID))

	require.NoError(t, f.remove("entry2"))
	assert.Equal(t, map[string]int{"entry4": 1, "entry1": 2, "entry3": 3, "entry5": 4}, f.positions(t, f.seriesID))

	require.NoError(t, f.remove("entry5"))
	assert.Equal(t, map[string]int{"entry4": 1, "entry1": 2, "entry3": 3}, f.positions(t, f.seriesID))

	err := f.create("too far", f.seriesID, 5)
	require.ErrorIs(t, err, entry.ErrInvalidPosition)
	assert.EqualError(t, err, "invalid position: position must be between 1 and 4")

	err = f.move("entry4", f.seriesID, 4)
	require.ErrorIs(t, err, entry.ErrInvalidPosition)
	assert.Equal(t, map[string]int{"entry4": 1, "entry1": 2, "entry3": 3}, f.positions(t, f.seriesID))
}

func runRelocation(t *testing.T, db *gorm.DB) {
	f := newCatalogFixture(t, db)
	other := f.addSeries(t, "Dune")

	require.NoError(t, f.create("a1", f.seriesID, 1))
	require.NoError(t, f.create("a2", f.seriesID, 2))
	require.NoError(t, f.create("a3", f.seriesID, 3))
	require.NoError(t, f.create("b1", other, 1))

	require.NoError(t, f.move("a1", other, 1))

	assert.Equal(t, map[string]int{"a2": 1, "a3": 2}, f.positions(t, f.seriesID))
	assert.Equal(t, map[string]int{"a1": 1, "b1": 2}, f.positions(t, other))
}

// runRollbackKeepsPositions stages a shift and then fails the entry write:
// the whole transaction must disappear.
func runRollbackKeepsPositions(t *testing.T, db *gorm.DB) {
	f := newCatalogFixture(t, db)
	require.NoError(t, f.create("a", f.seriesID, 1))
	require.NoError(t, f.create("b", f.seriesID, 2))
	before := f.positions(t, f.seriesID)

	orphanType := kernel.NewUUID()
	e, err := entry.NewEntry(kernel.NewUUID(), "dangling", released, orphanType)
	require.NoError(t, err)

	err = f.inTx(func(uow ports.UnitOfWork) error {
		repo := uow.EntryRepository()
		change, err := f.ordering.SetPosition(f.ctx, repo, e, f.seriesID, 1)
		if err != nil {
			return err
		}
		if change.Shifted != 2 {
			return fmt.Errorf("expected two shifted siblings, got %d", change.Shifted)
		}
		return repo.Add(f.ctx, e)
	})

	require.ErrorIs(t, err, errs.ErrIntegrityViolation)
	assert.Equal(t, before, f.positions(t, f.seriesID))
}

func runUnknownSeries(t *testing.T, db *gorm.DB) {
	f := newCatalogFixture(t, db)

	err := f.create("orphan", kernel.NewUUID(), 1)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "series", notFound.ParamName)
}

func runReferentialIntegrity(t *testing.T, db *gorm.DB) {
	f := newCatalogFixture(t, db)
	require.NoError(t, f.create("first", f.seriesID, 1))

	c, err := character.NewCharacter(kernel.NewUUID(), "Royce Melborn", f.seriesID, f.ids["first"])
	require.NoError(t, err)
	require.NoError(t, f.inTx(func(uow ports.UnitOfWork) error {
		return uow.CharacterRepository().Add(f.ctx, c)
	}))

	err = f.inTx(func(uow ports.UnitOfWork) error {
		return uow.SeriesRepository().Delete(f.ctx, f.seriesID)
	})
	require.ErrorIs(t, err, errs.ErrIntegrityViolation, "series still has entries")

	err = f.remove("first")
	require.ErrorIs(t, err, errs.ErrIntegrityViolation, "entry is the character's first entry")
	assert.Equal(t, map[string]int{"first": 1}, f.positions(t, f.seriesID))

	dup, err := series.NewSeries(kernel.NewUUID(), "The Riyria Revelations")
	require.NoError(t, err)
	err = f.inTx(func(uow ports.UnitOfWork) error {
		return uow.SeriesRepository().Add(f.ctx, dup)
	})
	require.ErrorIs(t, err, errs.ErrIntegrityViolation, "series names are unique")
}

func runRepositoryRoundTrip(t *testing.T, db *gorm.DB) {
	f := newCatalogFixture(t, db)
	require.NoError(t, f.create("Theft of Swords", f.seriesID, 1))

	require.NoError(t, f.inTx(func(uow ports.UnitOfWork) error {
		e, err := uow.EntryRepository().Get(f.ctx, f.ids["Theft of Swords"])
		if err != nil {
			return err
		}
		assert.Equal(t, "Theft of Swords", e.Name())
		assert.Equal(t, released, e.Date())
		assert.True(t, e.EntryTypeID().IsEqual(f.typeID))
		assert.True(t, e.SeriesID().IsEqual(f.seriesID))
		assert.Equal(t, entry.Position(1), e.Position())
		return nil
	}))

	err := f.inTx(func(uow ports.UnitOfWork) error {
		_, err := uow.SeriesRepository().Get(f.ctx, kernel.NewUUID())
		return err
	})
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	err = f.inTx(func(uow ports.UnitOfWork) error {
		return uow.EntryTypeRepository().Delete(f.ctx, kernel.NewUUID())
	})
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

// runConcurrentInserts puts n entries at position 1 of one series at once.
func runConcurrentInserts(t *testing.T, db *gorm.DB, n int) {
	f := newCatalogFixture(t, db)

	var wg sync.WaitGroup
	errCh := make(chan error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := entry.NewEntry(kernel.NewUUID(), fmt.Sprintf("entry%02d", i), released, f.typeID)
			if err != nil {
				errCh <- err
				return
			}
			errCh <- f.inTx(func(uow ports.UnitOfWork) error {
				repo := uow.EntryRepository()
				if _, err := f.ordering.SetPosition(f.ctx, repo, e, f.seriesID, 1); err != nil {
					return err
				}
				return repo.Add(f.ctx, e)
			})
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	positions := f.positions(t, f.seriesID)
	require.Len(t, positions, n)
	assertGapless(t, positions)
}
