package entry_test

import (
	"context"
	"errors"
	"math/rand"
	"slices"
	"testing"
	"time"

	"catalog/internal/core/domain/model/entry"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory entry relation. Entries are saved into it after
// each Ordering call the way a repository would persist them.
type memoryStore struct {
	series map[kernel.UUID]bool
	rows   map[kernel.UUID]*storedEntry

	calls    int
	locks    []kernel.UUID
	shiftErr error
}

type storedEntry struct {
	name     string
	typeID   kernel.UUID
	seriesID kernel.UUID
	position entry.Position
}

func newMemoryStore(series ...kernel.UUID) *memoryStore {
	s := &memoryStore{
		series: make(map[kernel.UUID]bool),
		rows:   make(map[kernel.UUID]*storedEntry),
	}
	for _, id := range series {
		s.series[id] = true
	}
	return s
}

func (s *memoryStore) LockSeries(_ context.Context, seriesID kernel.UUID) error {
	s.calls++
	if !s.series[seriesID] {
		return errs.NewObjectNotFoundError("series", seriesID)
	}
	s.locks = append(s.locks, seriesID)
	return nil
}

func (s *memoryStore) MaxPosition(_ context.Context, seriesID, exclude kernel.UUID) (entry.Position, error) {
	s.calls++
	maxPos := entry.Unset
	for id, r := range s.rows {
		if id == exclude || !r.seriesID.IsEqual(seriesID) {
			continue
		}
		maxPos = max(maxPos, r.position)
	}
	return maxPos, nil
}

func (s *memoryStore) ShiftPositions(
	_ context.Context,
	seriesID, exclude kernel.UUID,
	span entry.Span,
	delta int,
) (int64, error) {
	s.calls++
	if s.shiftErr != nil {
		return 0, s.shiftErr
	}
	var n int64
	for id, r := range s.rows {
		if id == exclude || !r.seriesID.IsEqual(seriesID) || !span.Contains(r.position) {
			continue
		}
		r.position += entry.Position(delta)
		n++
	}
	return n, nil
}

func (s *memoryStore) save(e *entry.Entry) {
	s.rows[e.ID()] = &storedEntry{
		name:     e.Name(),
		typeID:   e.EntryTypeID(),
		seriesID: e.SeriesID(),
		position: e.Position(),
	}
}

func (s *memoryStore) load(t *testing.T, id kernel.UUID) *entry.Entry {
	t.Helper()
	r, ok := s.rows[id]
	require.True(t, ok, "entry %s is not stored", id)
	e, err := entry.RestoreEntry(id, r.name, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), r.typeID, r.seriesID, r.position)
	require.NoError(t, err)
	return e
}

// positions returns name -> position for every entry of seriesID.
func (s *memoryStore) positions(seriesID kernel.UUID) map[string]entry.Position {
	out := make(map[string]entry.Position)
	for _, r := range s.rows {
		if r.seriesID.IsEqual(seriesID) {
			out[r.name] = r.position
		}
	}
	return out
}

func (s *memoryStore) snapshot() map[kernel.UUID]storedEntry {
	out := make(map[kernel.UUID]storedEntry, len(s.rows))
	for id, r := range s.rows {
		out[id] = *r
	}
	return out
}

type orderingFixture struct {
	ctx      context.Context
	store    *memoryStore
	ordering entry.Ordering
	seriesID kernel.UUID
	typeID   kernel.UUID
	ids      map[string]kernel.UUID
}

func newOrderingFixture(t *testing.T) *orderingFixture {
	t.Helper()
	seriesID := kernel.NewUUID()
	return &orderingFixture{
		ctx:      context.Background(),
		store:    newMemoryStore(seriesID),
		ordering: entry.NewOrdering(),
		seriesID: seriesID,
		typeID:   kernel.NewUUID(),
		ids:      make(map[string]kernel.UUID),
	}
}

func (f *orderingFixture) create(t *testing.T, seriesID kernel.UUID, name string, pos entry.Position) entry.Change {
	t.Helper()
	e, err := entry.NewEntry(kernel.NewUUID(), name, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), f.typeID)
	require.NoError(t, err)

	change, err := f.ordering.SetPosition(f.ctx, f.store, e, seriesID, pos)
	require.NoError(t, err)
	f.store.save(e)
	f.ids[name] = e.ID()
	return change
}

func (f *orderingFixture) move(t *testing.T, name string, seriesID kernel.UUID, pos entry.Position) entry.Change {
	t.Helper()
	e := f.store.load(t, f.ids[name])

	change, err := f.ordering.SetPosition(f.ctx, f.store, e, seriesID, pos)
	require.NoError(t, err)
	f.store.save(e)
	return change
}

func (f *orderingFixture) remove(t *testing.T, name string) entry.Change {
	t.Helper()
	e := f.store.load(t, f.ids[name])

	change, err := f.ordering.RemovePosition(f.ctx, f.store, e)
	require.NoError(t, err)
	delete(f.store.rows, e.ID())
	delete(f.ids, name)
	return change
}

func TestOrdering_ReferenceScenario(t *testing.T) {
	f := newOrderingFixture(t)
	f.create(t, f.seriesID, "entry1", 1)
	f.create(t, f.seriesID, "entry2", 2)
	f.create(t, f.seriesID, "entry3", 3)

	change := f.create(t, f.seriesID, "entry4", 1)
	assert.Equal(t, entry.TransitionInsert, change.Transition)
	assert.Equal(t, int64(3), change.Shifted)
	assert.Equal(t, map[string]entry.Position{
		"entry4": 1, "entry1": 2, "entry2": 3, "entry3": 4,
	}, f.store.positions(f.seriesID))

	change = f.create(t, f.seriesID, "entry5", 5)
	assert.Equal(t, int64(0), change.Shifted)
	assert.Equal(t, map[string]entry.Position{
		"entry4": 1, "entry1": 2, "entry2": 3, "entry3": 4, "entry5": 5,
	}, f.store.positions(f.seriesID))

	change = f.move(t, "entry1", f.seriesID, 4)
	assert.Equal(t, entry.TransitionMoveForward, change.Transition)
	assert.Equal(t, int64(2), change.Shifted)
	assert.Equal(t, map[string]entry.Position{
		"entry4": 1, "entry2": 2, "entry3": 3, "entry1": 4, "entry5": 5,
	}, f.store.positions(f.seriesID))

	change = f.move(t, "entry1", f.seriesID, 2)
	assert.Equal(t, entry.TransitionMoveBackward, change.Transition)
	assert.Equal(t, int64(2), change.Shifted)
	assert.Equal(t, map[string]entry.Position{
		"entry4": 1, "entry1": 2, "entry2": 3, "entry3": 4, "entry5": 5,
	}, f.store.positions(f.seriesID))

	change = f.remove(t, "entry2")
	assert.Equal(t, entry.TransitionRemove, change.Transition)
	assert.Equal(t, entry.Position(3), change.Position)
	assert.Equal(t, map[string]entry.Position{
		"entry4": 1, "entry1": 2, "entry3": 3, "entry5": 4,
	}, f.store.positions(f.seriesID))

	f.remove(t, "entry5")
	assert.Equal(t, map[string]entry.Position{
		"entry4": 1, "entry1": 2, "entry3": 3,
	}, f.store.positions(f.seriesID))
}

func TestOrdering_InsertAtEndShiftsNothing(t *testing.T) {
	f := newOrderingFixture(t)
	for i, name := range []string{"a", "b", "c", "d"} {
		change := f.create(t, f.seriesID, name, entry.Position(i+1))
		assert.Equal(t, int64(0), change.Shifted, "append %s", name)
	}
}

func TestOrdering_NoOpTouchesNothing(t *testing.T) {
	f := newOrderingFixture(t)
	f.create(t, f.seriesID, "a", 1)
	f.create(t, f.seriesID, "b", 2)

	before := f.store.snapshot()
	f.store.calls = 0

	e := f.store.load(t, f.ids["b"])
	change, err := f.ordering.SetPosition(f.ctx, f.store, e, f.seriesID, 2)

	require.NoError(t, err)
	assert.Equal(t, entry.TransitionNone, change.Transition)
	assert.Zero(t, f.store.calls, "a no-op must not reach the store")
	assert.Equal(t, before, f.store.snapshot())
}

func TestOrdering_BoundsRejection(t *testing.T) {
	f := newOrderingFixture(t)
	f.create(t, f.seriesID, "a", 1)
	f.create(t, f.seriesID, "b", 2)
	f.create(t, f.seriesID, "c", 3)

	tests := []struct {
		name     string
		placed   bool
		position entry.Position
		reason   string
	}{
		{"insert unset", false, entry.Unset, "position can't be unset"},
		{"insert negative", false, -1, "position can't be <= 0"},
		{"insert past end", false, 5, "position must be between 1 and 4"},
		{"move unset", true, entry.Unset, "position can't be unset"},
		{"move negative", true, -3, "position can't be <= 0"},
		{"move past end", true, 4, "position must be between 1 and 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := f.store.snapshot()

			var e *entry.Entry
			if tt.placed {
				e = f.store.load(t, f.ids["a"])
			} else {
				var err error
				e, err = entry.NewEntry(kernel.NewUUID(), "new", time.Now(), f.typeID)
				require.NoError(t, err)
			}
			oldPosition := e.Position()

			change, err := f.ordering.SetPosition(f.ctx, f.store, e, f.seriesID, tt.position)

			require.Error(t, err)
			assert.ErrorIs(t, err, entry.ErrInvalidPosition)
			var invalid *entry.InvalidPositionError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.reason, invalid.Reason)
			assert.Equal(t, tt.position, invalid.Value)
			assert.Equal(t, entry.Change{}, change)
			assert.Equal(t, oldPosition, e.Position())
			assert.Equal(t, before, f.store.snapshot())
		})
	}
}

func TestOrdering_Relocate(t *testing.T) {
	f := newOrderingFixture(t)
	other := kernel.NewUUID()
	f.store.series[other] = true

	f.create(t, f.seriesID, "a1", 1)
	f.create(t, f.seriesID, "a2", 2)
	f.create(t, f.seriesID, "a3", 3)
	f.create(t, other, "b1", 1)
	f.create(t, other, "b2", 2)

	f.store.locks = nil
	change := f.move(t, "a2", other, 1)

	assert.Equal(t, entry.TransitionRelocate, change.Transition)
	assert.Equal(t, entry.Position(1), change.Position)
	assert.Equal(t, int64(3), change.Shifted, "a3 compacted, b1 and b2 shifted")
	assert.Equal(t, map[string]entry.Position{"a1": 1, "a3": 2}, f.store.positions(f.seriesID))
	assert.Equal(t, map[string]entry.Position{"a2": 1, "b1": 2, "b2": 3}, f.store.positions(other))

	require.Len(t, f.store.locks, 2)
	assert.Negative(t, f.store.locks[0].Compare(f.store.locks[1]), "series are locked in a stable order")

	t.Run("validates against the target series", func(t *testing.T) {
		before := f.store.snapshot()
		e := f.store.load(t, f.ids["a1"])

		_, err := f.ordering.SetPosition(f.ctx, f.store, e, other, 5)

		require.ErrorIs(t, err, entry.ErrInvalidPosition)
		assert.Contains(t, err.Error(), "position must be between 1 and 4")
		assert.Equal(t, before, f.store.snapshot())
	})

	t.Run("appends to the end of the target series", func(t *testing.T) {
		change := f.move(t, "a1", other, 4)

		assert.Equal(t, int64(1), change.Shifted, "only a3 compacted")
		assert.Equal(t, map[string]entry.Position{"a3": 1}, f.store.positions(f.seriesID))
		assert.Equal(t, map[string]entry.Position{"a2": 1, "b1": 2, "b2": 3, "a1": 4}, f.store.positions(other))
	})
}

func TestOrdering_UnknownSeries(t *testing.T) {
	f := newOrderingFixture(t)
	e, err := entry.NewEntry(kernel.NewUUID(), "orphan", time.Now(), f.typeID)
	require.NoError(t, err)

	_, err = f.ordering.SetPosition(f.ctx, f.store, e, kernel.NewUUID(), 1)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.False(t, e.IsPlaced())
}

func TestOrdering_StoreErrorsPassThrough(t *testing.T) {
	f := newOrderingFixture(t)
	f.create(t, f.seriesID, "a", 1)

	boom := errors.New("connection reset")
	f.store.shiftErr = boom

	e, err := entry.NewEntry(kernel.NewUUID(), "b", time.Now(), f.typeID)
	require.NoError(t, err)

	_, err = f.ordering.SetPosition(f.ctx, f.store, e, f.seriesID, 1)

	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, entry.ErrInvalidPosition)
	assert.False(t, e.IsPlaced(), "a failed insert leaves the entry unplaced")
}

func TestOrdering_RemovePositionRequiresPlacedEntry(t *testing.T) {
	f := newOrderingFixture(t)
	e, err := entry.NewEntry(kernel.NewUUID(), "a", time.Now(), f.typeID)
	require.NoError(t, err)

	_, err = f.ordering.RemovePosition(f.ctx, f.store, e)

	require.ErrorIs(t, err, entry.ErrEntryIsNotPlaced)
	assert.Zero(t, f.store.calls)
}

func TestOrdering_CrossSeriesIsolation(t *testing.T) {
	f := newOrderingFixture(t)
	other := kernel.NewUUID()
	f.store.series[other] = true

	f.create(t, other, "x1", 1)
	f.create(t, other, "x2", 2)
	f.create(t, other, "x3", 3)
	want := f.store.positions(other)

	f.create(t, f.seriesID, "a", 1)
	f.create(t, f.seriesID, "b", 1)
	f.create(t, f.seriesID, "c", 2)
	f.move(t, "a", f.seriesID, 1)
	f.move(t, "b", f.seriesID, 3)
	f.remove(t, "c")

	assert.Equal(t, want, f.store.positions(other))
}

// TestOrdering_MatchesSliceModel replays random inserts, moves, relocations,
// removals and rejected requests against a slice per series and checks that
// every series stays exactly 1..N after each step.
func TestOrdering_MatchesSliceModel(t *testing.T) {
	rnd := rand.New(rand.NewSource(20240607))

	f := newOrderingFixture(t)
	seriesIDs := []kernel.UUID{f.seriesID, kernel.NewUUID(), kernel.NewUUID()}
	for _, id := range seriesIDs {
		f.store.series[id] = true
	}
	model := make(map[kernel.UUID][]kernel.UUID)

	randomSeries := func() kernel.UUID { return seriesIDs[rnd.Intn(len(seriesIDs))] }
	randomEntry := func() (kernel.UUID, bool) {
		if len(f.store.rows) == 0 {
			return kernel.UUID{}, false
		}
		ids := make([]kernel.UUID, 0, len(f.store.rows))
		for _, list := range model {
			ids = append(ids, list...)
		}
		slices.SortFunc(ids, func(a, b kernel.UUID) int { return a.Compare(b) })
		return ids[rnd.Intn(len(ids))], true
	}

	for step := 0; step < 2000; step++ {
		switch op := rnd.Intn(10); {
		case op < 4:
			seriesID := randomSeries()
			pos := entry.Position(rnd.Intn(len(model[seriesID])+1) + 1)
			e, err := entry.NewEntry(kernel.NewUUID(), "e", time.Now(), f.typeID)
			require.NoError(t, err)

			_, err = f.ordering.SetPosition(f.ctx, f.store, e, seriesID, pos)
			require.NoError(t, err)
			f.store.save(e)
			model[seriesID] = slices.Insert(model[seriesID], int(pos)-1, e.ID())

		case op < 7:
			id, ok := randomEntry()
			if !ok {
				continue
			}
			e := f.store.load(t, id)
			target := e.SeriesID()
			if rnd.Intn(3) == 0 {
				target = randomSeries()
			}
			size := len(model[target])
			if target.IsEqual(e.SeriesID()) {
				size--
			}
			pos := entry.Position(rnd.Intn(size+1) + 1)

			_, err := f.ordering.SetPosition(f.ctx, f.store, e, target, pos)
			require.NoError(t, err)
			f.store.save(e)

			for sid, list := range model {
				if i := slices.Index(list, id); i >= 0 {
					model[sid] = slices.Delete(list, i, i+1)
				}
			}
			model[target] = slices.Insert(model[target], int(pos)-1, id)

		case op < 9:
			id, ok := randomEntry()
			if !ok {
				continue
			}
			e := f.store.load(t, id)

			_, err := f.ordering.RemovePosition(f.ctx, f.store, e)
			require.NoError(t, err)
			delete(f.store.rows, id)
			list := model[e.SeriesID()]
			i := slices.Index(list, id)
			model[e.SeriesID()] = slices.Delete(list, i, i+1)

		default:
			seriesID := randomSeries()
			bad := []entry.Position{entry.Unset, -1, entry.Position(len(model[seriesID]) + 2)}
			e, err := entry.NewEntry(kernel.NewUUID(), "rejected", time.Now(), f.typeID)
			require.NoError(t, err)
			before := f.store.snapshot()

			_, err = f.ordering.SetPosition(f.ctx, f.store, e, seriesID, bad[rnd.Intn(len(bad))])
			require.ErrorIs(t, err, entry.ErrInvalidPosition)
			require.Equal(t, before, f.store.snapshot())
		}

		for _, seriesID := range seriesIDs {
			for i, id := range model[seriesID] {
				r := f.store.rows[id]
				require.NotNil(t, r, "step %d", step)
				require.True(t, r.seriesID.IsEqual(seriesID), "step %d", step)
				require.Equal(t, entry.Position(i+1), r.position, "step %d: series must stay gapless", step)
			}
		}
		require.Len(t, f.store.rows, len(model[seriesIDs[0]])+len(model[seriesIDs[1]])+len(model[seriesIDs[2]]))
	}
}

func TestOrdering_LockSeries(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()
	if a.Compare(b) > 0 {
		a, b = b, a
	}
	store := newMemoryStore(a, b)

	err := entry.NewOrdering().LockSeries(context.Background(), store, b, a, b)

	require.NoError(t, err)
	assert.Equal(t, []kernel.UUID{a, b}, store.locks)
}
