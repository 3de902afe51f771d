package queries

import (
	"context"
	"errors"
	"time"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGetEntryQueryIsNotConstructed = errors.New(
		"GetEntryQuery must be created via NewGetEntryQuery constructor",
	)
	ErrListEntriesQueryIsNotConstructed = errors.New(
		"ListEntriesQuery must be created via NewListEntriesQuery or NewSearchEntriesQuery constructor",
	)
)

// EntryView is the read model of an entry. Position is its order_in_series.
type EntryView struct {
	ID          kernel.UUID
	Name        string
	Date        time.Time
	EntryTypeID kernel.UUID
	SeriesID    kernel.UUID
	Position    int
}

// EntryFilter narrows an entry list. Nil fields are not filtered on; Name is
// a substring match, Date matches the calendar day.
type EntryFilter struct {
	ID          *kernel.UUID
	Name        *string
	Date        *time.Time
	Position    *int
	EntryTypeID *kernel.UUID
	SeriesID    *kernel.UUID
}

func (f EntryFilter) IsEmpty() bool {
	return f.ID == nil && f.Name == nil && f.Date == nil &&
		f.Position == nil && f.EntryTypeID == nil && f.SeriesID == nil
}

func (f EntryFilter) apply(tx *gorm.DB) *gorm.DB {
	tx = whereID(tx, "id", f.ID)
	tx = whereNameContains(tx, "name", f.Name)
	if f.Date != nil {
		y, m, d := f.Date.Date()
		tx = tx.Where("date = ?", time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	}
	if f.Position != nil {
		tx = tx.Where("position = ?", *f.Position)
	}
	tx = whereID(tx, "entry_type_id", f.EntryTypeID)
	return whereID(tx, "series_id", f.SeriesID)
}

type entryRow struct {
	ID          uuid.UUID
	Name        string
	Date        time.Time
	EntryTypeID uuid.UUID
	SeriesID    uuid.UUID
	Position    int
}

func entryView(row entryRow) (EntryView, error) {
	id, err := kernel.UUIDFromGoogle(row.ID)
	if err != nil {
		return EntryView{}, err
	}
	typeID, err := kernel.UUIDFromGoogle(row.EntryTypeID)
	if err != nil {
		return EntryView{}, err
	}
	seriesID, err := kernel.UUIDFromGoogle(row.SeriesID)
	if err != nil {
		return EntryView{}, err
	}

	y, m, d := row.Date.Date()
	return EntryView{
		ID:          id,
		Name:        row.Name,
		Date:        time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		EntryTypeID: typeID,
		SeriesID:    seriesID,
		Position:    row.Position,
	}, nil
}

type GetEntryQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetEntryQuery(id kernel.UUID) (GetEntryQuery, error) {
	if err := id.Validate(); err != nil {
		return GetEntryQuery{}, err
	}
	return GetEntryQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEntryQuery) Validate() error {
	return q.guard.Validate(ErrGetEntryQueryIsNotConstructed)
}

type GetEntryQueryHandler struct {
	db *gorm.DB
}

func NewGetEntryQueryHandler(db *gorm.DB) GetEntryQueryHandler {
	return GetEntryQueryHandler{db: db}
}

func (h GetEntryQueryHandler) Handle(ctx context.Context, query GetEntryQuery) (EntryView, error) {
	if err := query.Validate(); err != nil {
		return EntryView{}, err
	}
	return getOne(ctx, h.db, "entries", "entry", query.id, entryView)
}

// ListEntriesQuery lists entries grouped by series in order_in_series order.
// It also backs the entries of one series or one entry type.
type ListEntriesQuery struct {
	filter EntryFilter
	page   Page
	guard  guard.ConstructorGuard
}

func NewListEntriesQuery(filter EntryFilter, page Page) ListEntriesQuery {
	return ListEntriesQuery{filter: filter, page: page, guard: guard.NewConstructorGuard()}
}

func NewSearchEntriesQuery(filter EntryFilter, page Page) (ListEntriesQuery, error) {
	if filter.IsEmpty() {
		return ListEntriesQuery{}, ErrEmptyFilter
	}
	return NewListEntriesQuery(filter, page), nil
}

func (q ListEntriesQuery) Validate() error {
	return q.guard.Validate(ErrListEntriesQueryIsNotConstructed)
}

type ListEntriesQueryHandler struct {
	db *gorm.DB
}

func NewListEntriesQueryHandler(db *gorm.DB) ListEntriesQueryHandler {
	return ListEntriesQueryHandler{db: db}
}

func (h ListEntriesQueryHandler) Handle(ctx context.Context, query ListEntriesQuery) (PagedResult[EntryView], error) {
	if err := query.Validate(); err != nil {
		return PagedResult[EntryView]{}, err
	}
	return listPage(ctx, h.db, "entries", query.filter.apply, "series_id, position, id", query.page, entryView)
}
