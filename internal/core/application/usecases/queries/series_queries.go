package queries

import (
	"context"
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGetSeriesQueryIsNotConstructed = errors.New(
		"GetSeriesQuery must be created via NewGetSeriesQuery constructor",
	)
	ErrListSeriesQueryIsNotConstructed = errors.New(
		"ListSeriesQuery must be created via NewListSeriesQuery or NewSearchSeriesQuery constructor",
	)
)

// SeriesView is the read model of a series.
type SeriesView struct {
	ID   kernel.UUID
	Name string
}

// SeriesFilter narrows a series list. Nil fields are not filtered on.
type SeriesFilter struct {
	ID   *kernel.UUID
	Name *string
}

func (f SeriesFilter) IsEmpty() bool {
	return f.ID == nil && f.Name == nil
}

func (f SeriesFilter) apply(tx *gorm.DB) *gorm.DB {
	tx = whereID(tx, "id", f.ID)
	return whereNameContains(tx, "name", f.Name)
}

type namedRow struct {
	ID   uuid.UUID
	Name string
}

func seriesView(row namedRow) (SeriesView, error) {
	id, err := kernel.UUIDFromGoogle(row.ID)
	if err != nil {
		return SeriesView{}, err
	}
	return SeriesView{ID: id, Name: row.Name}, nil
}

type GetSeriesQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetSeriesQuery(id kernel.UUID) (GetSeriesQuery, error) {
	if err := id.Validate(); err != nil {
		return GetSeriesQuery{}, err
	}
	return GetSeriesQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSeriesQuery) Validate() error {
	return q.guard.Validate(ErrGetSeriesQueryIsNotConstructed)
}

type GetSeriesQueryHandler struct {
	db *gorm.DB
}

func NewGetSeriesQueryHandler(db *gorm.DB) GetSeriesQueryHandler {
	return GetSeriesQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for an unknown series.
func (h GetSeriesQueryHandler) Handle(ctx context.Context, query GetSeriesQuery) (SeriesView, error) {
	if err := query.Validate(); err != nil {
		return SeriesView{}, err
	}
	return getOne(ctx, h.db, "series", "series", query.id, seriesView)
}

type ListSeriesQuery struct {
	filter SeriesFilter
	page   Page
	guard  guard.ConstructorGuard
}

// NewListSeriesQuery lists series, optionally filtered.
func NewListSeriesQuery(filter SeriesFilter, page Page) ListSeriesQuery {
	return ListSeriesQuery{filter: filter, page: page, guard: guard.NewConstructorGuard()}
}

// NewSearchSeriesQuery is NewListSeriesQuery for an explicit search, which
// needs at least one filter field.
func NewSearchSeriesQuery(filter SeriesFilter, page Page) (ListSeriesQuery, error) {
	if filter.IsEmpty() {
		return ListSeriesQuery{}, ErrEmptyFilter
	}
	return NewListSeriesQuery(filter, page), nil
}

func (q ListSeriesQuery) Validate() error {
	return q.guard.Validate(ErrListSeriesQueryIsNotConstructed)
}

type ListSeriesQueryHandler struct {
	db *gorm.DB
}

func NewListSeriesQueryHandler(db *gorm.DB) ListSeriesQueryHandler {
	return ListSeriesQueryHandler{db: db}
}

// Handle returns the page of series ordered by name.
func (h ListSeriesQueryHandler) Handle(ctx context.Context, query ListSeriesQuery) (PagedResult[SeriesView], error) {
	if err := query.Validate(); err != nil {
		return PagedResult[SeriesView]{}, err
	}
	return listPage(ctx, h.db, "series", query.filter.apply, "name, id", query.page, seriesView)
}
