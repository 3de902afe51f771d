package queries

import (
	"context"
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetEntryTypeQueryIsNotConstructed = errors.New(
		"GetEntryTypeQuery must be created via NewGetEntryTypeQuery constructor",
	)
	ErrListEntryTypesQueryIsNotConstructed = errors.New(
		"ListEntryTypesQuery must be created via NewListEntryTypesQuery or NewSearchEntryTypesQuery constructor",
	)
)

type EntryTypeView struct {
	ID   kernel.UUID
	Name string
}

// EntryTypeFilter narrows an entry type list. Nil fields are not filtered on.
type EntryTypeFilter struct {
	ID   *kernel.UUID
	Name *string
}

func (f EntryTypeFilter) IsEmpty() bool {
	return f.ID == nil && f.Name == nil
}

func (f EntryTypeFilter) apply(tx *gorm.DB) *gorm.DB {
	tx = whereID(tx, "id", f.ID)
	return whereNameContains(tx, "name", f.Name)
}

func entryTypeView(row namedRow) (EntryTypeView, error) {
	id, err := kernel.UUIDFromGoogle(row.ID)
	if err != nil {
		return EntryTypeView{}, err
	}
	return EntryTypeView{ID: id, Name: row.Name}, nil
}

type GetEntryTypeQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetEntryTypeQuery(id kernel.UUID) (GetEntryTypeQuery, error) {
	if err := id.Validate(); err != nil {
		return GetEntryTypeQuery{}, err
	}
	return GetEntryTypeQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEntryTypeQuery) Validate() error {
	return q.guard.Validate(ErrGetEntryTypeQueryIsNotConstructed)
}

type GetEntryTypeQueryHandler struct {
	db *gorm.DB
}

func NewGetEntryTypeQueryHandler(db *gorm.DB) GetEntryTypeQueryHandler {
	return GetEntryTypeQueryHandler{db: db}
}

func (h GetEntryTypeQueryHandler) Handle(ctx context.Context, query GetEntryTypeQuery) (EntryTypeView, error) {
	if err := query.Validate(); err != nil {
		return EntryTypeView{}, err
	}
	return getOne(ctx, h.db, "entry_types", "entry type", query.id, entryTypeView)
}

type ListEntryTypesQuery struct {
	filter EntryTypeFilter
	page   Page
	guard  guard.ConstructorGuard
}

func NewListEntryTypesQuery(filter EntryTypeFilter, page Page) ListEntryTypesQuery {
	return ListEntryTypesQuery{filter: filter, page: page, guard: guard.NewConstructorGuard()}
}

func NewSearchEntryTypesQuery(filter EntryTypeFilter, page Page) (ListEntryTypesQuery, error) {
	if filter.IsEmpty() {
		return ListEntryTypesQuery{}, ErrEmptyFilter
	}
	return NewListEntryTypesQuery(filter, page), nil
}

func (q ListEntryTypesQuery) Validate() error {
	return q.guard.Validate(ErrListEntryTypesQueryIsNotConstructed)
}

type ListEntryTypesQueryHandler struct {
	db *gorm.DB
}

func NewListEntryTypesQueryHandler(db *gorm.DB) ListEntryTypesQueryHandler {
	return ListEntryTypesQueryHandler{db: db}
}

func (h ListEntryTypesQueryHandler) Handle(
	ctx context.Context,
	query ListEntryTypesQuery,
) (PagedResult[EntryTypeView], error) {
	if err := query.Validate(); err != nil {
		return PagedResult[EntryTypeView]{}, err
	}
	return listPage(ctx, h.db, "entry_types", query.filter.apply, "name, id", query.page, entryTypeView)
}
