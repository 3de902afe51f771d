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
	ErrGetCharacterQueryIsNotConstructed = errors.New(
		"GetCharacterQuery must be created via NewGetCharacterQuery constructor",
	)
	ErrListCharactersQueryIsNotConstructed = errors.New(
		"ListCharactersQuery must be created via NewListCharactersQuery or NewSearchCharactersQuery constructor",
	)
)

type CharacterView struct {
	ID           kernel.UUID
	Name         string
	SeriesID     kernel.UUID
	FirstEntryID kernel.UUID
}

type CharacterFilter struct {
	ID           *kernel.UUID
	Name         *string
	SeriesID     *kernel.UUID
	FirstEntryID *kernel.UUID
}

func (f CharacterFilter) IsEmpty() bool {
	return f.ID == nil && f.Name == nil && f.SeriesID == nil && f.FirstEntryID == nil
}

func (f CharacterFilter) apply(tx *gorm.DB) *gorm.DB {
	tx = whereID(tx, "id", f.ID)
	tx = whereNameContains(tx, "name", f.Name)
	tx = whereID(tx, "series_id", f.SeriesID)
	return whereID(tx, "occurs_first_in_entry_id", f.FirstEntryID)
}

type characterRow struct {
	ID           uuid.UUID
	Name         string
	SeriesID     uuid.UUID
	FirstEntryID uuid.UUID `gorm:"column:occurs_first_in_entry_id"`
}

func characterView(row characterRow) (CharacterView, error) {
	id, err := kernel.UUIDFromGoogle(row.ID)
	if err != nil {
		return CharacterView{}, err
	}
	seriesID, err := kernel.UUIDFromGoogle(row.SeriesID)
	if err != nil {
		return CharacterView{}, err
	}
	firstEntryID, err := kernel.UUIDFromGoogle(row.FirstEntryID)
	if err != nil {
		return CharacterView{}, err
	}
	return CharacterView{ID: id, Name: row.Name, SeriesID: seriesID, FirstEntryID: firstEntryID}, nil
}

type GetCharacterQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetCharacterQuery(id kernel.UUID) (GetCharacterQuery, error) {
	if err := id.Validate(); err != nil {
		return GetCharacterQuery{}, err
	}
	return GetCharacterQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCharacterQuery) Validate() error {
	return q.guard.Validate(ErrGetCharacterQueryIsNotConstructed)
}

type GetCharacterQueryHandler struct {
	db *gorm.DB
}

func NewGetCharacterQueryHandler(db *gorm.DB) GetCharacterQueryHandler {
	return GetCharacterQueryHandler{db: db}
}

func (h GetCharacterQueryHandler) Handle(ctx context.Context, query GetCharacterQuery) (CharacterView, error) {
	if err := query.Validate(); err != nil {
		return CharacterView{}, err
	}
	return getOne(ctx, h.db, "characters", "character", query.id, characterView)
}

type ListCharactersQuery struct {
	filter CharacterFilter
	page   Page
	guard  guard.ConstructorGuard
}

func NewListCharactersQuery(filter CharacterFilter, page Page) ListCharactersQuery {
	return ListCharactersQuery{filter: filter, page: page, guard: guard.NewConstructorGuard()}
}

func NewSearchCharactersQuery(filter CharacterFilter, page Page) (ListCharactersQuery, error) {
	if filter.IsEmpty() {
		return ListCharactersQuery{}, ErrEmptyFilter
	}
	return NewListCharactersQuery(filter, page), nil
}

func (q ListCharactersQuery) Validate() error {
	return q.guard.Validate(ErrListCharactersQueryIsNotConstructed)
}

type ListCharactersQueryHandler struct {
	db *gorm.DB
}

func NewListCharactersQueryHandler(db *gorm.DB) ListCharactersQueryHandler {
	return ListCharactersQueryHandler{db: db}
}

func (h ListCharactersQueryHandler) Handle(
	ctx context.Context,
	query ListCharactersQuery,
) (PagedResult[CharacterView], error) {
	if err := query.Validate(); err != nil {
		return PagedResult[CharacterView]{}, err
	}
	return listPage(ctx, h.db, "characters", query.filter.apply, "name, id", query.page, characterView)
}
