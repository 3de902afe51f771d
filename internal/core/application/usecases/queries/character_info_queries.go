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
	ErrGetCharacterInfoQueryIsNotConstructed = errors.New(
		"GetCharacterInfoQuery must be created via NewGetCharacterInfoQuery constructor",
	)
	ErrListCharacterInfoQueryIsNotConstructed = errors.New(
		"ListCharacterInfoQuery must be created via NewListCharacterInfoQuery constructor",
	)
)

type CharacterInfoView struct {
	ID          kernel.UUID
	Text        string
	EntryID     kernel.UUID
	CharacterID kernel.UUID
}

type CharacterInfoFilter struct {
	EntryID     *kernel.UUID
	CharacterID *kernel.UUID
}

func (f CharacterInfoFilter) apply(tx *gorm.DB) *gorm.DB {
	tx = whereID(tx, "entry_id", f.EntryID)
	return whereID(tx, "character_id", f.CharacterID)
}

type characterInfoRow struct {
	ID          uuid.UUID
	Text        string
	EntryID     uuid.UUID
	CharacterID uuid.UUID
}

func characterInfoView(row characterInfoRow) (CharacterInfoView, error) {
	id, err := kernel.UUIDFromGoogle(row.ID)
	if err != nil {
		return CharacterInfoView{}, err
	}
	entryID, err := kernel.UUIDFromGoogle(row.EntryID)
	if err != nil {
		return CharacterInfoView{}, err
	}
	characterID, err := kernel.UUIDFromGoogle(row.CharacterID)
	if err != nil {
		return CharacterInfoView{}, err
	}
	return CharacterInfoView{ID: id, Text: row.Text, EntryID: entryID, CharacterID: characterID}, nil
}

type GetCharacterInfoQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetCharacterInfoQuery(id kernel.UUID) (GetCharacterInfoQuery, error) {
	if err := id.Validate(); err != nil {
		return GetCharacterInfoQuery{}, err
	}
	return GetCharacterInfoQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCharacterInfoQuery) Validate() error {
	return q.guard.Validate(ErrGetCharacterInfoQueryIsNotConstructed)
}

type GetCharacterInfoQueryHandler struct {
	db *gorm.DB
}

func NewGetCharacterInfoQueryHandler(db *gorm.DB) GetCharacterInfoQueryHandler {
	return GetCharacterInfoQueryHandler{db: db}
}

func (h GetCharacterInfoQueryHandler) Handle(
	ctx context.Context,
	query GetCharacterInfoQuery,
) (CharacterInfoView, error) {
	if err := query.Validate(); err != nil {
		return CharacterInfoView{}, err
	}
	return getOne(ctx, h.db, "character_info", "character info", query.id, characterInfoView)
}

type ListCharacterInfoQuery struct {
	filter CharacterInfoFilter
	page   Page
	guard  guard.ConstructorGuard
}

func NewListCharacterInfoQuery(filter CharacterInfoFilter, page Page) ListCharacterInfoQuery {
	return ListCharacterInfoQuery{filter: filter, page: page, guard: guard.NewConstructorGuard()}
}

func (q ListCharacterInfoQuery) Validate() error {
	return q.guard.Validate(ErrListCharacterInfoQueryIsNotConstructed)
}

type ListCharacterInfoQueryHandler struct {
	db *gorm.DB
}

func NewListCharacterInfoQueryHandler(db *gorm.DB) ListCharacterInfoQueryHandler {
	return ListCharacterInfoQueryHandler{db: db}
}

func (h ListCharacterInfoQueryHandler) Handle(
	ctx context.Context,
	query ListCharacterInfoQuery,
) (PagedResult[CharacterInfoView], error) {
	if err := query.Validate(); err != nil {
		return PagedResult[CharacterInfoView]{}, err
	}
	return listPage(ctx, h.db, "character_info", query.filter.apply, "character_id, id", query.page, characterInfoView)
}
