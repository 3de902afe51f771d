package http

import (
	"catalog/internal/core/application/usecases/queries"
	"catalog/internal/core/domain/model/kernel"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Page is the envelope of every list and search response.
type Page[T any] struct {
	Size   int64 `json:"size"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Data   []T   `json:"data"`
}

// PageParams are the optional offset and limit query parameters.
type PageParams struct {
	Offset *int `form:"offset,omitempty" json:"offset,omitempty"`
	Limit  *int `form:"limit,omitempty"  json:"limit,omitempty"`
}

type Series struct {
	Id   openapi_types.UUID `json:"id"`
	Name string             `json:"name"`
}

type SeriesInput struct {
	Name string `json:"name"`
}

type SeriesSearch struct {
	Id   *openapi_types.UUID `json:"id,omitempty"`
	Name *string             `json:"name,omitempty"`
}

type EntryType struct {
	Id   openapi_types.UUID `json:"id"`
	Name string             `json:"name"`
}

type EntryTypeInput struct {
	Name string `json:"name"`
}

type EntryTypeSearch struct {
	Id   *openapi_types.UUID `json:"id,omitempty"`
	Name *string             `json:"name,omitempty"`
}

type Entry struct {
	Id            openapi_types.UUID `json:"id"`
	Name          string             `json:"name"`
	Date          openapi_types.Date `json:"date"`
	OrderInSeries int                `json:"order_in_series"`
	EntrytypeId   openapi_types.UUID `json:"entrytype_id"`
	SeriesId      openapi_types.UUID `json:"series_id"`
}

type EntryInput struct {
	Name          string             `json:"name"`
	Date          openapi_types.Date `json:"date"`
	OrderInSeries int                `json:"order_in_series"`
	EntrytypeId   openapi_types.UUID `json:"entrytype_id"`
	SeriesId      openapi_types.UUID `json:"series_id"`
}

type EntrySearch struct {
	Id            *openapi_types.UUID `json:"id,omitempty"`
	Name          *string             `json:"name,omitempty"`
	Date          *openapi_types.Date `json:"date,omitempty"`
	OrderInSeries *int                `json:"order_in_series,omitempty"`
	EntrytypeId   *openapi_types.UUID `json:"entrytype_id,omitempty"`
	SeriesId      *openapi_types.UUID `json:"series_id,omitempty"`
}

type Character struct {
	Id                   openapi_types.UUID `json:"id"`
	Name                 string             `json:"name"`
	SeriesId             openapi_types.UUID `json:"series_id"`
	OccursFirstInEntryId openapi_types.UUID `json:"occurs_first_in_entry_id"`
}

type CharacterInput struct {
	Name                 string             `json:"name"`
	SeriesId             openapi_types.UUID `json:"series_id"`
	OccursFirstInEntryId openapi_types.UUID `json:"occurs_first_in_entry_id"`
}

type CharacterSearch struct {
	Id                   *openapi_types.UUID `json:"id,omitempty"`
	Name                 *string             `json:"name,omitempty"`
	SeriesId             *openapi_types.UUID `json:"series_id,omitempty"`
	OccursFirstInEntryId *openapi_types.UUID `json:"occurs_first_in_entry_id,omitempty"`
}

type CharacterInfo struct {
	Id          openapi_types.UUID `json:"id"`
	Text        string             `json:"text"`
	EntryId     openapi_types.UUID `json:"entry_id"`
	CharacterId openapi_types.UUID `json:"character_id"`
}

type CharacterInfoInput struct {
	Text        string             `json:"text"`
	EntryId     openapi_types.UUID `json:"entry_id"`
	CharacterId openapi_types.UUID `json:"character_id"`
}

func toPage[V, T any](result queries.PagedResult[V], convert func(V) T) Page[T] {
	data := make([]T, 0, len(result.Data))
	for _, v := range result.Data {
		data = append(data, convert(v))
	}
	return Page[T]{Size: result.Size, Limit: result.Limit, Offset: result.Offset, Data: data}
}

func toSeries(v queries.SeriesView) Series {
	return Series{Id: v.ID.Bytes(), Name: v.Name}
}

func toEntryType(v queries.EntryTypeView) EntryType {
	return EntryType{Id: v.ID.Bytes(), Name: v.Name}
}

func toEntry(v queries.EntryView) Entry {
	return Entry{
		Id:            v.ID.Bytes(),
		Name:          v.Name,
		Date:          openapi_types.Date{Time: v.Date},
		OrderInSeries: v.Position,
		EntrytypeId:   v.EntryTypeID.Bytes(),
		SeriesId:      v.SeriesID.Bytes(),
	}
}

func toCharacter(v queries.CharacterView) Character {
	return Character{
		Id:                   v.ID.Bytes(),
		Name:                 v.Name,
		SeriesId:             v.SeriesID.Bytes(),
		OccursFirstInEntryId: v.FirstEntryID.Bytes(),
	}
}

func toCharacterInfo(v queries.CharacterInfoView) CharacterInfo {
	return CharacterInfo{
		Id:          v.ID.Bytes(),
		Text:        v.Text,
		EntryId:     v.EntryID.Bytes(),
		CharacterId: v.CharacterID.Bytes(),
	}
}

// toKernelID converts a bound UUID. The nil UUID fails validation.
func toKernelID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromGoogle(id)
}

// toKernelIDPtr converts an optional search field.
func toKernelIDPtr(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromGoogle(*id)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func (p PageParams) page() (queries.Page, error) {
	offset := 0
	if p.Offset != nil {
		offset = *p.Offset
	}
	limit := queries.MaxLimit
	if p.Limit != nil {
		limit = *p.Limit
	}
	return queries.NewPage(offset, limit)
}
