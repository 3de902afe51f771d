// Package characterrepo persists characters and their information.
package characterrepo

import (
	"catalog/internal/adapters/out/persistence/entryrepo"
	"catalog/internal/adapters/out/persistence/seriesrepo"
	"catalog/internal/core/domain/model/character"
	"catalog/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CharacterDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(240);not null"`
	SeriesID     uuid.UUID `gorm:"type:uuid;not null;index"`
	FirstEntryID uuid.UUID `gorm:"column:occurs_first_in_entry_id;type:uuid;not null;index"`

	Series     *seriesrepo.SeriesDTO `gorm:"foreignKey:SeriesID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	FirstEntry *entryrepo.EntryDTO   `gorm:"foreignKey:FirstEntryID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (CharacterDTO) TableName() string {
	return "characters"
}

// InfoDTO is a row of character_info: one fact about a character, valid as
// of an entry.
type InfoDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Text        string    `gorm:"type:varchar(240);not null"`
	EntryID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CharacterID uuid.UUID `gorm:"type:uuid;not null;index"`

	Entry     *entryrepo.EntryDTO `gorm:"foreignKey:EntryID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Character *CharacterDTO       `gorm:"foreignKey:CharacterID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (InfoDTO) TableName() string {
	return "character_info"
}

func characterFromDomain(aggregate *character.Character) CharacterDTO {
	return CharacterDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		SeriesID:     aggregate.SeriesID().Bytes(),
		FirstEntryID: aggregate.FirstEntryID().Bytes(),
	}
}

func characterToDomain(dto CharacterDTO) (*character.Character, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	seriesID, err := kernel.UUIDFromGoogle(dto.SeriesID)
	if err != nil {
		return nil, err
	}
	firstEntryID, err := kernel.UUIDFromGoogle(dto.FirstEntryID)
	if err != nil {
		return nil, err
	}
	return character.RestoreCharacter(id, dto.Name, seriesID, firstEntryID)
}

func infoFromDomain(aggregate *character.Info) InfoDTO {
	return InfoDTO{
		ID:          aggregate.ID().Bytes(),
		Text:        aggregate.Text(),
		EntryID:     aggregate.EntryID().Bytes(),
		CharacterID: aggregate.CharacterID().Bytes(),
	}
}

func infoToDomain(dto InfoDTO) (*character.Info, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	entryID, err := kernel.UUIDFromGoogle(dto.EntryID)
	if err != nil {
		return nil, err
	}
	characterID, err := kernel.UUIDFromGoogle(dto.CharacterID)
	if err != nil {
		return nil, err
	}
	return character.RestoreInfo(id, dto.Text, entryID, characterID)
}
