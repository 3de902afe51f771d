// Package entryrepo persists entries and implements the position store the
// entry ordering engine renumbers siblings through.
package entryrepo

import (
	"time"

	"catalog/internal/adapters/out/persistence/entrytyperepo"
	"catalog/internal/adapters/out/persistence/seriesrepo"
	"catalog/internal/core/domain/model/entry"
	"catalog/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO is a row of the entries table.
//
// (series_id, position) is indexed, not unique: a shift renumbers rows one by
// one and passes through duplicate positions before the statement ends.
// entry.Ordering keeps the positions gapless under the series row lock.
type EntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(240);not null"`
	Date        time.Time `gorm:"type:date;not null"`
	EntryTypeID uuid.UUID `gorm:"type:uuid;not null;index"`
	SeriesID    uuid.UUID `gorm:"type:uuid;not null;index:idx_entries_series_position,priority:1"`
	Position    int       `gorm:"not null;index:idx_entries_series_position,priority:2"`

	EntryType *entrytyperepo.EntryTypeDTO `gorm:"foreignKey:EntryTypeID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Series    *seriesrepo.SeriesDTO       `gorm:"foreignKey:SeriesID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (EntryDTO) TableName() string {
	return "entries"
}

func fromDomain(aggregate *entry.Entry) EntryDTO {
	return EntryDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Date:        aggregate.Date(),
		EntryTypeID: aggregate.EntryTypeID().Bytes(),
		SeriesID:    aggregate.SeriesID().Bytes(),
		Position:    aggregate.Position().Int(),
	}
}

func toDomain(dto EntryDTO) (*entry.Entry, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	typeID, err := kernel.UUIDFromGoogle(dto.EntryTypeID)
	if err != nil {
		return nil, err
	}
	seriesID, err := kernel.UUIDFromGoogle(dto.SeriesID)
	if err != nil {
		return nil, err
	}

	return entry.RestoreEntry(id, dto.Name, dto.Date, typeID, seriesID, entry.Position(dto.Position))
}
