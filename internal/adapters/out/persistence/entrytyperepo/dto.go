// Package entrytyperepo persists entry types (book, episode, movie, ...).
package entrytyperepo

import (
	"catalog/internal/core/domain/model/entrytype"
	"catalog/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryTypeDTO is a row of the entry_types table. Entries reference it with
// ON DELETE RESTRICT.
type EntryTypeDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(240);not null;uniqueIndex"`
}

func (EntryTypeDTO) TableName() string {
	return "entry_types"
}

func fromDomain(aggregate *entrytype.EntryType) EntryTypeDTO {
	return EntryTypeDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}
}

func toDomain(dto EntryTypeDTO) (*entrytype.EntryType, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	return entrytype.RestoreEntryType(id, dto.Name)
}
