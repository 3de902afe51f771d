// Package seriesrepo persists the series aggregate.
package seriesrepo

import (
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/model/series"

	"github.com/google/uuid"
)

// SeriesDTO is a row of the series table. Entries and characters reference
// it with ON DELETE RESTRICT, and the entry ordering engine row-locks it.
type SeriesDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(240);not null;uniqueIndex"`
}

func (SeriesDTO) TableName() string {
	return "series"
}

func fromDomain(aggregate *series.Series) SeriesDTO {
	return SeriesDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
	}
}

func toDomain(dto SeriesDTO) (*series.Series, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	return series.RestoreSeries(id, dto.Name)
}
