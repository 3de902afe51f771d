package seriesrepo

import (
	"context"

	"catalog/internal/adapters/out/persistence/gormerr"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/model/series"

	"gorm.io/gorm"
)

const entity = "series"

// GormSeriesRepository implements ports.SeriesRepository using GORM.
type GormSeriesRepository struct {
	db *gorm.DB
}

// NewGormSeriesRepository creates a repository bound to db, usually the
// transaction of a unit of work.
func NewGormSeriesRepository(db *gorm.DB) *GormSeriesRepository {
	return &GormSeriesRepository{db: db}
}

// Add inserts a new series. A duplicate name fails with
// errs.ErrIntegrityViolation.
func (r *GormSeriesRepository) Add(ctx context.Context, aggregate *series.Series) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return gormerr.Translate(entity, aggregate.ID().String(), r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormSeriesRepository) Update(ctx context.Context, aggregate *series.Series) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&SeriesDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	return gormerr.Affected(entity, aggregate.ID().String(), result)
}

func (r *GormSeriesRepository) Get(ctx context.Context, id kernel.UUID) (*series.Series, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SeriesDTO
	if err := r.db.WithContext(ctx).Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, gormerr.Translate(entity, id.String(), err)
	}

	return toDomain(dto)
}

// Delete removes a series that no entry or character references anymore.
func (r *GormSeriesRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&SeriesDTO{}, "id = ?", id.Bytes())
	return gormerr.Affected(entity, id.String(), result)
}
