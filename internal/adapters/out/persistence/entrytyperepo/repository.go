package entrytyperepo

import (
	"context"

	"catalog/internal/adapters/out/persistence/gormerr"
	"catalog/internal/core/domain/model/entrytype"
	"catalog/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

const entity = "entry type"

// GormEntryTypeRepository implements ports.EntryTypeRepository using GORM.
type GormEntryTypeRepository struct {
	db *gorm.DB
}

func NewGormEntryTypeRepository(db *gorm.DB) *GormEntryTypeRepository {
	return &GormEntryTypeRepository{db: db}
}

func (r *GormEntryTypeRepository) Add(ctx context.Context, aggregate *entrytype.EntryType) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return gormerr.Translate(entity, aggregate.ID().String(), r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormEntryTypeRepository) Update(ctx context.Context, aggregate *entrytype.EntryType) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&EntryTypeDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	return gormerr.Affected(entity, aggregate.ID().String(), result)
}

func (r *GormEntryTypeRepository) Get(ctx context.Context, id kernel.UUID) (*entrytype.EntryType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EntryTypeDTO
	if err := r.db.WithContext(ctx).Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, gormerr.Translate(entity, id.String(), err)
	}

	return toDomain(dto)
}

func (r *GormEntryTypeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&EntryTypeDTO{}, "id = ?", id.Bytes())
	return gormerr.Affected(entity, id.String(), result)
}
