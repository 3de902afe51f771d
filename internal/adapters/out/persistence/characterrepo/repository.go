package characterrepo

import (
	"context"

	"catalog/internal/adapters/out/persistence/gormerr"
	"catalog/internal/core/domain/model/character"
	"catalog/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCharacterRepository implements ports.CharacterRepository using GORM.
type GormCharacterRepository struct {
	db *gorm.DB
}

func NewGormCharacterRepository(db *gorm.DB) *GormCharacterRepository {
	return &GormCharacterRepository{db: db}
}

func (r *GormCharacterRepository) Add(ctx context.Context, aggregate *character.Character) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := characterFromDomain(aggregate)
	return gormerr.Translate("character", aggregate.ID().String(), r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormCharacterRepository) Update(ctx context.Context, aggregate *character.Character) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := characterFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CharacterDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	return gormerr.Affected("character", aggregate.ID().String(), result)
}

func (r *GormCharacterRepository) Get(ctx context.Context, id kernel.UUID) (*character.Character, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CharacterDTO
	if err := r.db.WithContext(ctx).Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, gormerr.Translate("character", id.String(), err)
	}

	return characterToDomain(dto)
}

// Delete fails with errs.ErrIntegrityViolation while character info still
// references the character.
func (r *GormCharacterRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CharacterDTO{}, "id = ?", id.Bytes())
	return gormerr.Affected("character", id.String(), result)
}

// GormInfoRepository implements ports.CharacterInfoRepository using GORM.
type GormInfoRepository struct {
	db *gorm.DB
}

func NewGormInfoRepository(db *gorm.DB) *GormInfoRepository {
	return &GormInfoRepository{db: db}
}

func (r *GormInfoRepository) Add(ctx context.Context, aggregate *character.Info) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := infoFromDomain(aggregate)
	return gormerr.Translate("character info", aggregate.ID().String(), r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormInfoRepository) Update(ctx context.Context, aggregate *character.Info) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := infoFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&InfoDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	return gormerr.Affected("character info", aggregate.ID().String(), result)
}

func (r *GormInfoRepository) Get(ctx context.Context, id kernel.UUID) (*character.Info, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InfoDTO
	if err := r.db.WithContext(ctx).Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, gormerr.Translate("character info", id.String(), err)
	}

	return infoToDomain(dto)
}

func (r *GormInfoRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&InfoDTO{}, "id = ?", id.Bytes())
	return gormerr.Affected("character info", id.String(), result)
}
