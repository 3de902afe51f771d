package entryrepo

import (
	"context"

	"catalog/internal/adapters/out/persistence/gormerr"
	"catalog/internal/adapters/out/persistence/seriesrepo"
	"catalog/internal/core/domain/model/entry"
	"catalog/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entity = "entry"

// GormEntryRepository implements ports.EntryRepository using GORM.
//
// All methods must run on the transaction of a unit of work: LockSeries holds
// its lock until that transaction ends, and ShiftPositions is only safe under
// that lock.
type GormEntryRepository struct {
	db *gorm.DB
}

func NewGormEntryRepository(db *gorm.DB) *GormEntryRepository {
	return &GormEntryRepository{db: db}
}

// LockSeries takes a row lock on the series. Concurrent renumbering of the
// same series waits here; other series are not affected.
//
// PostgreSQL uses FOR NO KEY UPDATE so foreign key checks of unrelated
// inserts (characters of the series) are not blocked. SQLite has no row
// locks; its single pooled connection already serializes transactions.
func (r *GormEntryRepository) LockSeries(ctx context.Context, seriesID kernel.UUID) error {
	if err := seriesID.Validate(); err != nil {
		return err
	}

	q := r.db.WithContext(ctx)
	if q.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "NO KEY UPDATE"})
	}

	var dto seriesrepo.SeriesDTO
	if err := q.Select("id").Take(&dto, "id = ?", seriesID.Bytes()).Error; err != nil {
		return gormerr.Translate("series", seriesID.String(), err)
	}
	return nil
}

func (r *GormEntryRepository) MaxPosition(ctx context.Context, seriesID, exclude kernel.UUID) (entry.Position, error) {
	var maxPos int
	err := r.db.WithContext(ctx).
		Model(&EntryDTO{}).
		Select("COALESCE(MAX(position), 0)").
		Where("series_id = ? AND id <> ?", seriesID.Bytes(), exclude.Bytes()).
		Scan(&maxPos).Error
	if err != nil {
		return entry.Unset, err
	}
	return entry.Position(maxPos), nil
}

func (r *GormEntryRepository) ShiftPositions(
	ctx context.Context,
	seriesID, exclude kernel.UUID,
	span entry.Span,
	delta int,
) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&EntryDTO{}).
		Where("series_id = ? AND id <> ? AND position >= ?", seriesID.Bytes(), exclude.Bytes(), span.From.Int())
	if !span.IsOpen() {
		q = q.Where("position <= ?", span.To.Int())
	}

	result := q.UpdateColumn("position", gorm.Expr("position + ?", delta))
	return result.RowsAffected, result.Error
}

// Add inserts a placed entry. A missing entry type fails with
// errs.ErrIntegrityViolation.
func (r *GormEntryRepository) Add(ctx context.Context, aggregate *entry.Entry) error {
	if err := aggregate.ValidatePlaced(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return gormerr.Translate(entity, aggregate.ID().String(), r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormEntryRepository) Update(ctx context.Context, aggregate *entry.Entry) error {
	if err := aggregate.ValidatePlaced(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&EntryDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	return gormerr.Affected(entity, aggregate.ID().String(), result)
}

func (r *GormEntryRepository) Get(ctx context.Context, id kernel.UUID) (*entry.Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EntryDTO
	if err := r.db.WithContext(ctx).Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, gormerr.Translate(entity, id.String(), err)
	}

	return toDomain(dto)
}

// Delete removes the entry row only. Close the gap with
// entry.Ordering.RemovePosition in the same transaction.
func (r *GormEntryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&EntryDTO{}, "id = ?", id.Bytes())
	return gormerr.Affected(entity, id.String(), result)
}
