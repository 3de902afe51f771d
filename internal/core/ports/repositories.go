// Package ports defines the persistence contracts of the catalog domain.
// Adapters under internal/adapters/out implement them; use cases depend on
// them only.
package ports

import (
	"context"

	"catalog/internal/core/domain/model/character"
	"catalog/internal/core/domain/model/entry"
	"catalog/internal/core/domain/model/entrytype"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/domain/model/series"
)

// SeriesRepository persists series aggregates.
type SeriesRepository interface {
	Add(ctx context.Context, aggregate *series.Series) error
	Update(ctx context.Context, aggregate *series.Series) error
	// Get returns errs.ErrObjectNotFound when id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*series.Series, error)
	// Delete fails with errs.ErrIntegrityViolation while entries or
	// characters still reference the series.
	Delete(ctx context.Context, id kernel.UUID) error
}

// EntryTypeRepository persists entry types.
type EntryTypeRepository interface {
	Add(ctx context.Context, aggregate *entrytype.EntryType) error
	Update(ctx context.Context, aggregate *entrytype.EntryType) error
	Get(ctx context.Context, id kernel.UUID) (*entrytype.EntryType, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

// EntryRepository persists entries and exposes the position primitives
// entry.Ordering renumbers siblings with.
//
// Add and Update write the series and position the aggregate holds; there is
// no way to set a position other than through entry.Ordering.
//
// Example:
//
//	repo := uow.EntryRepository()
//	if _, err := ordering.SetPosition(ctx, repo, e, seriesID, 3); err != nil {
//	    return err
//	}
//	return repo.Update(ctx, e)
type EntryRepository interface {
	entry.PositionStore

	Add(ctx context.Context, aggregate *entry.Entry) error
	Update(ctx context.Context, aggregate *entry.Entry) error
	Get(ctx context.Context, id kernel.UUID) (*entry.Entry, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

// CharacterRepository persists characters.
type CharacterRepository interface {
	Add(ctx context.Context, aggregate *character.Character) error
	Update(ctx context.Context, aggregate *character.Character) error
	Get(ctx context.Context, id kernel.UUID) (*character.Character, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

// CharacterInfoRepository persists character information.
type CharacterInfoRepository interface {
	Add(ctx context.Context, aggregate *character.Info) error
	Update(ctx context.Context, aggregate *character.Info) error
	Get(ctx context.Context, id kernel.UUID) (*character.Info, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
