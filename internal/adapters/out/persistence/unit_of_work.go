package persistence

import (
	"context"

	"catalog/internal/adapters/out/persistence/characterrepo"
	"catalog/internal/adapters/out/persistence/entryrepo"
	"catalog/internal/adapters/out/persistence/entrytyperepo"
	"catalog/internal/adapters/out/persistence/seriesrepo"
	"catalog/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Each command gets a fresh unit of work so concurrent requests never share a
// transaction.
//
// Example:
//
//	factory := persistence.NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction. Repositories handed
// out after Begin run inside it, so the sibling renumbering done by
// entry.Ordering and the entry's own row commit or roll back together.
//
// Repositories requested before Begin use the plain connection and
// auto-commit each statement.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. A second call is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the transaction. It returns gorm.ErrInvalidTransaction
// when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. After Commit there is nothing to roll
// back and gorm.ErrInvalidTransaction is returned, which deferred callers
// ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) SeriesRepository() ports.SeriesRepository {
	return seriesrepo.NewGormSeriesRepository(uow.conn())
}

func (uow *GormUnitOfWork) EntryTypeRepository() ports.EntryTypeRepository {
	return entrytyperepo.NewGormEntryTypeRepository(uow.conn())
}

// EntryRepository is also the entry.PositionStore of the transaction.
func (uow *GormUnitOfWork) EntryRepository() ports.EntryRepository {
	return entryrepo.NewGormEntryRepository(uow.conn())
}

func (uow *GormUnitOfWork) CharacterRepository() ports.CharacterRepository {
	return characterrepo.NewGormCharacterRepository(uow.conn())
}

func (uow *GormUnitOfWork) CharacterInfoRepository() ports.CharacterInfoRepository {
	return characterrepo.NewGormInfoRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
