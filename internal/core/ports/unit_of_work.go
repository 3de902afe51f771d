package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories returned after
// Begin run inside its transaction, so entry.Ordering renumbering and the
// entry's own write commit or roll back together.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	SeriesRepository() SeriesRepository
	EntryTypeRepository() EntryTypeRepository
	EntryRepository() EntryRepository
	CharacterRepository() CharacterRepository
	CharacterInfoRepository() CharacterInfoRepository
}
