// Package commands contains business operations that modify catalog state.
// Every handler validates its command, opens a unit of work, changes
// aggregates through their repositories and commits.
package commands

import (
	"context"

	"catalog/internal/core/domain/model/entry"
	"catalog/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	SeriesRepoFactory interface {
		SeriesRepository() ports.SeriesRepository
	}

	EntryTypeRepoFactory interface {
		EntryTypeRepository() ports.EntryTypeRepository
	}

	// EntryRepoFactory provides the entry repository, which is also the
	// position store of entry.Ordering, within a transaction.
	EntryRepoFactory interface {
		EntryRepository() ports.EntryRepository
	}

	CharacterRepoFactory interface {
		CharacterRepository() ports.CharacterRepository
	}

	CharacterInfoRepoFactory interface {
		CharacterInfoRepository() ports.CharacterInfoRepository
	}

	SeriesUoW interface {
		TxManager
		SeriesRepoFactory
	}

	SeriesUoWFactory interface {
		Create() SeriesUoW
	}

	EntryTypeUoW interface {
		TxManager
		EntryTypeRepoFactory
	}

	EntryTypeUoWFactory interface {
		Create() EntryTypeUoW
	}

	// EntryUoW manages transactions for entry writes. Renumbering and the
	// entry row itself go through the same EntryRepository.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.EntryRepository()
	//   change, err := ordering.SetPosition(ctx, repo, e, seriesID, pos)
	//   err = repo.Add(ctx, e)
	//
	//   err = uow.Commit(ctx)
	EntryUoW interface {
		TxManager
		EntryRepoFactory
	}

	EntryUoWFactory interface {
		Create() EntryUoW
	}

	// CharacterUoW also reads entries to check a character's first entry.
	CharacterUoW interface {
		TxManager
		CharacterRepoFactory
		EntryRepoFactory
	}

	CharacterUoWFactory interface {
		Create() CharacterUoW
	}

	CharacterInfoUoW interface {
		TxManager
		CharacterInfoRepoFactory
	}

	CharacterInfoUoWFactory interface {
		Create() CharacterInfoUoW
	}
)

// OrderingRecorder observes committed ordering changes.
type OrderingRecorder interface {
	RecordChange(change entry.Change)
}

type nopRecorder struct{}

func (nopRecorder) RecordChange(entry.Change) {}
