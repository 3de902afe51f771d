package commands_test

import (
	"testing"

	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/domain/model/character"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCharacterCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	seriesID, firstEntryID := kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewCreateCharacterCommand(kernel.NewUUID(), "Royce Melborn", seriesID, firstEntryID)
	require.NoError(t, err)

	t.Run("stores the character", func(t *testing.T) {
		entries := new(MockEntryRepository)
		characters := new(MockCharacterRepository)
		uow := new(MockUoW)
		factory := new(MockCharacterUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("EntryRepository").Return(entries).Once()
		uow.On("CharacterRepository").Return(characters).Once()
		entries.On("Get", ctx, firstEntryID).Return(restoreEntry(t, firstEntryID, seriesID, 1), nil).Once()
		characters.On("Add", ctx, mock.MatchedBy(func(c *character.Character) bool {
			return c.Name() == "Royce Melborn" && c.FirstEntryID() == firstEntryID
		})).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err := commands.NewCreateCharacterCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		characters.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("first entry of another series is an input error", func(t *testing.T) {
		entries := new(MockEntryRepository)
		uow := new(MockUoW)
		factory := new(MockCharacterUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("EntryRepository").Return(entries).Once()
		entries.On("Get", ctx, firstEntryID).Return(restoreEntry(t, firstEntryID, kernel.NewUUID(), 1), nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err := commands.NewCreateCharacterCommandHandler(factory).Handle(ctx, cmd)

		var invalid *errs.ValueIsInvalidError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "occurs_first_in_entry_id", invalid.ParamName)
		assert.ErrorIs(t, invalid.Cause, commands.ErrFirstEntryOutsideSeries)
		uow.AssertNotCalled(t, "CharacterRepository")
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("unknown first entry is an input error", func(t *testing.T) {
		entries := new(MockEntryRepository)
		uow := new(MockUoW)
		factory := new(MockCharacterUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("EntryRepository").Return(entries).Once()
		entries.On("Get", ctx, firstEntryID).Return(nil, errs.NewObjectNotFoundError("entry", firstEntryID.String())).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err := commands.NewCreateCharacterCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestUpdateCharacterCommandHandler_Handle_MovesToAnotherSeries(t *testing.T) {
	ctx := t.Context()
	id, seriesID, firstEntryID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	stored, err := character.RestoreCharacter(id, "Hadrian", kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	cmd, err := commands.NewUpdateCharacterCommand(id, "Hadrian Blackwater", seriesID, firstEntryID)
	require.NoError(t, err)

	entries := new(MockEntryRepository)
	characters := new(MockCharacterRepository)
	uow := new(MockUoW)
	factory := new(MockCharacterUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CharacterRepository").Return(characters).Once()
	uow.On("EntryRepository").Return(entries).Once()
	characters.On("Get", ctx, id).Return(stored, nil).Once()
	entries.On("Get", ctx, firstEntryID).Return(restoreEntry(t, firstEntryID, seriesID, 2), nil).Once()
	characters.On("Update", ctx, stored).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewUpdateCharacterCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Hadrian Blackwater", stored.Name())
	assert.True(t, stored.SeriesID().IsEqual(seriesID))
	assert.True(t, stored.FirstEntryID().IsEqual(firstEntryID))
	characters.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteCharacterCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteCharacterCommand(id)
	require.NoError(t, err)

	characters := new(MockCharacterRepository)
	uow := new(MockUoW)
	factory := new(MockCharacterUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CharacterRepository").Return(characters).Once()
	characters.On("Delete", ctx, id).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewDeleteCharacterCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
}
