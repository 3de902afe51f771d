package commands_test

import (
	"testing"
	"time"

	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/domain/model/entry"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var released = time.Date(2011, time.November, 23, 0, 0, 0, 0, time.UTC)

func TestNewCreateEntryCommand_ValidInput(t *testing.T) {
	id, typeID, seriesID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewCreateEntryCommand(id, " Theft of Swords ", released, typeID, seriesID, 1)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.EntryID())
	assert.Equal(t, "Theft of Swords", cmd.Name())
	assert.Equal(t, released, cmd.Date())
	assert.Equal(t, typeID, cmd.EntryTypeID())
	assert.Equal(t, seriesID, cmd.SeriesID())
	assert.Equal(t, entry.Position(1), cmd.Position())
}

func TestNewCreateEntryCommand_PositionIsNotCheckedHere(t *testing.T) {
	cmd, err := commands.NewCreateEntryCommand(kernel.NewUUID(), "Dune", released, kernel.NewUUID(), kernel.NewUUID(), -4)

	require.NoError(t, err)
	assert.Equal(t, entry.Position(-4), cmd.Position())
}

func TestNewCreateEntryCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateEntryCommand(kernel.UUID{}, "", time.Time{}, kernel.UUID{}, kernel.UUID{}, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, commands.ErrDateIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "entrytype_id")
	assert.Contains(t, err.Error(), "series_id")
}

func TestEntryCommands_ZeroValueIsNotConstructed(t *testing.T) {
	assert.ErrorIs(t, commands.CreateEntryCommand{}.Validate(), commands.ErrCreateEntryCommandIsNotConstructed)
	assert.ErrorIs(t, commands.UpdateEntryCommand{}.Validate(), commands.ErrUpdateEntryCommandIsNotConstructed)
	assert.ErrorIs(t, commands.DeleteEntryCommand{}.Validate(), commands.ErrDeleteEntryCommandIsNotConstructed)
}

func TestNewDeleteEntryCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteEntryCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.EntryID())

	_, err = commands.NewDeleteEntryCommand(kernel.UUID{})
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
