package http

import (
	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/application/usecases/queries"
)

// Commands holds the write side handlers the REST API calls.
type Commands struct {
	CreateSeries commands.CreateSeriesCommandHandler
	UpdateSeries commands.UpdateSeriesCommandHandler
	DeleteSeries commands.DeleteSeriesCommandHandler

	CreateEntryType commands.CreateEntryTypeCommandHandler
	UpdateEntryType commands.UpdateEntryTypeCommandHandler
	DeleteEntryType commands.DeleteEntryTypeCommandHandler

	CreateEntry commands.CreateEntryCommandHandler
	UpdateEntry commands.UpdateEntryCommandHandler
	DeleteEntry commands.DeleteEntryCommandHandler

	CreateCharacter commands.CreateCharacterCommandHandler
	UpdateCharacter commands.UpdateCharacterCommandHandler
	DeleteCharacter commands.DeleteCharacterCommandHandler

	CreateCharacterInfo commands.CreateCharacterInfoCommandHandler
	UpdateCharacterInfo commands.UpdateCharacterInfoCommandHandler
	DeleteCharacterInfo commands.DeleteCharacterInfoCommandHandler
}

// Queries holds the read side handlers the REST API calls.
type Queries struct {
	GetSeries  queries.GetSeriesQueryHandler
	ListSeries queries.ListSeriesQueryHandler

	GetEntryType   queries.GetEntryTypeQueryHandler
	ListEntryTypes queries.ListEntryTypesQueryHandler

	GetEntry    queries.GetEntryQueryHandler
	ListEntries queries.ListEntriesQueryHandler

	GetCharacter   queries.GetCharacterQueryHandler
	ListCharacters queries.ListCharactersQueryHandler

	GetCharacterInfo  queries.GetCharacterInfoQueryHandler
	ListCharacterInfo queries.ListCharacterInfoQueryHandler
}

// Server implements ServerInterface on top of the catalog use cases. Writes
// answer with the stored resource, read back through the query side.
type Server struct {
	commands Commands
	queries  Queries
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(cmds Commands, qs Queries) *Server {
	return &Server{commands: cmds, queries: qs}
}
