package http

import (
	"net/http"

	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/application/usecases/queries"
	"catalog/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (s *Server) ListCharacters(ctx echo.Context, params PageParams) error {
	page, err := params.page()
	if err != nil {
		return err
	}

	query := queries.NewListCharactersQuery(queries.CharacterFilter{}, page)
	result, err := s.queries.ListCharacters.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPage(result, toCharacter))
}

// CreateCharacter handles POST /rest/characters. The first entry must belong
// to the character's series.
func (s *Server) CreateCharacter(ctx echo.Context) error {
	var body CharacterInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	seriesID, firstEntryID, err := characterReferences(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateCharacterCommand(kernel.NewUUID(), body.Name, seriesID, firstEntryID)
	if err != nil {
		return err
	}
	if err = s.commands.CreateCharacter.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondCharacter(ctx, http.StatusCreated, cmd.CharacterID())
}

func (s *Server) SearchCharacters(ctx echo.Context, params PageParams) error {
	var body CharacterSearch
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	page, err := params.page()
	if err != nil {
		return err
	}

	id, err := toKernelIDPtr(body.Id)
	if err != nil {
		return err
	}
	seriesID, err := toKernelIDPtr(body.SeriesId)
	if err != nil {
		return err
	}
	firstEntryID, err := toKernelIDPtr(body.OccursFirstInEntryId)
	if err != nil {
		return err
	}

	filter := queries.CharacterFilter{ID: id, Name: body.Name, SeriesID: seriesID, FirstEntryID: firstEntryID}
	query, err := queries.NewSearchCharactersQuery(filter, page)
	if err != nil {
		return err
	}

	result, err := s.queries.ListCharacters.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPage(result, toCharacter))
}

func (s *Server) GetCharacter(ctx echo.Context, id openapi_types.UUID) error {
	characterID, err := toKernelID(id)
	if err != nil {
		return err
	}
	return s.respondCharacter(ctx, http.StatusOK, characterID)
}

func (s *Server) UpdateCharacter(ctx echo.Context, id openapi_types.UUID) error {
	var body CharacterInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	characterID, err := toKernelID(id)
	if err != nil {
		return err
	}
	seriesID, firstEntryID, err := characterReferences(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCharacterCommand(characterID, body.Name, seriesID, firstEntryID)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateCharacter.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondCharacter(ctx, http.StatusOK, characterID)
}

func (s *Server) DeleteCharacter(ctx echo.Context, id openapi_types.UUID) error {
	characterID, err := toKernelID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteCharacterCommand(characterID)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteCharacter.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondCharacter(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetCharacterQuery(id)
	if err != nil {
		return err
	}
	view, err := s.queries.GetCharacter.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toCharacter(view))
}

func characterReferences(body CharacterInput) (kernel.UUID, kernel.UUID, error) {
	seriesID, err := toKernelID(body.SeriesId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	firstEntryID, err := toKernelID(body.OccursFirstInEntryId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return seriesID, firstEntryID, nil
}
