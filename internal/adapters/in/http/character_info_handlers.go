package http

import (
	"net/http"

	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/application/usecases/queries"
	"catalog/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (s *Server) ListCharacterInfo(ctx echo.Context, params PageParams) error {
	page, err := params.page()
	if err != nil {
		return err
	}

	query := queries.NewListCharacterInfoQuery(queries.CharacterInfoFilter{}, page)
	result, err := s.queries.ListCharacterInfo.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPage(result, toCharacterInfo))
}

func (s *Server) CreateCharacterInfo(ctx echo.Context) error {
	var body CharacterInfoInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	entryID, characterID, err := characterInfoReferences(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateCharacterInfoCommand(kernel.NewUUID(), body.Text, entryID, characterID)
	if err != nil {
		return err
	}
	if err = s.commands.CreateCharacterInfo.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondCharacterInfo(ctx, http.StatusCreated, cmd.InfoID())
}

func (s *Server) GetCharacterInfo(ctx echo.Context, id openapi_types.UUID) error {
	infoID, err := toKernelID(id)
	if err != nil {
		return err
	}
	return s.respondCharacterInfo(ctx, http.StatusOK, infoID)
}

func (s *Server) UpdateCharacterInfo(ctx echo.Context, id openapi_types.UUID) error {
	var body CharacterInfoInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	infoID, err := toKernelID(id)
	if err != nil {
		return err
	}
	entryID, characterID, err := characterInfoReferences(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCharacterInfoCommand(infoID, body.Text, entryID, characterID)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateCharacterInfo.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondCharacterInfo(ctx, http.StatusOK, infoID)
}

func (s *Server) DeleteCharacterInfo(ctx echo.Context, id openapi_types.UUID) error {
	infoID, err := toKernelID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteCharacterInfoCommand(infoID)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteCharacterInfo.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondCharacterInfo(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetCharacterInfoQuery(id)
	if err != nil {
		return err
	}
	view, err := s.queries.GetCharacterInfo.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toCharacterInfo(view))
}

func characterInfoReferences(body CharacterInfoInput) (kernel.UUID, kernel.UUID, error) {
	entryID, err := toKernelID(body.EntryId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	characterID, err := toKernelID(body.CharacterId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return entryID, characterID, nil
}
