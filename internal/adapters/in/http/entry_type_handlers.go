package http

import (
	"net/http"

	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/application/usecases/queries"
	"catalog/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (s *Server) ListEntryTypes(ctx echo.Context, params PageParams) error {
	page, err := params.page()
	if err != nil {
		return err
	}

	query := queries.NewListEntryTypesQuery(queries.EntryTypeFilter{}, page)
	result, err := s.queries.ListEntryTypes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPage(result, toEntryType))
}

func (s *Server) CreateEntryType(ctx echo.Context) error {
	var body EntryTypeInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateEntryTypeCommand(kernel.NewUUID(), body.Name)
	if err != nil {
		return err
	}
	if err = s.commands.CreateEntryType.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondEntryType(ctx, http.StatusCreated, cmd.ID())
}

func (s *Server) SearchEntryTypes(ctx echo.Context, params PageParams) error {
	var body EntryTypeSearch
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
	query, err := queries.NewSearchEntryTypesQuery(queries.EntryTypeFilter{ID: id, Name: body.Name}, page)
	if err != nil {
		return err
	}

	result, err := s.queries.ListEntryTypes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPage(result, toEntryType))
}

func (s *Server) GetEntryType(ctx echo.Context, id openapi_types.UUID) error {
	typeID, err := toKernelID(id)
	if err != nil {
		return err
	}
	return s.respondEntryType(ctx, http.StatusOK, typeID)
}

func (s *Server) UpdateEntryType(ctx echo.Context, id openapi_types.UUID) error {
	var body EntryTypeInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	typeID, err := toKernelID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateEntryTypeCommand(typeID, body.Name)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateEntryType.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondEntryType(ctx, http.StatusOK, typeID)
}

func (s *Server) DeleteEntryType(ctx echo.Context, id openapi_types.UUID) error {
	typeID, err := toKernelID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteEntryTypeCommand(typeID)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteEntryType.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListEntryTypeEntries handles GET /rest/entrytypes/{id}/entries.
func (s *Server) ListEntryTypeEntries(ctx echo.Context, id openapi_types.UUID, params PageParams) error {
	typeID, err := toKernelID(id)
	if err != nil {
		return err
	}
	get, err := queries.NewGetEntryTypeQuery(typeID)
	if err != nil {
		return err
	}
	if _, err = s.queries.GetEntryType.Handle(ctx.Request().Context(), get); err != nil {
		return err
	}
	page, err := params.page()
	if err != nil {
		return err
	}

	query := queries.NewListEntriesQuery(queries.EntryFilter{EntryTypeID: &typeID}, page)
	result, err := s.queries.ListEntries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPage(result, toEntry))
}

func (s *Server) respondEntryType(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetEntryTypeQuery(id)
	if err != nil {
		return err
	}
	view, err := s.queries.GetEntryType.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toEntryType(view))
}
