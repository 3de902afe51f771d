package http

import (
	"net/http"

	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/application/usecases/queries"
	"catalog/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListSeries handles GET /rest/series.
func (s *Server) ListSeries(ctx echo.Context, params PageParams) error {
	page, err := params.page()
	if err != nil {
		return err
	}

	query := queries.NewListSeriesQuery(queries.SeriesFilter{}, page)
	result, err := s.queries.ListSeries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPage(result, toSeries))
}

// CreateSeries handles POST /rest/series.
func (s *Server) CreateSeries(ctx echo.Context) error {
	var body SeriesInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateSeriesCommand(kernel.NewUUID(), body.Name)
	if err != nil {
		return err
	}
	if err = s.commands.CreateSeries.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondSeries(ctx, http.StatusCreated, cmd.ID())
}

// SearchSeries handles POST /rest/series/search.
func (s *Server) SearchSeries(ctx echo.Context, params PageParams) error {
	var body SeriesSearch
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
	query, err := queries.NewSearchSeriesQuery(queries.SeriesFilter{ID: id, Name: body.Name}, page)
	if err != nil {
		return err
	}

	result, err := s.queries.ListSeries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPage(result, toSeries))
}

// GetSeries handles GET /rest/series/{id}.
func (s *Server) GetSeries(ctx echo.Context, id openapi_types.UUID) error {
	seriesID, err := toKernelID(id)
	if err != nil {
		return err
	}
	return s.respondSeries(ctx, http.StatusOK, seriesID)
}

// UpdateSeries handles PUT /rest/series/{id}.
func (s *Server) UpdateSeries(ctx echo.Context, id openapi_types.UUID) error {
	var body SeriesInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	seriesID, err := toKernelID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateSeriesCommand(seriesID, body.Name)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateSeries.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondSeries(ctx, http.StatusOK, seriesID)
}

// DeleteSeries handles DELETE /rest/series/{id}. A series still referenced
// by entries or characters is not deleted.
func (s *Server) DeleteSeries(ctx echo.Context, id openapi_types.UUID) error {
	seriesID, err := toKernelID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteSeriesCommand(seriesID)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteSeries.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListSeriesEntries handles GET /rest/series/{id}/entries, the entries of one
// series in order_in_series order.
func (s *Server) ListSeriesEntries(ctx echo.Context, id openapi_types.UUID, params PageParams) error {
	seriesID, err := s.existingSeries(ctx, id)
	if err != nil {
		return err
	}
	page, err := params.page()
	if err != nil {
		return err
	}

	query := queries.NewListEntriesQuery(queries.EntryFilter{SeriesID: &seriesID}, page)
	result, err := s.queries.ListEntries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPage(result, toEntry))
}

// ListSeriesCharacters handles GET /rest/series/{id}/characters.
func (s *Server) ListSeriesCharacters(ctx echo.Context, id openapi_types.UUID, params PageParams) error {
	seriesID, err := s.existingSeries(ctx, id)
	if err != nil {
		return err
	}
	page, err := params.page()
	if err != nil {
		return err
	}

	query := queries.NewListCharactersQuery(queries.CharacterFilter{SeriesID: &seriesID}, page)
	result, err := s.queries.ListCharacters.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPage(result, toCharacter))
}

// existingSeries returns errs.ErrObjectNotFound for an unknown series so its
// sub-resources answer 404 rather than an empty page.
func (s *Server) existingSeries(ctx echo.Context, id openapi_types.UUID) (kernel.UUID, error) {
	seriesID, err := toKernelID(id)
	if err != nil {
		return kernel.UUID{}, err
	}
	query, err := queries.NewGetSeriesQuery(seriesID)
	if err != nil {
		return kernel.UUID{}, err
	}
	if _, err = s.queries.GetSeries.Handle(ctx.Request().Context(), query); err != nil {
		return kernel.UUID{}, err
	}
	return seriesID, nil
}

func (s *Server) respondSeries(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetSeriesQuery(id)
	if err != nil {
		return err
	}
	view, err := s.queries.GetSeries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toSeries(view))
}
