package http

import (
	"net/http"
	"time"

	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/application/usecases/queries"
	"catalog/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (s *Server) ListEntries(ctx echo.Context, params PageParams) error {
	page, err := params.page()
	if err != nil {
		return err
	}

	query := queries.NewListEntriesQuery(queries.EntryFilter{}, page)
	result, err := s.queries.ListEntries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPage(result, toEntry))
}

// CreateEntry handles POST /rest/entries. Entries at or after the requested
// order_in_series move up by one; a position past the end of the series is
// an input error and nothing is stored.
func (s *Server) CreateEntry(ctx echo.Context) error {
	var body EntryInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	typeID, seriesID, err := entryReferences(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateEntryCommand(
		kernel.NewUUID(), body.Name, body.Date.Time, typeID, seriesID, body.OrderInSeries,
	)
	if err != nil {
		return err
	}
	if err = s.commands.CreateEntry.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondEntry(ctx, http.StatusCreated, cmd.EntryID())
}

func (s *Server) SearchEntries(ctx echo.Context, params PageParams) error {
	var body EntrySearch
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	page, err := params.page()
	if err != nil {
		return err
	}

	filter, err := entryFilter(body)
	if err != nil {
		return err
	}
	query, err := queries.NewSearchEntriesQuery(filter, page)
	if err != nil {
		return err
	}

	result, err := s.queries.ListEntries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPage(result, toEntry))
}

func (s *Server) GetEntry(ctx echo.Context, id openapi_types.UUID) error {
	entryID, err := toKernelID(id)
	if err != nil {
		return err
	}
	return s.respondEntry(ctx, http.StatusOK, entryID)
}

// UpdateEntry handles PUT /rest/entries/{id}. Every attribute is replaced; a
// changed order_in_series or series_id renumbers the affected series.
func (s *Server) UpdateEntry(ctx echo.Context, id openapi_types.UUID) error {
	var body EntryInput
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	entryID, err := toKernelID(id)
	if err != nil {
		return err
	}
	typeID, seriesID, err := entryReferences(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateEntryCommand(
		entryID, body.Name, body.Date.Time, typeID, seriesID, body.OrderInSeries,
	)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateEntry.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondEntry(ctx, http.StatusOK, entryID)
}

func (s *Server) DeleteEntry(ctx echo.Context, id openapi_types.UUID) error {
	entryID, err := toKernelID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteEntryCommand(entryID)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteEntry.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondEntry(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetEntryQuery(id)
	if err != nil {
		return err
	}
	view, err := s.queries.GetEntry.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toEntry(view))
}

func entryReferences(body EntryInput) (kernel.UUID, kernel.UUID, error) {
	typeID, err := toKernelID(body.EntrytypeId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	seriesID, err := toKernelID(body.SeriesId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return typeID, seriesID, nil
}

func entryFilter(body EntrySearch) (queries.EntryFilter, error) {
	id, err := toKernelIDPtr(body.Id)
	if err != nil {
		return queries.EntryFilter{}, err
	}
	typeID, err := toKernelIDPtr(body.EntrytypeId)
	if err != nil {
		return queries.EntryFilter{}, err
	}
	seriesID, err := toKernelIDPtr(body.SeriesId)
	if err != nil {
		return queries.EntryFilter{}, err
	}

	var date *time.Time
	if body.Date != nil {
		date = &body.Date.Time
	}

	return queries.EntryFilter{
		ID:          id,
		Name:        body.Name,
		Date:        date,
		Position:    body.OrderInSeries,
		EntryTypeID: typeID,
		SeriesID:    seriesID,
	}, nil
}
