package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists one method per operation of openapi.yml.
type ServerInterface interface {
	ListSeries(ctx echo.Context, params PageParams) error
	CreateSeries(ctx echo.Context) error
	SearchSeries(ctx echo.Context, params PageParams) error
	GetSeries(ctx echo.Context, id openapi_types.UUID) error
	UpdateSeries(ctx echo.Context, id openapi_types.UUID) error
	DeleteSeries(ctx echo.Context, id openapi_types.UUID) error
	ListSeriesEntries(ctx echo.Context, id openapi_types.UUID, params PageParams) error
	ListSeriesCharacters(ctx echo.Context, id openapi_types.UUID, params PageParams) error

	ListEntryTypes(ctx echo.Context, params PageParams) error
	CreateEntryType(ctx echo.Context) error
	SearchEntryTypes(ctx echo.Context, params PageParams) error
	GetEntryType(ctx echo.Context, id openapi_types.UUID) error
	UpdateEntryType(ctx echo.Context, id openapi_types.UUID) error
	DeleteEntryType(ctx echo.Context, id openapi_types.UUID) error
	ListEntryTypeEntries(ctx echo.Context, id openapi_types.UUID, params PageParams) error

	ListEntries(ctx echo.Context, params PageParams) error
	CreateEntry(ctx echo.Context) error
	SearchEntries(ctx echo.Context, params PageParams) error
	GetEntry(ctx echo.Context, id openapi_types.UUID) error
	UpdateEntry(ctx echo.Context, id openapi_types.UUID) error
	DeleteEntry(ctx echo.Context, id openapi_types.UUID) error

	ListCharacters(ctx echo.Context, params PageParams) error
	CreateCharacter(ctx echo.Context) error
	SearchCharacters(ctx echo.Context, params PageParams) error
	GetCharacter(ctx echo.Context, id openapi_types.UUID) error
	UpdateCharacter(ctx echo.Context, id openapi_types.UUID) error
	DeleteCharacter(ctx echo.Context, id openapi_types.UUID) error

	ListCharacterInfo(ctx echo.Context, params PageParams) error
	CreateCharacterInfo(ctx echo.Context) error
	GetCharacterInfo(ctx echo.Context, id openapi_types.UUID) error
	UpdateCharacterInfo(ctx echo.Context, id openapi_types.UUID) error
	DeleteCharacterInfo(ctx echo.Context, id openapi_types.UUID) error
}

// ServerInterfaceWrapper binds path and query parameters before calling the
// ServerInterface method. Binding failures are input errors.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) withPage(call func(echo.Context, PageParams) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		params, err := bindPageParams(ctx)
		if err != nil {
			return err
		}
		return call(ctx, params)
	}
}

func (w *ServerInterfaceWrapper) withID(call func(echo.Context, openapi_types.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindID(ctx)
		if err != nil {
			return err
		}
		return call(ctx, id)
	}
}

func (w *ServerInterfaceWrapper) withIDAndPage(
	call func(echo.Context, openapi_types.UUID, PageParams) error,
) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindID(ctx)
		if err != nil {
			return err
		}
		params, err := bindPageParams(ctx)
		if err != nil {
			return err
		}
		return call(ctx, id, params)
	}
}

func bindID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

func bindPageParams(ctx echo.Context) (PageParams, error) {
	var params PageParams

	if err := runtime.BindQueryParameter("form", true, false, "offset", ctx.QueryParams(), &params.Offset); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offset: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return params, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation under baseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/series", w.withPage(si.ListSeries))
	router.POST(baseURL+"/series", si.CreateSeries)
	router.POST(baseURL+"/series/search", w.withPage(si.SearchSeries))
	router.GET(baseURL+"/series/:id", w.withID(si.GetSeries))
	router.PUT(baseURL+"/series/:id", w.withID(si.UpdateSeries))
	router.DELETE(baseURL+"/series/:id", w.withID(si.DeleteSeries))
	router.GET(baseURL+"/series/:id/entries", w.withIDAndPage(si.ListSeriesEntries))
	router.GET(baseURL+"/series/:id/characters", w.withIDAndPage(si.ListSeriesCharacters))

	router.GET(baseURL+"/entrytypes", w.withPage(si.ListEntryTypes))
	router.POST(baseURL+"/entrytypes", si.CreateEntryType)
	router.POST(baseURL+"/entrytypes/search", w.withPage(si.SearchEntryTypes))
	router.GET(baseURL+"/entrytypes/:id", w.withID(si.GetEntryType))
	router.PUT(baseURL+"/entrytypes/:id", w.withID(si.UpdateEntryType))
	router.DELETE(baseURL+"/entrytypes/:id", w.withID(si.DeleteEntryType))
	router.GET(baseURL+"/entrytypes/:id/entries", w.withIDAndPage(si.ListEntryTypeEntries))

	router.GET(baseURL+"/entries", w.withPage(si.ListEntries))
	router.POST(baseURL+"/entries", si.CreateEntry)
	router.POST(baseURL+"/entries/search", w.withPage(si.SearchEntries))
	router.GET(baseURL+"/entries/:id", w.withID(si.GetEntry))
	router.PUT(baseURL+"/entries/:id", w.withID(si.UpdateEntry))
	router.DELETE(baseURL+"/entries/:id", w.withID(si.DeleteEntry))

	router.GET(baseURL+"/characters", w.withPage(si.ListCharacters))
	router.POST(baseURL+"/characters", si.CreateCharacter)
	router.POST(baseURL+"/characters/search", w.withPage(si.SearchCharacters))
	router.GET(baseURL+"/characters/:id", w.withID(si.GetCharacter))
	router.PUT(baseURL+"/characters/:id", w.withID(si.UpdateCharacter))
	router.DELETE(baseURL+"/characters/:id", w.withID(si.DeleteCharacter))

	router.GET(baseURL+"/characterinfo", w.withPage(si.ListCharacterInfo))
	router.POST(baseURL+"/characterinfo", si.CreateCharacterInfo)
	router.GET(baseURL+"/characterinfo/:id", w.withID(si.GetCharacterInfo))
	router.PUT(baseURL+"/characterinfo/:id", w.withID(si.UpdateCharacterInfo))
	router.DELETE(baseURL+"/characterinfo/:id", w.withID(si.DeleteCharacterInfo))
}
