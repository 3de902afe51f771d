package http

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// APIPrefix is where the catalog REST paths of openapi.yml are mounted.
const APIPrefix = "/rest"

//go:embed openapi.yml
var openAPIDocument []byte

// GetSwagger parses the embedded OpenAPI document and checks it is valid.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// OpenAPIValidator checks every request under APIPrefix against the
// operation echo routed it to. Requests that fail are answered with an
// input_error before any handler runs.
func OpenAPIValidator(doc *openapi3.T) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		MultiError:         true,
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route, pathParams, ok := findRoute(doc, c)
			if !ok {
				return next(c)
			}

			err := openapi3filter.ValidateRequest(c.Request().Context(), &openapi3filter.RequestValidationInput{
				Request:    c.Request(),
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return writeError(c, &requestValidationError{err: err})
			}
			return next(c)
		}
	}
}

// findRoute maps an echo route such as /rest/series/:id onto the document
// path /series/{id}.
func findRoute(doc *openapi3.T, c echo.Context) (*routers.Route, map[string]string, bool) {
	echoPath, found := strings.CutPrefix(c.Path(), APIPrefix)
	if !found {
		return nil, nil, false
	}

	segments := strings.Split(echoPath, "/")
	for i, segment := range segments {
		if name, isParam := strings.CutPrefix(segment, ":"); isParam {
			segments[i] = "{" + name + "}"
		}
	}
	path := strings.Join(segments, "/")

	pathItem := doc.Paths.Value(path)
	if pathItem == nil {
		return nil, nil, false
	}
	method := c.Request().Method
	operation := pathItem.GetOperation(method)
	if operation == nil {
		return nil, nil, false
	}

	pathParams := make(map[string]string, len(c.ParamNames()))
	for i, name := range c.ParamNames() {
		pathParams[name] = c.ParamValues()[i]
	}

	return &routers.Route{
		Spec:      doc,
		Path:      path,
		PathItem:  pathItem,
		Method:    method,
		Operation: operation,
	}, pathParams, true
}

// requestValidationError carries the failures kin-openapi reported for one
// request.
type requestValidationError struct {
	err error
}

func (e *requestValidationError) Error() string {
	return "request does not match the API schema"
}

func (e *requestValidationError) Unwrap() error {
	return e.err
}

func (e *requestValidationError) details() []ErrorDetail {
	var failures []error
	var multi openapi3.MultiError
	if errors.As(e.err, &multi) {
		failures = multi
	} else {
		failures = []error{e.err}
	}

	details := make([]ErrorDetail, 0, len(failures))
	for _, failure := range failures {
		detail := ErrorDetail{Message: failure.Error()}

		var requestErr *openapi3filter.RequestError
		if errors.As(failure, &requestErr) {
			switch {
			case requestErr.Parameter != nil:
				detail.Field = requestErr.Parameter.Name
			case requestErr.RequestBody != nil:
				detail.Field = "body"
			}
			if requestErr.Err != nil {
				detail.Message = requestErr.Err.Error()
			} else if requestErr.Reason != "" {
				detail.Message = requestErr.Reason
			}
		}
		details = append(details, detail)
	}
	return details
}

// swaggerDoc serves the embedded document to the swagger UI.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerSwaggerOnce sync.Once

// registerSwagger publishes doc under swag's default instance name, which
// echo-swagger reads doc.json from. swag panics on a second registration, so
// only the first document is kept.
func registerSwagger(docJSON []byte) {
	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(docJSON)})
	})
}
