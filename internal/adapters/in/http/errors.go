package http

import (
	"errors"
	"log/slog"
	"net/http"

	"catalog/internal/core/domain/model/entry"
	"catalog/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorType classifies an error response.
type ErrorType string

const (
	ErrorTypeInput    ErrorType = "input_error"
	ErrorTypeNotFound ErrorType = "not_found"
	ErrorTypeServer   ErrorType = "server_error"
)

// Error is the body of every non-2xx response.
type Error struct {
	Status    int           `json:"status"`
	ErrorType ErrorType     `json:"error_type"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

var inputErrors = []error{
	entry.ErrInvalidPosition,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsOutOfRange,
	errs.ErrValueIsRequired,
	errs.ErrIntegrityViolation,
}

// classify maps err onto the response status and error type.
func classify(err error) (int, ErrorType) {
	var validationErr *requestValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, ErrorTypeInput
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch {
		case httpErr.Code == http.StatusNotFound:
			return http.StatusNotFound, ErrorTypeNotFound
		case httpErr.Code >= http.StatusInternalServerError:
			return httpErr.Code, ErrorTypeServer
		default:
			return httpErr.Code, ErrorTypeInput
		}
	}

	if errors.Is(err, errs.ErrObjectNotFound) {
		return http.StatusNotFound, ErrorTypeNotFound
	}
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, ErrorTypeInput
		}
	}
	return http.StatusInternalServerError, ErrorTypeServer
}

// newError builds the response body for err. Server errors never expose
// their cause.
func newError(err error) Error {
	status, errorType := classify(err)
	body := Error{Status: status, ErrorType: errorType}

	switch {
	case errorType == ErrorTypeServer:
		body.Message = "unexpected error"
	case errorType == ErrorTypeNotFound:
		body.Message = notFoundMessage(err)
	default:
		body.Message = err.Error()
		body.Details = errorDetails(err)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && errorType != ErrorTypeServer {
		body.Message = http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			body.Message = msg
		}
	}

	return body
}

func notFoundMessage(err error) string {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return "no " + notFound.ParamName + " found with given ID"
	}
	return "not found"
}

// errorDetails lists the single failures of a joined validation error, one
// detail per field.
func errorDetails(err error) []ErrorDetail {
	var validationErr *requestValidationError
	if errors.As(err, &validationErr) {
		return validationErr.details()
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil
	}

	failures := joined.Unwrap()
	details := make([]ErrorDetail, 0, len(failures))
	for _, failure := range failures {
		details = append(details, ErrorDetail{Field: fieldOf(failure), Message: failure.Error()})
	}
	return details
}

func fieldOf(err error) string {
	var required *errs.ValueIsRequiredError
	var invalid *errs.ValueIsInvalidError
	var outOfRange *errs.ValueIsOutOfRangeError
	switch {
	case errors.As(err, &required):
		return required.ParamName
	case errors.As(err, &invalid):
		return invalid.ParamName
	case errors.As(err, &outOfRange):
		return outOfRange.ParamName
	case errors.Is(err, entry.ErrInvalidPosition):
		return "order_in_series"
	}
	return ""
}

func writeError(c echo.Context, err error) error {
	body := newError(err)
	if body.ErrorType == ErrorTypeServer {
		logger(c).ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}
	return c.JSON(body.Status, body)
}

// HTTPErrorHandler renders errors that escaped a handler, such as unknown
// routes or a recovered panic, in the catalog error format.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if writeErr := writeError(c, err); writeErr != nil {
		logger(c).ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
	}
}

// loggerKeyName is the echo context key RequestLogger stores the request
// scoped logger under.
const loggerKeyName = "logger"

func logger(c echo.Context) *slog.Logger {
	if l, ok := c.Get(loggerKeyName).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
