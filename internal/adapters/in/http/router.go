package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig wires the REST server into an echo instance.
type RouterConfig struct {
	Server *Server
	Logger *slog.Logger

	// Gatherer backs GET /metrics.
	Gatherer prometheus.Gatherer

	// Ping reports database health on GET /health. Optional.
	Ping func(ctx context.Context) error

	// EchoLogLevel is the level of echo's own gommon logger.
	EchoLogLevel log.Lvl
}

// NewRouter builds the echo instance serving the catalog:
//
//	/rest/...      catalog REST API, validated against openapi.yml
//	/health        liveness and database check
//	/metrics       prometheus metrics
//	/openapi.json  the API document
//	/swagger/*     swagger UI
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	docJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	registerSwagger(docJSON)

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(cfg.EchoLogLevel)
	e.HTTPErrorHandler = HTTPErrorHandler

	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		if cfg.Ping != nil {
			if pingErr := cfg.Ping(c.Request().Context()); pingErr != nil {
				logger.ErrorContext(c.Request().Context(), "Health check failed", "error", pingErr)
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	})

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, docJSON)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(APIPrefix, OpenAPIValidator(doc))
	RegisterHandlers(api, cfg.Server, "")

	return e, nil
}

// RequestLogger logs every request through logger and makes logger
// available to the error handler.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logRequest := middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "Request handled",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		logged := logRequest(next)
		return func(c echo.Context) error {
			c.Set(loggerKeyName, logger)
			return logged(c)
		}
	}
}
