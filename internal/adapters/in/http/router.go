package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
	"golang.org/x/time/rate"
)

// RouterConfig collects what NewRouter needs to assemble the HTTP surface.
type RouterConfig struct {
	Server        servers.ServerInterface
	Authenticator Authenticator
	// Relay upgrades GET /ws; nil leaves the route unregistered.
	Relay  echo.HandlerFunc
	Logger *slog.Logger
	// OtpAttemptsPerMinute limits OTP submissions per caller; zero disables the limit.
	OtpAttemptsPerMinute int
}

// NewRouter builds the echo instance serving the REST API, the relay endpoint,
// health, metrics and the API documentation.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	if cfg.Server == nil {
		return nil, errors.New("server is required")
	}
	if cfg.Authenticator == nil {
		return nil, errors.New("authenticator is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "http")

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := ValidateRequests(swagger)
	if err != nil {
		return nil, err
	}
	document, err := json.Marshal(swagger)
	if err != nil {
		return nil, err
	}
	registerDocument(string(document))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(ObserveRequests(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, document)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if cfg.Relay != nil {
		e.GET("/ws", cfg.Relay)
	}

	api := routeGroup{e: e, middleware: []echo.MiddlewareFunc{
		Authenticate(cfg.Authenticator),
		validator,
	}}
	if cfg.OtpAttemptsPerMinute > 0 {
		api.middleware = append(api.middleware, limitOtpAttempts(cfg.OtpAttemptsPerMinute))
	}
	servers.RegisterHandlers(api, cfg.Server)

	return e, nil
}

func limitOtpAttempts(perMinute int) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Every(time.Minute / time.Duration(perMinute)),
		Burst:     perMinute,
		ExpiresIn: 10 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return !strings.HasSuffix(c.Path(), "/verify-otp")
		},
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			caller, err := callerFrom(c)
			if err != nil {
				return "", err
			}
			return caller.ID().String(), nil
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or missing bearer token")
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many OTP attempts")
		},
	})
}

// routeGroup attaches middleware to the generated API routes only. An
// echo.Group would also capture unknown paths with its middleware.
type routeGroup struct {
	e          *echo.Echo
	middleware []echo.MiddlewareFunc
}

func (g routeGroup) add(method, path string, h echo.HandlerFunc, m []echo.MiddlewareFunc) *echo.Route {
	chain := make([]echo.MiddlewareFunc, 0, len(g.middleware)+len(m))
	chain = append(chain, g.middleware...)
	chain = append(chain, m...)
	return g.e.Add(method, path, h, chain...)
}

func (g routeGroup) CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return g.add(http.MethodConnect, path, h, m)
}

func (g routeGroup) DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return g.add(http.MethodDelete, path, h, m)
}

func (g routeGroup) GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return g.add(http.MethodGet, path, h, m)
}

func (g routeGroup) HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return g.add(http.MethodHead, path, h, m)
}

func (g routeGroup) OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return g.add(http.MethodOptions, path, h, m)
}

func (g routeGroup) PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return g.add(http.MethodPatch, path, h, m)
}

func (g routeGroup) POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return g.add(http.MethodPost, path, h, m)
}

func (g routeGroup) PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return g.add(http.MethodPut, path, h, m)
}

func (g routeGroup) TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return g.add(http.MethodTrace, path, h, m)
}

type openAPIDocument struct {
	json string
}

func (d openAPIDocument) ReadDoc() string {
	return d.json
}

// registerDocument exposes the API document to the swagger UI. Only the first
// router built in a process registers it.
func registerDocument(document string) {
	if swag.GetSwagger(swag.Name) != nil {
		return
	}
	swag.Register(swag.Name, openAPIDocument{json: document})
}
