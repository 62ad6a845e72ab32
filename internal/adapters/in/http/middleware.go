package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/adapters/in/auth"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/observability"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

const callerKey = "marketplace.caller"

// Authenticator resolves a bearer token into a caller.
type Authenticator interface {
	Verify(token string) (kernel.Caller, error)
}

// Authenticate requires a valid bearer token and stores the caller on the context.
func Authenticate(authenticator Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := auth.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			caller, err := authenticator.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or missing bearer token")
			}
			c.Set(callerKey, caller)
			return next(c)
		}
	}
}

func callerFrom(c echo.Context) (kernel.Caller, error) {
	caller, ok := c.Get(callerKey).(kernel.Caller)
	if !ok {
		return kernel.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or missing bearer token")
	}
	return caller, nil
}

// ValidateRequests checks requests against the OpenAPI document. Requests for
// paths the document does not describe pass through untouched.
func ValidateRequests(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, err
	}
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				if errors.Is(findErr, routers.ErrPathNotFound) || errors.Is(findErr, routers.ErrMethodNotAllowed) {
					return next(c)
				}
				return echo.NewHTTPError(http.StatusBadRequest, firstLine(findErr.Error()))
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return echo.NewHTTPError(http.StatusBadRequest, firstLine(validateErr.Error()))
			}
			return next(c)
		}
	}, nil
}

// ObserveRequests records Prometheus metrics and logs one line per request.
func ObserveRequests(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := c.Response().Status
			elapsed := time.Since(start)

			labels := []string{c.Request().Method, route, strconv.Itoa(status)}
			observability.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
			observability.HTTPRequestDuration.WithLabelValues(labels...).Observe(elapsed.Seconds())

			logger.Info("http_request",
				"method", c.Request().Method,
				"route", route,
				"status", status,
				"duration_ms", elapsed.Milliseconds(),
				"remote_addr", c.RealIP(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			return nil
		}
	}
}
