package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"marketplace/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// writeError renders err as {"code", "message"}. Unexpected errors are hidden
// behind a generic message and left for the error handler to log.
func writeError(ctx echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		return err
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: firstLine(err.Error())})
}

// NewErrorHandler returns an echo.HTTPErrorHandler producing the same body
// shape as the handlers for framework errors (routing, binding, middleware)
// and for unexpected errors.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := internalErrorMessage

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			code = he.Code
			message = fmt.Sprint(he.Message)
			if code == http.StatusInternalServerError {
				message = internalErrorMessage
			}
		case statusFor(err) != http.StatusInternalServerError:
			code = statusFor(err)
			message = firstLine(err.Error())
		default:
			logger.Error("request failed",
				"method", ctx.Request().Method,
				"route", ctx.Path(),
				"error", err,
			)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = ctx.JSON(code, servers.Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.Error("write error response", "error", writeErr)
		}
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
