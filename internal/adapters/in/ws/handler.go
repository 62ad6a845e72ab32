package ws

import (
	"log/slog"
	"net/http"

	"marketplace/internal/adapters/in/auth"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// maxFrameBytes caps inbound frames; a location update is a few hundred bytes.
// Larger frames end the session.
const maxFrameBytes = 4 << 10

// Authenticator resolves a bearer token into a caller.
type Authenticator interface {
	Verify(token string) (kernel.Caller, error)
}

// Handler upgrades GET /ws requests and runs the session on the request
// goroutine.
type Handler struct {
	upgrader websocket.Upgrader
	auth     Authenticator
	registry *Registry
	session  *Session
	logger   *slog.Logger
}

func NewHandler(authenticator Authenticator, registry *Registry, session *Session, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Native clients send no Origin; browsers are authenticated by token.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		auth:     authenticator,
		registry: registry,
		session:  session,
		logger:   logger.With("component", "relay_handler"),
	}
}

// Connect authenticates with the Authorization header or the token query
// parameter, since browsers cannot set headers on websocket requests.
func (h *Handler) Connect(c echo.Context) error {
	token := auth.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if token == "" {
		token = c.QueryParam("token")
	}

	caller, err := h.auth.Verify(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or missing token")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Debug("upgrade failed", "error", err)
		return nil
	}

	conn.SetReadLimit(maxFrameBytes)
	registered := h.registry.Register(caller.ID(), conn)
	h.logger.Info("relay connected", "user_id", caller.ID().String(), "role", caller.Role().String())
	h.session.Serve(c.Request().Context(), registered)
	return nil
}
