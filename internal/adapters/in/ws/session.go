package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/observability"
)

// LocationRelay forwards a location update to the counterparty of a job.
type LocationRelay interface {
	Handle(ctx context.Context, cmd commands.RelayLocationUpdateCommand) error
}

type inboundMessage struct {
	Type  string          `json:"type"`
	JobID string          `json:"jobId"`
	Data  json.RawMessage `json:"data"`
}

var errUnknownType = errors.New("unknown message type")

// Session runs the read loop of one connection.
type Session struct {
	registry *Registry
	relay    LocationRelay
	logger   *slog.Logger
}

func NewSession(registry *Registry, relay LocationRelay, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		registry: registry,
		relay:    relay,
		logger:   logger.With("component", "relay_session"),
	}
}

// Serve reads frames from c one at a time until the socket fails or ctx is
// done, then unregisters c. Bad frames are dropped and the connection stays
// open.
func (s *Session) Serve(ctx context.Context, c *Connection) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.registry.Unregister(c)

	go func() {
		<-ctx.Done()
		c.close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			s.logger.Debug("session closed", "user_id", c.userID.String(), "error", err)
			return
		}
		s.handle(ctx, c.userID, data)
	}
}

func (s *Session) handle(ctx context.Context, senderID kernel.UUID, data []byte) {
	cmd, err := parseFrame(senderID, data)
	if err != nil {
		observability.RelayMessagesTotal.WithLabelValues("rejected").Inc()
		s.logger.Debug("frame rejected", "user_id", senderID.String(), "error", err)
		return
	}

	if err = s.relay.Handle(ctx, cmd); err != nil {
		observability.RelayMessagesTotal.WithLabelValues("dropped").Inc()
		s.logger.Debug("frame dropped", "user_id", senderID.String(), "job_id", cmd.JobID().String(), "error", err)
		return
	}
	observability.RelayMessagesTotal.WithLabelValues("relayed").Inc()
}

func parseFrame(senderID kernel.UUID, data []byte) (commands.RelayLocationUpdateCommand, error) {
	var msg inboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return commands.RelayLocationUpdateCommand{}, err
	}
	if msg.Type != commands.LocationUpdateType {
		return commands.RelayLocationUpdateCommand{}, errUnknownType
	}
	jobID, err := kernel.UUIDFromString(msg.JobID)
	if err != nil {
		return commands.RelayLocationUpdateCommand{}, err
	}
	return commands.NewRelayLocationUpdateCommand(senderID, jobID, msg.Data)
}
