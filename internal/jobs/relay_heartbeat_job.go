package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Pinger probes every open relay connection and drops the dead ones.
type Pinger interface {
	Ping(ctx context.Context) int
}

// RelayHeartbeatJob pings relay connections on a schedule so that peers which
// vanished without a close frame are unregistered.
type RelayHeartbeatJob struct {
	pinger Pinger
	spec   string
	cron   *cron.Cron
	logger *slog.Logger
}

// NewRelayHeartbeatJob creates the heartbeat job. spec is a six field cron
// expression (seconds first).
func NewRelayHeartbeatJob(pinger Pinger, spec string, logger *slog.Logger) *RelayHeartbeatJob {
	return &RelayHeartbeatJob{
		pinger: pinger,
		spec:   spec,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "relay_heartbeat_job"),
	}
}

// Start registers the heartbeat and starts the scheduler.
func (j *RelayHeartbeatJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Relay heartbeat job started", "spec", j.spec)
	return nil
}

func (j *RelayHeartbeatJob) run() {
	ctx := context.Background()
	alive := j.pinger.Ping(ctx)
	j.logger.DebugContext(ctx, "Relay heartbeat", "connections", alive)
}

// Stop stops the scheduler; a running heartbeat is allowed to finish.
func (j *RelayHeartbeatJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Relay heartbeat job stopped")
}
