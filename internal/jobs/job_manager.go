package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions of the background jobs.
type Schedules struct {
	RelayHeartbeat  string
	CenterIndexSync string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	relayHeartbeatJob  *RelayHeartbeatJob
	centerIndexSyncJob *CenterIndexSyncJob
}

// NewJobManager creates a new job manager. A nil syncer leaves the center
// index job out, which is the case when no spatial index is configured.
func NewJobManager(pinger Pinger, syncer CenterSyncer, schedules Schedules, logger *slog.Logger) *JobManager {
	jm := &JobManager{
		relayHeartbeatJob: NewRelayHeartbeatJob(pinger, schedules.RelayHeartbeat, logger),
	}
	if syncer != nil {
		jm.centerIndexSyncJob = NewCenterIndexSyncJob(syncer, schedules.CenterIndexSync, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.relayHeartbeatJob.Start(); err != nil {
		return fmt.Errorf("failed to start relay heartbeat job: %w", err)
	}

	if jm.centerIndexSyncJob != nil {
		if err := jm.centerIndexSyncJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.relayHeartbeatJob.Stop()
			return fmt.Errorf("failed to start center index sync job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.centerIndexSyncJob != nil {
		jm.centerIndexSyncJob.Stop()
	}
	jm.relayHeartbeatJob.Stop()
}
