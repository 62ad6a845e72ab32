package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// CenterSyncer reloads emergency centers into the spatial index.
type CenterSyncer interface {
	Sync(ctx context.Context) (int, error)
}

const centerSyncTimeout = 30 * time.Second

// CenterIndexSyncJob keeps the spatial index in step with the center table,
// picking up centers added or deactivated since the last run.
type CenterIndexSyncJob struct {
	syncer CenterSyncer
	spec   string
	cron   *cron.Cron
	logger *slog.Logger
}

func NewCenterIndexSyncJob(syncer CenterSyncer, spec string, logger *slog.Logger) *CenterIndexSyncJob {
	return &CenterIndexSyncJob{
		syncer: syncer,
		spec:   spec,
		cron:   cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger: logger.With("component", "center_index_sync_job"),
	}
}

// Start syncs once immediately and then on every tick of the schedule. A
// failed first sync is logged; lookups fall back to a full scan meanwhile.
func (j *CenterIndexSyncJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.run); err != nil {
		return err
	}

	j.run()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Center index sync job started", "spec", j.spec)
	return nil
}

func (j *CenterIndexSyncJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), centerSyncTimeout)
	defer cancel()

	indexed, err := j.syncer.Sync(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Center index sync failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Center index synced", "centers", indexed)
}

func (j *CenterIndexSyncJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Center index sync job stopped")
}
