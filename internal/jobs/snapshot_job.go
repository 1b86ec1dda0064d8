package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/papertrade/folio/internal/repositories"
	"github.com/papertrade/folio/internal/services"
)

// SnapshotJob periodically records a snapshot for every user that currently
// holds positions. Snapshot creation is idempotent per (user, day), so an
// overlapping or retried run is harmless.
type SnapshotJob struct {
	snapshots services.SnapshotService
	positions repositories.PositionRepository
	logger    *zap.Logger
	timeout   time.Duration
	cron      *cron.Cron
}

// NewSnapshotJob creates a new daily snapshot job
func NewSnapshotJob(snapshots services.SnapshotService, positions repositories.PositionRepository, logger *zap.Logger) *SnapshotJob {
	return &SnapshotJob{
		snapshots: snapshots,
		positions: positions,
		logger:    logger,
		timeout:   5 * time.Minute,
	}
}

// Start schedules the job with the given cron spec (e.g. "5 0 * * *") and
// begins running it in the background.
func (j *SnapshotJob) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, j.Run); err != nil {
		return err
	}
	c.Start()
	j.cron = c
	j.logger.Info("snapshot job scheduled", zap.String("spec", spec))
	return nil
}

// Stop halts the scheduler and waits for a running invocation to finish.
func (j *SnapshotJob) Stop() {
	if j.cron != nil {
		<-j.cron.Stop().Done()
	}
}

// Run snapshots every user with positions once. A failure for one user is
// logged and does not block the rest.
func (j *SnapshotJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	users, err := j.positions.ListUsers(ctx)
	if err != nil {
		j.logger.Error("snapshot job: failed to list users", zap.Error(err))
		return
	}

	var failed int
	for _, userID := range users {
		if _, err := j.snapshots.CreateOrUpdateSnapshot(ctx, userID, nil); err != nil {
			failed++
			j.logger.Error("snapshot job: snapshot failed",
				zap.String("user_id", userID), zap.Error(err))
		}
	}
	j.logger.Info("snapshot job finished",
		zap.Int("users", len(users)), zap.Int("failed", failed))
}
