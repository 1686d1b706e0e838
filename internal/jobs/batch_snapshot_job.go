package jobs

import (
	"context"
	"log/slog"

	"settlement/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BatchSnapshotJob periodically pins the totals of fully payment-confirmed
// batches that have no persisted snapshot yet.
type BatchSnapshotJob struct {
	handler  commands.SnapshotBatchesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBatchSnapshotJob creates the snapshot sweep job with the given cron
// schedule (six-field expression, seconds included).
func NewBatchSnapshotJob(
	handler commands.SnapshotBatchesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *BatchSnapshotJob {
	return &BatchSnapshotJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "batch_snapshot_job"),
	}
}

// Start begins the snapshot sweep on its schedule.
func (j *BatchSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		pinned, err := j.handler.Handle(ctx, commands.NewSnapshotBatchesCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Batch snapshot sweep failed", "error", err)
			return
		}
		if pinned > 0 {
			j.logger.InfoContext(ctx, "Batch snapshot sweep pinned totals", "snapshots", pinned)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Batch snapshot job started", "schedule", j.schedule)
	return nil
}

// Stop stops the snapshot sweep job.
func (j *BatchSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Batch snapshot job stopped")
}
