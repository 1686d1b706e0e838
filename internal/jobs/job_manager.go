package jobs

import (
	"fmt"
	"log/slog"

	"settlement/internal/core/application/usecases/commands"
)

// Schedules carries the cron expressions of the background jobs, six-field
// form with seconds.
type Schedules struct {
	BatchSnapshot string
	StatsRefresh  string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	batchSnapshotJob *BatchSnapshotJob
	statsRefreshJob  *StatsRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	snapshotHandler commands.SnapshotBatchesCommandHandler,
	refreshHandler commands.RefreshStatsCommandHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		batchSnapshotJob: NewBatchSnapshotJob(snapshotHandler, schedules.BatchSnapshot, logger),
		statsRefreshJob:  NewStatsRefreshJob(refreshHandler, schedules.StatsRefresh, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.batchSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start batch snapshot job: %w", err)
	}

	if err := jm.statsRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.batchSnapshotJob.Stop()
		return fmt.Errorf("failed to start stats refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statsRefreshJob.Stop()
	jm.batchSnapshotJob.Stop()
}
