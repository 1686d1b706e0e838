package jobs

import (
	"context"
	"log/slog"

	"settlement/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StatsRefreshJob periodically recomputes every organization's statistics
// reports and warms the cache, so dashboard reads rarely pay for a full
// recomputation.
type StatsRefreshJob struct {
	handler  commands.RefreshStatsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatsRefreshJob creates the cache-warming job with the given cron
// schedule (six-field expression, seconds included).
func NewStatsRefreshJob(
	handler commands.RefreshStatsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *StatsRefreshJob {
	return &StatsRefreshJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stats_refresh_job"),
	}
}

// Start begins the cache-warming pass on its schedule.
func (j *StatsRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		warmed, err := j.handler.Handle(ctx, commands.NewRefreshStatsCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Stats refresh pass failed", "error", err)
			return
		}
		j.logger.DebugContext(ctx, "Stats refresh pass completed", "reports", warmed)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the cache-warming job.
func (j *StatsRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats refresh job stopped")
}
