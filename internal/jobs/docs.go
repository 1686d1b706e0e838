// Package jobs provides scheduled background tasks for the settlement system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the settlement service.
//
// # Available Jobs
//
// 1. BatchSnapshotJob - Pins the totals of fully payment-confirmed batches that have no snapshot yet
// 2. StatsRefreshJob - Recomputes every organization's statistics reports and warms the cache
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(snapshotHandler, refreshHandler, schedules, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs take a six-field cron expression (seconds included) from
// configuration. The sweeps are idempotent, so a missed or doubled run is
// harmless.
//
// # Error Handling
//
// - A failed run is logged and retried on the next tick
// - Cache write failures inside the stats refresh are skipped per entry
// - Failed job starts will stop any already running jobs
package jobs
