// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. OrderDispatchJob - Runs every five minutes to deliver eligible orders downstream
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchOrdersHandler, dispatchSettings, logger)
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
// The dispatch job uses the cron expression "*/5 * * * *", one cycle every
// five minutes. Orders that fail delivery stay eligible and are retried on
// following cycles until the attempt cutoff excludes them.
//
// # Error Handling
//
// - A failed cycle is logged and the schedule continues; the next cycle
//   picks the same orders up again
// - Failed job starts will stop any already running jobs
package jobs
