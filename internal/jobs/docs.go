// Package jobs provides scheduled background tasks for the print flow system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. StaleJobsJob - Runs every minute to remind connected admins about jobs
// that have not progressed past their stall threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(uowFactory, engine, threshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Scan failures are logged and retried on the next tick
// - Reminder delivery failures are handled by the fan-out engine, which
// drops the affected connection's event without failing the scan
package jobs
