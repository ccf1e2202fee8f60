package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/realtime"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleJobsJob *StaleJobsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory commands.UoWFactory,
	engine *realtime.FanoutEngine,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleJobsJob: NewStaleJobsJob(uowFactory, engine, staleThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleJobsJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale jobs job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleJobsJob.Stop()
}
