package jobs

import (
	"context"
	"log/slog"
	"time"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/realtime"

	"github.com/robfig/cron/v3"
)

// StaleJobsJob periodically scans for jobs that have not moved in a while
// and sends reminder events to connected admins. Runs once a minute.
type StaleJobsJob struct {
	uowFactory commands.UoWFactory
	engine     *realtime.FanoutEngine
	threshold  time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStaleJobsJob creates a new job that reminds admins about stalled jobs.
// A job counts as stalled when it is not in a terminal status and its last
// update is older than the given threshold.
func NewStaleJobsJob(
	uowFactory commands.UoWFactory,
	engine *realtime.FanoutEngine,
	threshold time.Duration,
	logger *slog.Logger,
) *StaleJobsJob {
	return &StaleJobsJob{
		uowFactory: uowFactory,
		engine:     engine,
		threshold:  threshold,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "stale_jobs_job"),
	}
}

// Start begins the stale jobs job to run at the top of every minute.
func (j *StaleJobsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		if err := j.scan(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale jobs scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale jobs job started (running every minute)")
	return nil
}

// Stop stops the stale jobs job.
func (j *StaleJobsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale jobs job stopped")
}

// scan reads the active statuses one by one without a transaction and pushes
// a reminder for each stalled job through the fan-out engine. Terminal jobs
// are never read, they cannot stall.
func (j *StaleJobsJob) scan(ctx context.Context) error {
	uow := j.uowFactory.Create()

	cutoff := time.Now().UTC().Add(-j.threshold)

	var stale []realtime.StaleJob
	for _, status := range job.ActiveStatuses() {
		aggregates, err := uow.JobRepository().GetAllInStatus(ctx, status)
		if err != nil {
			return err
		}

		for _, aggregate := range aggregates {
			if !aggregate.UpdatedAt().Before(cutoff) {
				continue
			}

			stale = append(stale, realtime.StaleJob{
				JobID:        aggregate.ID(),
				Status:       aggregate.Status(),
				StalledSince: aggregate.UpdatedAt(),
			})
		}
	}

	if len(stale) > 0 {
		j.engine.NotifyJobsStale(stale)
		j.logger.InfoContext(ctx, "Stale job reminders sent", "count", len(stale))
	}

	return nil
}
