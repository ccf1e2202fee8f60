package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/services"
	"printflow/internal/core/ports"
)

// FanoutEngine turns committed job changes into per-subscriber events.
//
// For each subscriber the engine compares what the subscriber could see
// before the change with what it can see after:
//
//   - visible after: job_updated, with the job rendered for that subscriber
//   - visible before but not after: job_removed, carrying only the job id
//   - visible in neither state: nothing
//
// The role status sets decide what closing a job looks like: non-admin
// watchers fall out of visibility and receive a removal, while admins keep
// full visibility and see the final update. Delivery failures are logged
// and the event is dropped for that connection; the client re-syncs through
// the list endpoint on reconnect.
type FanoutEngine struct {
	registry   *Registry
	transport  ports.Transport
	visibility *services.VisibilityFilter
	logger     *slog.Logger
}

// NewFanoutEngine creates a fan-out engine over the given registry and
// transport.
func NewFanoutEngine(registry *Registry, transport ports.Transport, logger *slog.Logger) *FanoutEngine {
	return &FanoutEngine{
		registry:   registry,
		transport:  transport,
		visibility: services.NewVisibilityFilter(),
		logger:     logger.With("component", "fanout"),
	}
}

// NotifyJobChanged implements ports.ChangeNotifier for this instance's own
// subscribers. It never reports an error: fan-out problems must not fail
// the command that produced the change.
func (e *FanoutEngine) NotifyJobChanged(_ context.Context, change ports.JobChange) error {
	e.Apply(change)
	return nil
}

// Apply fans one change out to all matching subscribers. It also serves as
// the handler for changes relayed from other instances.
func (e *FanoutEngine) Apply(change ports.JobChange) {
	newJob, err := e.restore(change, change.To, change.UpdatedAt)
	if err != nil {
		e.logger.Error("dropping change for unrestorable job", "jobId", change.JobID, "error", err)
		return
	}

	var prevJob *job.Job
	if change.From != nil {
		prevJob, err = e.restore(change, *change.From, change.CreatedAt)
		if err != nil {
			e.logger.Error("dropping change for unrestorable job", "jobId", change.JobID, "error", err)
			return
		}
	}

	for _, sub := range e.registry.Snapshot() {
		if !sub.WantsJob(change.JobID) {
			continue
		}

		newVis := e.visibility.Evaluate(sub.Actor, newJob)
		visibleNow := newVis.Visible
		visibleBefore := prevJob != nil && e.visibility.Evaluate(sub.Actor, prevJob).Visible

		switch {
		case visibleNow:
			e.deliver(sub, renderUpdated(change, sub.Actor, newVis.Actions))
		case visibleBefore:
			e.deliver(sub, Event{Type: EventJobRemoved, JobID: change.JobID.String()})
		}
	}
}

// StaleJob identifies a job that has sat in one status for too long.
type StaleJob struct {
	JobID        kernel.UUID
	Status       job.Status
	StalledSince time.Time
}

// NotifyJobsStale sends a reminder event for each stalled job to every
// admin subscriber with a matching interest.
func (e *FanoutEngine) NotifyJobsStale(stale []StaleJob) {
	if len(stale) == 0 {
		return
	}

	for _, sub := range e.registry.Snapshot() {
		if sub.Actor.Role() != actor.RoleAdmin {
			continue
		}

		for _, s := range stale {
			if !sub.WantsJob(s.JobID) {
				continue
			}

			since := s.StalledSince
			e.deliver(sub, Event{
				Type:         EventJobStale,
				JobID:        s.JobID.String(),
				StalledSince: &since,
			})
		}
	}
}

func (e *FanoutEngine) restore(change ports.JobChange, status job.Status, updatedAt time.Time) (*job.Job, error) {
	return job.RestoreJob(
		change.JobID,
		change.MachineType,
		change.OwnerID,
		change.AttachmentRef,
		status,
		change.CreatedAt,
		updatedAt,
	)
}

func (e *FanoutEngine) deliver(sub Subscription, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		e.logger.Error("failed to encode event", "type", event.Type, "error", err)
		return
	}

	if err := e.transport.Deliver(sub.ConnectionID, payload); err != nil {
		e.logger.Warn("dropping event for unreachable connection",
			"connectionId", sub.ConnectionID, "type", event.Type, "error", err)
	}
}
