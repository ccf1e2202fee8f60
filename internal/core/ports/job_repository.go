// Package ports defines repository and transport interfaces for the
// printflow domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	// The job must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate.
	// The job must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAllInStatus retrieves all jobs currently in the given status.
	// Used by scheduled work that scans the active statuses for stalled jobs.
	// Visibility rules are applied by the caller, so the repository does no
	// filtering of its own.
	GetAllInStatus(ctx context.Context, status job.Status) ([]*job.Job, error)
}
