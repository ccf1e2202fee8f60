// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and apply the visibility rules,
// bypassing repositories and the unit of work.
package queries

import (
	"errors"
	"time"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var ErrListVisibleJobsQueryIsNotConstructed = errors.New(
	"ListVisibleJobsQuery must be created via NewListVisibleJobsQuery constructor",
)

// ListVisibleJobsQuery retrieves the active jobs the requester may see,
// together with the transitions the requester may apply to each.
//
// Example:
//
//	query, err := NewListVisibleJobsQuery(requester)
//	if err != nil {
//	    return err
//	}
//	jobs, err := handler.Handle(ctx, query)
type ListVisibleJobsQuery struct {
	requester actor.Actor

	guard guard.ConstructorGuard
}

// NewListVisibleJobsQuery creates a query scoped to the given requester.
func NewListVisibleJobsQuery(requester actor.Actor) (ListVisibleJobsQuery, error) {
	if err := requester.Validate(); err != nil {
		return ListVisibleJobsQuery{}, err
	}

	return ListVisibleJobsQuery{
		requester: requester,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListVisibleJobsQueryIsNotConstructed if validation fails.
func (q ListVisibleJobsQuery) Validate() error {
	return q.guard.Validate(ErrListVisibleJobsQueryIsNotConstructed)
}

// Requester returns the actor the visible set is computed for.
func (q ListVisibleJobsQuery) Requester() actor.Actor {
	return q.requester
}

// ListVisibleJobsQueryResponse is one job in the requester's visible set.
// OwnerID is nil unless the requester is an admin or the job's owner; other
// roles work with the job without learning who prepared it.
type ListVisibleJobsQueryResponse struct {
	ID               kernel.UUID
	Status           job.Status
	MachineType      actor.MachineType
	OwnerID          *kernel.UUID
	AttachmentRef    string
	AvailableActions []job.Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
