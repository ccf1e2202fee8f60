package queries

import (
	"errors"
	"time"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var ErrGetJobHistoryQueryIsNotConstructed = errors.New(
	"GetJobHistoryQuery must be created via NewGetJobHistoryQuery constructor",
)

// GetJobHistoryQuery retrieves the full transition ledger of one job.
// Access is scoped exactly like the job itself: a requester who cannot see
// the job gets not-found, never a partial history.
type GetJobHistoryQuery struct {
	jobID     kernel.UUID
	requester actor.Actor

	guard guard.ConstructorGuard
}

// NewGetJobHistoryQuery creates a history query for the given job.
func NewGetJobHistoryQuery(jobID kernel.UUID, requester actor.Actor) (GetJobHistoryQuery, error) {
	if err := errors.Join(
		jobID.Validate(),
		requester.Validate(),
	); err != nil {
		return GetJobHistoryQuery{}, err
	}

	return GetJobHistoryQuery{
		jobID:     jobID,
		requester: requester,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetJobHistoryQueryIsNotConstructed if validation fails.
func (q GetJobHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetJobHistoryQueryIsNotConstructed)
}

// JobID returns the job whose ledger is requested.
func (q GetJobHistoryQuery) JobID() kernel.UUID {
	return q.jobID
}

// Requester returns the actor requesting the ledger.
func (q GetJobHistoryQuery) Requester() actor.Actor {
	return q.requester
}

// GetJobHistoryQueryResponse is one ledger entry. From is nil on the
// creation record.
type GetJobHistoryQueryResponse struct {
	From       *job.Status
	To         job.Status
	ActorID    kernel.UUID
	ActorRole  actor.Role
	Comment    *string
	OccurredAt time.Time
}
