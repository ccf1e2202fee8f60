package commands

import (
	"errors"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrApplyTransitionCommandIsNotConstructed = errors.New(
	"ApplyTransitionCommand must be created via NewApplyTransitionCommand constructor",
)

// MaxCommentLength bounds the free-text comment attached to a transition.
const MaxCommentLength = 2000

// ApplyTransitionCommand represents a request to move a job to a new status.
// The full guard chain (machine type, visibility, transition table, role,
// comment requirement) runs in the handler against the job's current state.
//
// Example:
//
//	cmd, err := NewApplyTransitionCommand(jobID, requester, job.NeedsRevision, &comment)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewApplyTransitionCommandHandler(uowFactory, locks, notifier)
//	record, err := handler.Handle(ctx, cmd)
type ApplyTransitionCommand struct { //nolint:recvcheck //using for validation
	jobID     kernel.UUID
	requester actor.Actor
	to        job.Status
	comment   *string

	guard guard.ConstructorGuard
}

// NewApplyTransitionCommand creates a command to move a job to a new status.
// Validates the job ID, the requester, and the target status, and bounds the
// comment length. Whether a comment is required depends on the edge and is
// checked by the handler.
func NewApplyTransitionCommand(
	jobID kernel.UUID,
	requester actor.Actor,
	to job.Status,
	comment *string,
) (ApplyTransitionCommand, error) {
	if err := errors.Join(
		jobID.Validate(),
		requester.Validate(),
		to.Validate(),
	); err != nil {
		return ApplyTransitionCommand{}, err
	}

	if comment != nil && len(*comment) > MaxCommentLength {
		return ApplyTransitionCommand{}, errs.NewValueIsOutOfRangeError(
			"comment", len(*comment), 0, MaxCommentLength)
	}

	return ApplyTransitionCommand{
		jobID:     jobID,
		requester: requester,
		to:        to,
		comment:   comment,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrApplyTransitionCommandIsNotConstructed if validation fails.
func (c ApplyTransitionCommand) Validate() error {
	return c.guard.Validate(ErrApplyTransitionCommandIsNotConstructed)
}

// JobID returns the identifier of the job to move.
func (c ApplyTransitionCommand) JobID() kernel.UUID {
	return c.jobID
}

// Requester returns the actor requesting the transition.
func (c ApplyTransitionCommand) Requester() actor.Actor {
	return c.requester
}

// To returns the target status.
func (c ApplyTransitionCommand) To() job.Status {
	return c.to
}

// Comment returns the optional free-text comment, nil when absent.
func (c ApplyTransitionCommand) Comment() *string {
	if c.comment == nil {
		return nil
	}
	comment := *c.comment
	return &comment
}
