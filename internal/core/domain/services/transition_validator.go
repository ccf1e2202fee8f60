package services

import (
	"errors"
	"fmt"
	"strings"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
)

// ErrNotAuthorizedForJob marks an actor acting on a job they may see but
// whose requested transition their role may not initiate, or a job their
// role may not see at all. It is deliberately distinct from "not found":
// the two causes are never collapsed into one message.
var ErrNotAuthorizedForJob = errors.New("not authorized for job")

// NotAuthorizedForJobError reports which actor was denied on which job.
type NotAuthorizedForJobError struct {
	ActorID kernel.UUID
	JobID   kernel.UUID
}

// NewNotAuthorizedForJobError creates a NotAuthorizedForJobError.
func NewNotAuthorizedForJobError(actorID, jobID kernel.UUID) *NotAuthorizedForJobError {
	return &NotAuthorizedForJobError{ActorID: actorID, JobID: jobID}
}

func (e *NotAuthorizedForJobError) Error() string {
	return fmt.Sprintf("%s: actor %s, job %s", ErrNotAuthorizedForJob, e.ActorID, e.JobID)
}

func (e *NotAuthorizedForJobError) Unwrap() error {
	return ErrNotAuthorizedForJob
}

// TransitionValidator decides whether an actor may move a job along a
// requested edge of the lifecycle. It is a pure function over its inputs:
// no persistence, no clock, no mutation.
//
// Rejections are reported with the specific kind:
//   - job.ErrWrongMachineType: printer operator on a job of another machine
//   - job.ErrInvalidTransition: the (current, requested) pair is not an edge
//     of the transition table, including requesting the current status
//   - ErrNotAuthorizedForJob: the edge exists but the actor's role may not
//     initiate it
//   - job.ErrCommentRequired: the edge demands a comment that is missing
//
// Example:
//
//	validator := services.NewTransitionValidator()
//	if err := validator.Validate(operator, j, job.Printing, nil); err != nil {
//	    switch {
//	    case errors.Is(err, job.ErrWrongMachineType):
//	        // operator runs the other machine
//	    case errors.Is(err, job.ErrInvalidTransition):
//	        // edge does not exist
//	    }
//	}
type TransitionValidator struct{}

// NewTransitionValidator creates a TransitionValidator.
func NewTransitionValidator() *TransitionValidator {
	return &TransitionValidator{}
}

// Validate checks the requested transition for the given actor and returns
// nil when it may proceed. The checks run in guard order: machine type
// first (so an operator on the wrong machine always learns that, not a
// vaguer rejection), then edge existence, then role, then comment.
func (v *TransitionValidator) Validate(a actor.Actor, j *job.Job, to job.Status, comment *string) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := j.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}

	if a.Role() == actor.RolePrinterOperator && !a.OperatesMachine(j.MachineType()) {
		return job.NewWrongMachineTypeError(j.MachineType(), a.MachineType())
	}

	rules := job.RulesFor(j.Status(), to)
	if len(rules) == 0 {
		return job.NewInvalidTransitionError(j.Status(), to)
	}

	var applicable []job.Rule
	for _, rule := range rules {
		if rule.Allows(a.Role()) {
			applicable = append(applicable, rule)
		}
	}
	if len(applicable) == 0 {
		return NewNotAuthorizedForJobError(a.ID(), j.ID())
	}

	for _, rule := range applicable {
		if rule.RequiresComment && isBlank(comment) {
			return job.NewCommentRequiredError(j.Status(), to)
		}
	}

	return nil
}

func isBlank(comment *string) bool {
	return comment == nil || strings.TrimSpace(*comment) == ""
}
