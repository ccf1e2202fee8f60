package job

import (
	"errors"
	"fmt"

	"printflow/internal/core/domain/model/actor"
)

// Sentinel errors for the distinct rejection kinds of the lifecycle state
// machine. Callers classify with errors.Is; each kind is reported with its
// own message and never collapsed into a generic "not found".
var (
	// ErrInvalidTransition marks a (from, to) pair that is not an edge of the
	// transition table, including re-applying the current status.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrWrongMachineType marks a printer operator acting on a job produced
	// on a different machine type.
	ErrWrongMachineType = errors.New("wrong machine type")

	// ErrCommentRequired marks a transition whose rule demands a comment
	// that the caller did not supply.
	ErrCommentRequired = errors.New("comment required")
)

// InvalidTransitionError reports the offending (from, to) pair so the caller
// sees exactly which edge was rejected.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// WrongMachineTypeError reports a machine-type mismatch between the job and
// the acting printer operator.
type WrongMachineTypeError struct {
	JobMachineType   actor.MachineType
	ActorMachineType actor.MachineType
}

// NewWrongMachineTypeError creates a WrongMachineTypeError for the mismatch.
func NewWrongMachineTypeError(jobMachineType, actorMachineType actor.MachineType) *WrongMachineTypeError {
	return &WrongMachineTypeError{JobMachineType: jobMachineType, ActorMachineType: actorMachineType}
}

func (e *WrongMachineTypeError) Error() string {
	return fmt.Sprintf("%s: job is produced on %s, operator runs %s",
		ErrWrongMachineType, e.JobMachineType, e.ActorMachineType)
}

func (e *WrongMachineTypeError) Unwrap() error {
	return ErrWrongMachineType
}

// CommentRequiredError reports a transition that is only valid with a comment.
type CommentRequiredError struct {
	From Status
	To   Status
}

// NewCommentRequiredError creates a CommentRequiredError for the edge.
func NewCommentRequiredError(from, to Status) *CommentRequiredError {
	return &CommentRequiredError{From: from, To: to}
}

func (e *CommentRequiredError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrCommentRequired, e.From, e.To)
}

func (e *CommentRequiredError) Unwrap() error {
	return ErrCommentRequired
}
