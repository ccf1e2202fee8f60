package commands

import (
	"errors"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand represents a request to register a new print job.
// The requester becomes the job's owner and the job starts its lifecycle
// in the in_progress status.
//
// Example:
//
//	jobID := kernel.NewUUID()
//	cmd, err := NewCreateJobCommand(jobID, requester, actor.MachineTypeA, "s3://artwork/42.pdf")
//	if err != nil {
//	    return fmt.Errorf("invalid job data: %w", err)
//	}
//
//	handler := NewCreateJobCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create job: %w", err)
//	}
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID         kernel.UUID
	requester     actor.Actor
	machineType   actor.MachineType
	attachmentRef string

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to register a new print job.
// Validates the job ID, the requester, and the target machine type.
// The attachment reference is an opaque blob-store pointer and may be empty.
func NewCreateJobCommand(
	jobID kernel.UUID,
	requester actor.Actor,
	machineType actor.MachineType,
	attachmentRef string,
) (CreateJobCommand, error) {
	if err := errors.Join(
		jobID.Validate(),
		requester.Validate(),
		machineType.Validate(),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return CreateJobCommand{
		jobID:         jobID,
		requester:     requester,
		machineType:   machineType,
		attachmentRef: attachmentRef,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateJobCommandIsNotConstructed if validation fails.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the unique identifier for the new job.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Requester returns the actor creating the job.
func (c CreateJobCommand) Requester() actor.Actor {
	return c.requester
}

// MachineType returns the printer machine the job targets.
func (c CreateJobCommand) MachineType() actor.MachineType {
	return c.machineType
}

// AttachmentRef returns the opaque artwork reference, possibly empty.
func (c CreateJobCommand) AttachmentRef() string {
	return c.attachmentRef
}
