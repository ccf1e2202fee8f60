package job

import (
	"errors"
	"time"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
)

// ErrJobIsNotConstructed is returned when a Job instance was not created
// through the NewJob or RestoreJob factory functions.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")

// Job represents one print-production order. It is the aggregate root that
// carries the order's identity, its immutable production attributes, and its
// lifecycle status.
//
// Job follows these invariants:
//   - Must have a valid unique identifier
//   - Must name the printer machine type it is produced on (immutable)
//   - Must name the preparer who owns it (immutable)
//   - Status changes only along edges of the transition table, and only
//     through the transition orchestrator
//   - updatedAt is set exactly once per accepted transition
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through validated methods.
type Job struct {
	// id is the unique identifier for the job
	id kernel.UUID

	// machineType names the printer machine the job is produced on
	machineType actor.MachineType

	// ownerID identifies the preparer who created the job
	ownerID kernel.UUID

	// attachmentRef is an opaque reference into the external blob store;
	// the core never inspects the content behind it
	attachmentRef string

	// status is the current lifecycle state
	status Status

	// createdAt is the creation timestamp
	createdAt time.Time

	// updatedAt is bumped exactly once per accepted transition
	updatedAt time.Time

	// isConstructed ensures the job was created via a factory function
	isConstructed bool
}

// NewJob creates a new Job in the InProgress status.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - machineType: the printer machine the job will be produced on
//   - ownerID: the preparer creating the job
//   - attachmentRef: opaque blob-store reference, may be empty
//   - createdAt: creation time, also used as the initial updatedAt
//
// Returns a validation error if any parameter is invalid.
func NewJob(
	id kernel.UUID,
	machineType actor.MachineType,
	ownerID kernel.UUID,
	attachmentRef string,
	createdAt time.Time,
) (*Job, error) {
	if err := errors.Join(
		id.Validate(),
		machineType.Validate(),
		ownerID.Validate(),
	); err != nil {
		return nil, err
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Job{
		id:            id,
		machineType:   machineType,
		ownerID:       ownerID,
		attachmentRef: attachmentRef,
		status:        InProgress,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreJob reconstructs a Job from persistence. Unlike NewJob it accepts
// any valid status; it is the only way to obtain a job mid-lifecycle.
func RestoreJob(
	id kernel.UUID,
	machineType actor.MachineType,
	ownerID kernel.UUID,
	attachmentRef string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Job, error) {
	if err := errors.Join(
		id.Validate(),
		machineType.Validate(),
		ownerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Job{
		id:            id,
		machineType:   machineType,
		ownerID:       ownerID,
		attachmentRef: attachmentRef,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Job instance was properly constructed through a
// factory function. Call when reconstructing jobs from persistence.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// IsEqual compares two jobs by their unique identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// MachineType returns the printer machine the job is produced on.
func (j *Job) MachineType() actor.MachineType {
	return j.machineType
}

// OwnerID returns the identifier of the preparer who created the job.
func (j *Job) OwnerID() kernel.UUID {
	return j.ownerID
}

// AttachmentRef returns the opaque blob-store reference, or "" when the job
// carries no attachments.
func (j *Job) AttachmentRef() string {
	return j.attachmentRef
}

// Status returns the current lifecycle status.
func (j *Job) Status() Status {
	return j.status
}

// CreatedAt returns the creation timestamp.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// UpdatedAt returns the time of the last accepted transition.
func (j *Job) UpdatedAt() time.Time {
	return j.updatedAt
}

// RequiresRevisionComment reports whether the job currently sits in
// needs_revision, i.e. the last transition carried a revision comment.
func (j *Job) RequiresRevisionComment() bool {
	return j.status == NeedsRevision
}

// MoveTo advances the job to the given status, bumping updatedAt.
//
// MoveTo enforces only the shape of the lifecycle: the (current, to) pair
// must be an edge of the transition table. Role, machine-type, and comment
// guards for a concrete caller are checked by the transition validator
// before this method is reached. Returns InvalidTransitionError (including
// for to == current, since the table has no self-loops).
func (j *Job) MoveTo(to Status, at time.Time) error {
	if err := to.Validate(); err != nil {
		return err
	}

	if len(RulesFor(j.status, to)) == 0 {
		return NewInvalidTransitionError(j.status, to)
	}

	j.status = to
	j.updatedAt = at
	return nil
}
