// Package transition provides the immutable TransitionRecord value object:
// one accepted state change of a job, as appended to the history ledger.
// Records are never modified once written; for a given job they form a
// strictly ordered path over the lifecycle transition table.
package transition

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
)

// ErrBrokenHistory indicates a sequence of records that is not a valid walk
// over the transition table: a gap, a fork, or a misplaced creation record.
var ErrBrokenHistory = errors.New("history is not a valid transition walk")

// Record is one accepted transition of a job. From is nil exactly once per
// job: on the creation record. Comment is nil unless the transition's rule
// required one.
//
// Record is a value object: immutable after construction, safe to copy.
type Record struct {
	// jobID identifies the job this record belongs to
	jobID kernel.UUID

	// from is the prior status; nil for the creation record
	from *job.Status

	// to is the status the job entered
	to job.Status

	// actorID identifies who initiated the transition
	actorID kernel.UUID

	// actorRole is the role the actor held when the transition was accepted
	actorRole actor.Role

	// comment carries the mandatory revision comment where required
	comment *string

	// occurredAt orders the record within the job's history
	occurredAt time.Time

	isConstructed bool
}

// NewRecord creates a validated transition record.
//
// A nil from marks the creation record, whose to must be the initial
// InProgress status. For every other record the (from, to) pair must be an
// edge of the transition table. A supplied comment must be non-blank.
func NewRecord(
	jobID kernel.UUID,
	from *job.Status,
	to job.Status,
	actorID kernel.UUID,
	actorRole actor.Role,
	comment *string,
	occurredAt time.Time,
) (Record, error) {
	if err := errors.Join(
		jobID.Validate(),
		to.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return Record{}, err
	}

	if occurredAt.IsZero() {
		return Record{}, errs.NewValueIsRequiredError("occurredAt")
	}

	if from == nil {
		if to != job.InProgress {
			return Record{}, errs.NewValueIsInvalidErrorWithCause(
				"to",
				fmt.Errorf("creation record must enter %s, not %s", job.InProgress, to),
			)
		}
	} else {
		if err := from.Validate(); err != nil {
			return Record{}, err
		}
		if len(job.RulesFor(*from, to)) == 0 {
			return Record{}, job.NewInvalidTransitionError(*from, to)
		}
	}

	if comment != nil && strings.TrimSpace(*comment) == "" {
		return Record{}, errs.NewValueIsRequiredError("comment")
	}

	return Record{
		jobID:         jobID,
		from:          from,
		to:            to,
		actorID:       actorID,
		actorRole:     actorRole,
		comment:       comment,
		occurredAt:    occurredAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Record was created via NewRecord.
func (r Record) Validate() error {
	if !r.isConstructed {
		return errors.New("Record must be created via NewRecord constructor")
	}
	return nil
}

// JobID returns the identifier of the job the record belongs to.
func (r Record) JobID() kernel.UUID {
	return r.jobID
}

// From returns the prior status, or nil for the creation record.
func (r Record) From() *job.Status {
	if r.from == nil {
		return nil
	}
	from := *r.from
	return &from
}

// To returns the status the job entered.
func (r Record) To() job.Status {
	return r.to
}

// ActorID returns the identifier of the initiating actor.
func (r Record) ActorID() kernel.UUID {
	return r.actorID
}

// ActorRole returns the role the actor held at the time of the transition.
func (r Record) ActorRole() actor.Role {
	return r.actorRole
}

// Comment returns the transition comment, or nil when none was supplied.
func (r Record) Comment() *string {
	if r.comment == nil {
		return nil
	}
	comment := *r.comment
	return &comment
}

// OccurredAt returns the time the transition was accepted.
func (r Record) OccurredAt() time.Time {
	return r.occurredAt
}

// IsCreation reports whether this is the job's creation record.
func (r Record) IsCreation() bool {
	return r.from == nil
}

// Replay walks an ordered history and returns the status it ends in.
// It fails with ErrBrokenHistory when the records do not chain: the first
// record must be the creation record, and every subsequent record's From
// must equal the prior record's To.
func Replay(records []Record) (job.Status, error) {
	if len(records) == 0 {
		return job.Unknown, fmt.Errorf("%w: empty history", ErrBrokenHistory)
	}

	if !records[0].IsCreation() {
		return job.Unknown, fmt.Errorf("%w: first record is not a creation record", ErrBrokenHistory)
	}

	current := records[0].To()
	for _, record := range records[1:] {
		from := record.From()
		if from == nil {
			return job.Unknown, fmt.Errorf("%w: duplicate creation record", ErrBrokenHistory)
		}
		if *from != current {
			return job.Unknown, fmt.Errorf("%w: record leaves %s but job was in %s", ErrBrokenHistory, *from, current)
		}
		current = record.To()
	}

	return current, nil
}
