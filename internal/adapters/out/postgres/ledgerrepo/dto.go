// Package ledgerrepo persists the append-only transition ledger.
// Rows are only ever inserted; the database sequence on the primary key
// provides the per-job ordering the history endpoint relies on.
package ledgerrepo

import (
	"time"

	"github.com/google/uuid"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/transition"
)

// TransitionDTO represents one ledger row. FromStatus is null on the
// creation record.
type TransitionDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	JobID      uuid.UUID `gorm:"type:uuid;index"`
	FromStatus *int
	ToStatus   int
	ActorID    uuid.UUID `gorm:"type:uuid"`
	ActorRole  int
	Comment    *string
	OccurredAt time.Time
}

// TableName specifies the database table name for ledger rows.
// Overrides GORM's default naming convention to use "job_transitions".
func (TransitionDTO) TableName() string {
	return "job_transitions"
}

// fromDomain converts a transition record to its database representation.
func fromDomain(record transition.Record) TransitionDTO {
	var fromStatus *int
	if from := record.From(); from != nil {
		value := int(*from)
		fromStatus = &value
	}

	return TransitionDTO{
		JobID:      record.JobID().Bytes(),
		FromStatus: fromStatus,
		ToStatus:   int(record.To()),
		ActorID:    record.ActorID().Bytes(),
		ActorRole:  int(record.ActorRole()),
		Comment:    record.Comment(),
		OccurredAt: record.OccurredAt(),
	}
}

// toDomain converts a database row to a transition record. Stored rows were
// validated on append, so reconstruction only fails on corrupted data.
func toDomain(dto TransitionDTO) (transition.Record, error) {
	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return transition.Record{}, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return transition.Record{}, err
	}

	var from *job.Status
	if dto.FromStatus != nil {
		status := job.Status(*dto.FromStatus)
		from = &status
	}

	return transition.NewRecord(
		jobID,
		from,
		job.Status(dto.ToStatus),
		actorID,
		actor.Role(dto.ActorRole),
		dto.Comment,
		dto.OccurredAt,
	)
}
