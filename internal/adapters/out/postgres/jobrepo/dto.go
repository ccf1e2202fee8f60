// Package jobrepo provides data transfer objects and mapping functions for
// job persistence. It implements the repository pattern for the job
// aggregate, converting between domain entities and database rows.
package jobrepo

import (
	"time"

	"github.com/google/uuid"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
)

// JobDTO represents the database structure for persisting job aggregates.
// Status and machine type are stored as their integer enum values; the
// status column is indexed for the stalled-job scan.
type JobDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	MachineType   int
	OwnerID       uuid.UUID `gorm:"type:uuid;index"`
	AttachmentRef string
	Status        int `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for job entities.
// Overrides GORM's default naming convention to use "jobs".
func (JobDTO) TableName() string {
	return "jobs"
}

// fromDomain converts a job domain aggregate to its database representation.
func fromDomain(aggregate *job.Job) JobDTO {
	return JobDTO{
		ID:            aggregate.ID().Bytes(),
		MachineType:   int(aggregate.MachineType()),
		OwnerID:       aggregate.OwnerID().Bytes(),
		AttachmentRef: aggregate.AttachmentRef(),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a job domain aggregate using RestoreJob.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(
		id,
		actor.MachineType(dto.MachineType),
		ownerID,
		dto.AttachmentRef,
		job.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
