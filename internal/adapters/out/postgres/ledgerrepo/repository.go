package ledgerrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/transition"
)

// ErrOutOfSequence indicates an append that does not chain onto the job's
// latest ledger record.
var ErrOutOfSequence = errors.New("record does not chain onto the ledger")

// GormLedgerRepository implements LedgerRepository using GORM.
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// Append persists a new ledger record after verifying it chains onto the
// job's latest stored record. The first record for a job must be a creation
// record; every later record's from status must equal the stored head's to
// status. Runs inside the caller's transaction, so the check and the insert
// are atomic.
func (r *GormLedgerRepository) Append(ctx context.Context, record transition.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	var head TransitionDTO
	err := r.db.WithContext(ctx).
		Where("job_id = ?", record.JobID().Bytes()).
		Order("id DESC").
		First(&head).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if !record.IsCreation() {
			return fmt.Errorf("%w: job %s has no creation record", ErrOutOfSequence, record.JobID())
		}
	case err != nil:
		return err
	default:
		if record.IsCreation() {
			return fmt.Errorf("%w: job %s already has a creation record", ErrOutOfSequence, record.JobID())
		}
		if int(*record.From()) != head.ToStatus {
			return fmt.Errorf("%w: job %s head is %d, record leaves %d",
				ErrOutOfSequence, record.JobID(), head.ToStatus, int(*record.From()))
		}
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByJob retrieves the full history for a job in ledger order.
func (r *GormLedgerRepository) GetByJob(ctx context.Context, jobID kernel.UUID) ([]transition.Record, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransitionDTO
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID.Bytes()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]transition.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, recordErr := toDomain(dto)
		if recordErr != nil {
			return nil, recordErr
		}
		records = append(records, record)
	}

	return records, nil
}
