package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/services"
	"printflow/internal/pkg/errs"
)

// GetJobHistoryQueryHandler reads a job's ledger from the database.
// The requester's visibility is checked against the job's current state
// first; a hidden job yields the same not-found error as a missing one, so
// the endpoint does not leak which job ids exist.
type GetJobHistoryQueryHandler struct {
	db         *gorm.DB
	visibility *services.VisibilityFilter
}

// NewGetJobHistoryQueryHandler creates a handler for job history queries.
// Requires a GORM database connection for query execution.
func NewGetJobHistoryQueryHandler(db *gorm.DB) GetJobHistoryQueryHandler {
	return GetJobHistoryQueryHandler{
		db:         db,
		visibility: services.NewVisibilityFilter(),
	}
}

// Handle executes the query.
// Records come back in ledger order, creation record first.
func (h GetJobHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetJobHistoryQuery,
) ([]GetJobHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.loadJob(ctx, query.JobID())
	if err != nil {
		return nil, err
	}

	if !h.visibility.Evaluate(query.Requester(), aggregate).Visible {
		return nil, errs.NewObjectNotFoundError("jobID", query.JobID().String())
	}

	return h.loadRecords(ctx, query.JobID())
}

func (h *GetJobHistoryQueryHandler) loadJob(ctx context.Context, jobID kernel.UUID) (*job.Job, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			machine_type,
			owner_id,
			attachment_ref,
			status,
			created_at,
			updated_at
		FROM jobs
		WHERE id = ?
	`, jobID.Bytes()).Row()

	var (
		id            uuid.UUID
		machineType   int
		ownerID       uuid.UUID
		attachmentRef string
		status        int
		createdAt     time.Time
		updatedAt     time.Time
	)

	err := row.Scan(&id, &machineType, &ownerID, &attachmentRef, &status, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("jobID", jobID.String())
	}
	if err != nil {
		return nil, err
	}

	restoredID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	owner, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(
		restoredID,
		actor.MachineType(machineType),
		owner,
		attachmentRef,
		job.Status(status),
		createdAt,
		updatedAt,
	)
}

func (h *GetJobHistoryQueryHandler) loadRecords(
	ctx context.Context,
	jobID kernel.UUID,
) ([]GetJobHistoryQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_status,
			to_status,
			actor_id,
			actor_role,
			comment,
			occurred_at
		FROM job_transitions
		WHERE job_id = ?
		ORDER BY id
	`, jobID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]GetJobHistoryQueryResponse, 0)
	for rows.Next() {
		var (
			fromStatus sql.NullInt64
			toStatus   int
			actorID    uuid.UUID
			actorRole  int
			comment    sql.NullString
			occurredAt time.Time
		)

		if err = rows.Scan(
			&fromStatus, &toStatus, &actorID, &actorRole, &comment, &occurredAt,
		); err != nil {
			return nil, err
		}

		record := GetJobHistoryQueryResponse{
			To:         job.Status(toStatus),
			ActorRole:  actor.Role(actorRole),
			OccurredAt: occurredAt,
		}

		record.ActorID, err = kernel.UUIDFromBytes(actorID[:])
		if err != nil {
			return nil, err
		}

		if fromStatus.Valid {
			from := job.Status(fromStatus.Int64)
			record.From = &from
		}
		if comment.Valid {
			text := comment.String
			record.Comment = &text
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
