package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/services"
)

// ListVisibleJobsQueryHandler computes the requester's visible set.
// Reads all active jobs and filters them through the visibility rules, so
// two actors issuing the same query can receive entirely different lists.
//
// Example:
//
//	handler := NewListVisibleJobsQueryHandler(db)
//	query, _ := NewListVisibleJobsQuery(requester)
//	jobs, err := handler.Handle(ctx, query)
type ListVisibleJobsQueryHandler struct {
	db         *gorm.DB
	visibility *services.VisibilityFilter
}

// NewListVisibleJobsQueryHandler creates a handler for visible set queries.
// Requires a GORM database connection for query execution.
func NewListVisibleJobsQueryHandler(db *gorm.DB) ListVisibleJobsQueryHandler {
	return ListVisibleJobsQueryHandler{
		db:         db,
		visibility: services.NewVisibilityFilter(),
	}
}

// Handle executes the query.
// Every row passes through the visibility rules: the non-admin role sets
// exclude closed jobs on their own, while admins keep full visibility
// including closed ones. Results are sorted by creation time for consistent
// output.
func (h ListVisibleJobsQueryHandler) Handle(
	ctx context.Context,
	query ListVisibleJobsQuery,
) ([]ListVisibleJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requester := query.Requester()
	visible := make([]ListVisibleJobsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			machine_type,
			owner_id,
			attachment_ref,
			status,
			created_at,
			updated_at
		FROM jobs
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            uuid.UUID
			machineType   int
			ownerID       uuid.UUID
			attachmentRef string
			status        int
			createdAt     time.Time
			updatedAt     time.Time
		)

		if err = rows.Scan(
			&id, &machineType, &ownerID, &attachmentRef, &status, &createdAt, &updatedAt,
		); err != nil {
			return nil, err
		}

		jobID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		owner, ownerErr := kernel.UUIDFromBytes(ownerID[:])
		if ownerErr != nil {
			return nil, ownerErr
		}

		aggregate, restoreErr := job.RestoreJob(
			jobID,
			actor.MachineType(machineType),
			owner,
			attachmentRef,
			job.Status(status),
			createdAt,
			updatedAt,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}

		v := h.visibility.Evaluate(requester, aggregate)
		if !v.Visible {
			continue
		}

		visible = append(visible, responseFromJob(aggregate, requester, v.Actions))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return visible, nil
}

// responseFromJob renders a job for one requester, redacting the owner for
// every role except admins and the owner themselves.
func responseFromJob(aggregate *job.Job, requester actor.Actor, actions []job.Status) ListVisibleJobsQueryResponse {
	var ownerID *kernel.UUID
	if requester.Role() == actor.RoleAdmin || requester.ID().IsEqual(aggregate.OwnerID()) {
		owner := aggregate.OwnerID()
		ownerID = &owner
	}

	return ListVisibleJobsQueryResponse{
		ID:               aggregate.ID(),
		Status:           aggregate.Status(),
		MachineType:      aggregate.MachineType(),
		OwnerID:          ownerID,
		AttachmentRef:    aggregate.AttachmentRef(),
		AvailableActions: actions,
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}
