package realtime

import (
	"time"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/ports"
)

// Event type names as they appear on the wire.
const (
	EventJobUpdated = "job_updated"
	EventJobRemoved = "job_removed"
	EventJobStale   = "job_stale"
)

// Event is the wire form of one fan-out message. Job is present only on
// job_updated; StalledSince only on job_stale.
type Event struct {
	Type         string      `json:"type"`
	JobID        string      `json:"job_id"`
	Job          *JobPayload `json:"job,omitempty"`
	StalledSince *time.Time  `json:"stalled_since,omitempty"`
}

// JobPayload is the job as rendered for one subscriber. OwnerID is empty
// unless the subscriber is an admin or the job's owner.
type JobPayload struct {
	Status           string    `json:"status"`
	MachineType      string    `json:"machine_type"`
	OwnerID          string    `json:"owner_id,omitempty"`
	AttachmentRef    string    `json:"attachment_ref,omitempty"`
	AvailableActions []string  `json:"available_actions"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// renderUpdated builds the job_updated event for one subscriber.
func renderUpdated(change ports.JobChange, subscriber actor.Actor, actions []job.Status) Event {
	ownerID := ""
	if subscriber.Role() == actor.RoleAdmin || subscriber.ID().IsEqual(change.OwnerID) {
		ownerID = change.OwnerID.String()
	}

	actionNames := make([]string, 0, len(actions))
	for _, action := range actions {
		actionNames = append(actionNames, action.String())
	}

	return Event{
		Type:  EventJobUpdated,
		JobID: change.JobID.String(),
		Job: &JobPayload{
			Status:           change.To.String(),
			MachineType:      change.MachineType.String(),
			OwnerID:          ownerID,
			AttachmentRef:    change.AttachmentRef,
			AvailableActions: actionNames,
			CreatedAt:        change.CreatedAt,
			UpdatedAt:        change.UpdatedAt,
		},
	}
}
