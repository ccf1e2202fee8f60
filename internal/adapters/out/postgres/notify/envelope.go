// Package notify relays committed job changes between service instances
// over Postgres LISTEN/NOTIFY. Each instance publishes its own changes and
// listens for everyone else's, so clients connected to any instance observe
// the full stream. Envelopes carry the publishing instance's id and the
// listener skips its own, because local delivery already happened under the
// job's lock.
package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/ports"
)

// Channel is the Postgres notification channel job changes travel on.
const Channel = "printflow_job_changes"

// envelope is the wire format of one change notification. Enumerations
// travel as their wire names; From is empty on creation. The envelope
// carries the job's descriptive fields so receiving instances can fan out
// without a database read.
type envelope struct {
	Origin        string    `json:"origin"`
	JobID         string    `json:"job_id"`
	MachineType   string    `json:"machine_type"`
	OwnerID       string    `json:"owner_id"`
	AttachmentRef string    `json:"attachment_ref,omitempty"`
	From          string    `json:"from,omitempty"`
	To            string    `json:"to"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func encodeChange(origin string, change ports.JobChange) ([]byte, error) {
	env := envelope{
		Origin:        origin,
		JobID:         change.JobID.String(),
		MachineType:   change.MachineType.String(),
		OwnerID:       change.OwnerID.String(),
		AttachmentRef: change.AttachmentRef,
		To:            change.To.String(),
		CreatedAt:     change.CreatedAt,
		UpdatedAt:     change.UpdatedAt,
	}
	if change.From != nil {
		env.From = change.From.String()
	}

	return json.Marshal(env)
}

func decodeChange(payload []byte) (origin string, change ports.JobChange, err error) {
	var env envelope
	if err = json.Unmarshal(payload, &env); err != nil {
		return "", ports.JobChange{}, fmt.Errorf("malformed change envelope: %w", err)
	}

	jobID, err := kernel.UUIDFromString(env.JobID)
	if err != nil {
		return "", ports.JobChange{}, err
	}

	ownerID, err := kernel.UUIDFromString(env.OwnerID)
	if err != nil {
		return "", ports.JobChange{}, err
	}

	machineType, err := actor.MachineTypeFromString(env.MachineType)
	if err != nil {
		return "", ports.JobChange{}, err
	}

	to, err := job.StatusFromString(env.To)
	if err != nil {
		return "", ports.JobChange{}, err
	}

	change = ports.JobChange{
		JobID:         jobID,
		MachineType:   machineType,
		OwnerID:       ownerID,
		AttachmentRef: env.AttachmentRef,
		To:            to,
		CreatedAt:     env.CreatedAt,
		UpdatedAt:     env.UpdatedAt,
	}
	if env.From != "" {
		from, fromErr := job.StatusFromString(env.From)
		if fromErr != nil {
			return "", ports.JobChange{}, fromErr
		}
		change.From = &from
	}

	return env.Origin, change, nil
}
