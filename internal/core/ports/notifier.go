package ports

import (
	"context"
	"time"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
)

// JobChange describes a committed change to a job. From is nil when the
// change is the creation of the job. It carries enough of the job's state
// for subscribers to evaluate visibility without a database read.
type JobChange struct {
	JobID         kernel.UUID
	MachineType   actor.MachineType
	OwnerID       kernel.UUID
	AttachmentRef string
	From          *job.Status
	To            job.Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ChangeNotifier announces committed job changes to interested parties.
// Implementations fan the change out to connected clients on this instance
// and relay it to other instances of the service.
type ChangeNotifier interface {
	NotifyJobChanged(ctx context.Context, change JobChange) error
}

// Transport pushes an already rendered event payload to a single connected
// client. Implementations must not block indefinitely; a client that cannot
// be reached results in an error and the payload is dropped for that client.
type Transport interface {
	Deliver(connectionID string, payload []byte) error
}
