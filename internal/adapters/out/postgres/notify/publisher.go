package notify

import (
	"context"
	"database/sql"

	"printflow/internal/core/ports"
)

// Publisher implements ports.ChangeNotifier by emitting a NOTIFY on the
// shared channel. Commands call it after commit, so listeners only ever see
// durable changes.
type Publisher struct {
	db     *sql.DB
	origin string
}

// NewPublisher creates a publisher stamping envelopes with this instance's
// origin id.
func NewPublisher(db *sql.DB, origin string) *Publisher {
	return &Publisher{
		db:     db,
		origin: origin,
	}
}

// NotifyJobChanged publishes the change to every listening instance.
func (p *Publisher) NotifyJobChanged(ctx context.Context, change ports.JobChange) error {
	payload, err := encodeChange(p.origin, change)
	if err != nil {
		return err
	}

	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", Channel, string(payload))
	return err
}
