package ports

import (
	"context"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/transition"
)

// LedgerRepository defines the persistence contract for the append-only
// transition ledger. Records are never updated or deleted.
type LedgerRepository interface {
	// Append persists a new transition record. Implementations must verify
	// that the record chains onto the latest stored record for the same job
	// and reject any record that would break the sequence.
	Append(ctx context.Context, record transition.Record) error

	// GetByJob retrieves the full history for a job ordered from the
	// creation record to the most recent transition.
	GetByJob(ctx context.Context, jobID kernel.UUID) ([]transition.Record, error)
}
