// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"printflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to the job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// LedgerRepoFactory provides access to the ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// UoW manages transactions spanning the job aggregate and its ledger.
	// Every state change writes both in the same transaction, so there is no
	// narrower unit of work.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   jobRepo := uow.JobRepository()
	//   ledgerRepo := uow.LedgerRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		JobRepoFactory
		LedgerRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
