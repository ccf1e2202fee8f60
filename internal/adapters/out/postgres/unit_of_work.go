// Package postgres provides a GORM-based implementation of the Unit of Work
// pattern. A unit of work spans the job row and its ledger records: every
// accepted transition writes both inside one transaction, so the ledger can
// never disagree with the jobs table.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.JobRepository().Update(ctx, job); err != nil {
//	    return err
//	}
//	if err := uow.LedgerRepository().Append(ctx, record); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation gets a fresh unit of work instance; instances are
// not safe for concurrent use.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"printflow/internal/adapters/out/postgres/jobrepo"
	"printflow/internal/adapters/out/postgres/ledgerrepo"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/ports"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each Create() call returns an isolated instance.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Repositories obtained from it are bound
// to the active transaction, or to the main connection when no transaction
// has been started.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create
// nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// JobRepository returns a job repository bound to the current transaction
// if one is active, otherwise to the main database connection.
func (uow *GormUnitOfWork) JobRepository() ports.JobRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return jobrepo.NewGormJobRepository(db, uow)
}

// LedgerRepository returns a ledger repository bound to the current
// transaction if one is active, otherwise to the main database connection.
func (uow *GormUnitOfWork) LedgerRepository() ports.LedgerRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return ledgerrepo.NewGormLedgerRepository(db)
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by repository implementations when aggregates are added
// or updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
