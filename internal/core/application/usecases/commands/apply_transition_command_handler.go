package commands

import (
	"context"
	"errors"
	"time"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/transition"
	"printflow/internal/core/domain/services"
	"printflow/internal/core/ports"
	"printflow/internal/pkg/keylock"
)

// ErrConcurrentModification is returned when another request holds the
// job's lock for the whole acquisition budget. The client should retry.
var ErrConcurrentModification = errors.New("job is being modified concurrently")

// ApplyTransitionCommandHandler orchestrates a job status change.
// Requests for the same job are serialized through a keyed lock, the guard
// chain runs against the job's current state, and the new status together
// with its ledger record is committed atomically. The change announcement
// goes out while the lock is still held, so per-job event order matches
// commit order.
//
// Example:
//
//	handler := NewApplyTransitionCommandHandler(uowFactory, locks, notifier)
//	record, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrConcurrentModification):
//	    // ask the client to retry
//	case errors.Is(err, job.ErrInvalidTransition):
//	    // edge does not exist
//	case err != nil:
//	    // other failure
//	}
type ApplyTransitionCommandHandler struct {
	uowFactory UoWFactory
	locks      *keylock.KeyedMutex
	notifier   ports.ChangeNotifier
	validator  *services.TransitionValidator
	visibility *services.VisibilityFilter
}

// NewApplyTransitionCommandHandler creates a handler for transition operations.
func NewApplyTransitionCommandHandler(
	uowFactory UoWFactory,
	locks *keylock.KeyedMutex,
	notifier ports.ChangeNotifier,
) ApplyTransitionCommandHandler {
	return ApplyTransitionCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		notifier:   notifier,
		validator:  services.NewTransitionValidator(),
		visibility: services.NewVisibilityFilter(),
	}
}

// Handle processes the transition command.
//
// The guard chain runs in a fixed order so a request failing several guards
// reports a stable error: machine type first, then visibility, then the
// transition table with role and comment checks. The job row and the ledger
// record are written in one transaction. On success the committed ledger
// record is returned so callers can echo the applied change.
func (h ApplyTransitionCommandHandler) Handle(
	ctx context.Context, cmd ApplyTransitionCommand,
) (transition.Record, error) {
	if err := cmd.Validate(); err != nil {
		return transition.Record{}, err
	}

	release, err := h.locks.Acquire(ctx, cmd.JobID().String())
	if err != nil {
		if errors.Is(err, keylock.ErrLockNotAcquired) {
			return transition.Record{}, ErrConcurrentModification
		}
		return transition.Record{}, err
	}
	defer release()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return transition.Record{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.JobRepository().Get(ctx, cmd.JobID())
	if err != nil {
		return transition.Record{}, err
	}

	requester := cmd.Requester()

	if requester.Role() == actor.RolePrinterOperator &&
		!requester.OperatesMachine(aggregate.MachineType()) {
		return transition.Record{}, job.NewWrongMachineTypeError(aggregate.MachineType(), requester.MachineType())
	}

	if !h.visibility.Evaluate(requester, aggregate).Visible {
		return transition.Record{}, services.NewNotAuthorizedForJobError(requester.ID(), aggregate.ID())
	}

	if err = h.validator.Validate(requester, aggregate, cmd.To(), cmd.Comment()); err != nil {
		return transition.Record{}, err
	}

	now := time.Now().UTC()
	from := aggregate.Status()

	if err = aggregate.MoveTo(cmd.To(), now); err != nil {
		return transition.Record{}, err
	}

	record, err := transition.NewRecord(
		cmd.JobID(), &from, cmd.To(), requester.ID(), requester.Role(), cmd.Comment(), now)
	if err != nil {
		return transition.Record{}, err
	}

	if err = uow.JobRepository().Update(ctx, aggregate); err != nil {
		return transition.Record{}, err
	}

	if err = uow.LedgerRepository().Append(ctx, record); err != nil {
		return transition.Record{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return transition.Record{}, err
	}

	// Announced under the job's lock, so subscribers observe changes to one
	// job in commit order. Delivery failures never fail the command.
	_ = h.notifier.NotifyJobChanged(ctx, ports.JobChange{
		JobID:         aggregate.ID(),
		MachineType:   aggregate.MachineType(),
		OwnerID:       aggregate.OwnerID(),
		AttachmentRef: aggregate.AttachmentRef(),
		From:          &from,
		To:            cmd.To(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	})

	return record, nil
}
