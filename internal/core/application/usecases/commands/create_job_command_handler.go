package commands

import (
	"context"
	"errors"
	"time"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/transition"
	"printflow/internal/core/ports"
)

// ErrRoleCannotCreateJobs is returned when the requester's role does not
// allow registering new jobs. Only preparers and admins create jobs.
var ErrRoleCannotCreateJobs = errors.New("role cannot create jobs")

// CreateJobCommandHandler handles the business logic for job creation.
// Persists the new job together with its creation ledger record in a single
// transaction and announces the change to connected clients.
type CreateJobCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.ChangeNotifier
}

// NewCreateJobCommandHandler creates a handler for job creation operations.
func NewCreateJobCommandHandler(uowFactory UoWFactory, notifier ports.ChangeNotifier) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the job creation command.
// The requester must be a preparer or an admin; the requester becomes the
// job's owner. Writes the job and the creation ledger record atomically.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	requester := cmd.Requester()
	if requester.Role() != actor.RolePreparer && requester.Role() != actor.RoleAdmin {
		return ErrRoleCannotCreateJobs
	}

	now := time.Now().UTC()

	aggregate, err := job.NewJob(cmd.JobID(), cmd.MachineType(), requester.ID(), cmd.AttachmentRef(), now)
	if err != nil {
		return err
	}

	record, err := transition.NewRecord(
		cmd.JobID(), nil, job.InProgress, requester.ID(), requester.Role(), nil, now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.JobRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.LedgerRepository().Append(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort: a client that cannot be reached never fails the command.
	_ = h.notifier.NotifyJobChanged(ctx, ports.JobChange{
		JobID:         aggregate.ID(),
		MachineType:   aggregate.MachineType(),
		OwnerID:       aggregate.OwnerID(),
		AttachmentRef: aggregate.AttachmentRef(),
		From:          nil,
		To:            job.InProgress,
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	})

	return nil
}
