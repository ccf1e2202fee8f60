package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/transition"
	"printflow/internal/core/ports"
)

func TestCreateJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	preparer := mustActor(t, actor.RolePreparer, actor.MachineTypeUnknown)
	jobID := kernel.NewUUID()

	cmd, err := commands.NewCreateJobCommand(jobID, preparer, actor.MachineTypeA, "blob://artwork/1")
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Add", mock.Anything, mock.MatchedBy(func(aggregate *job.Job) bool {
			return aggregate.ID().IsEqual(jobID) &&
				aggregate.Status() == job.InProgress &&
				aggregate.OwnerID().IsEqual(preparer.ID())
		})).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("Append", mock.Anything, mock.MatchedBy(func(record transition.Record) bool {
			return record.IsCreation() && record.To() == job.InProgress
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyJobChanged", mock.Anything, mock.MatchedBy(func(change ports.JobChange) bool {
		return change.JobID.IsEqual(jobID) && change.From == nil && change.To == job.InProgress
	})).Return(nil).Once()

	h := commands.NewCreateJobCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	jobRepo.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateJobCommandHandler_Handle_RoleCannotCreate(t *testing.T) {
	ctx := t.Context()

	for _, role := range []actor.Role{actor.RolePrinterOperator, actor.RoleDeliveryAgent} {
		t.Run(role.String(), func(t *testing.T) {
			machineType := actor.MachineTypeUnknown
			if role == actor.RolePrinterOperator {
				machineType = actor.MachineTypeA
			}
			requester := mustActor(t, role, machineType)

			cmd, err := commands.NewCreateJobCommand(
				kernel.NewUUID(), requester, actor.MachineTypeA, "")
			require.NoError(t, err)

			h := commands.NewCreateJobCommandHandler(new(MockUoWFactory), new(MockNotifier))
			err = h.Handle(ctx, cmd)

			require.ErrorIs(t, err, commands.ErrRoleCannotCreateJobs)
		})
	}
}

func TestCreateJobCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateJobCommand{} // not constructed properly

	h := commands.NewCreateJobCommandHandler(new(MockUoWFactory), new(MockNotifier))
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
