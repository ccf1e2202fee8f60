package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/kernel"
)

func TestNewCreateJobCommand(t *testing.T) {
	preparer := mustActor(t, actor.RolePreparer, actor.MachineTypeUnknown)
	jobID := kernel.NewUUID()

	cmd, err := commands.NewCreateJobCommand(jobID, preparer, actor.MachineTypeB, "blob://artwork/7")

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.JobID().IsEqual(jobID))
	assert.Equal(t, actor.MachineTypeB, cmd.MachineType())
	assert.Equal(t, "blob://artwork/7", cmd.AttachmentRef())
}

func TestNewCreateJobCommand_EmptyAttachmentAllowed(t *testing.T) {
	preparer := mustActor(t, actor.RolePreparer, actor.MachineTypeUnknown)

	cmd, err := commands.NewCreateJobCommand(kernel.NewUUID(), preparer, actor.MachineTypeA, "")

	require.NoError(t, err)
	assert.Empty(t, cmd.AttachmentRef())
}

func TestNewCreateJobCommand_Invalid(t *testing.T) {
	preparer := mustActor(t, actor.RolePreparer, actor.MachineTypeUnknown)

	tests := []struct {
		name        string
		jobID       kernel.UUID
		requester   actor.Actor
		machineType actor.MachineType
	}{
		{"empty job id", kernel.UUID{}, preparer, actor.MachineTypeA},
		{"not constructed actor", kernel.NewUUID(), actor.Actor{}, actor.MachineTypeA},
		{"unknown machine type", kernel.NewUUID(), preparer, actor.MachineTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateJobCommand(tt.jobID, tt.requester, tt.machineType, "")
			require.Error(t, err)
		})
	}
}

func TestCreateJobCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateJobCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateJobCommandIsNotConstructed)
}
