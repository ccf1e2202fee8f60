package services_test

import (
	"testing"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibilityFilter_Admin(t *testing.T) {
	filter := services.NewVisibilityFilter()
	admin := mustActor(t, actor.RoleAdmin, actor.MachineTypeUnknown)

	t.Run("sees every status", func(t *testing.T) {
		for _, s := range []job.Status{
			job.InProgress, job.NeedsRevision, job.ReadyForPrint, job.Printing, job.Printed,
			job.ReadyForDelivery, job.Delivering, job.Delivered, job.Closed,
		} {
			j := mustJob(t, actor.MachineTypeA, s, kernel.NewUUID())
			assert.True(t, filter.Evaluate(admin, j).Visible, s.String())
		}
	})

	t.Run("gets every action from the current status", func(t *testing.T) {
		j := mustJob(t, actor.MachineTypeA, job.InProgress, kernel.NewUUID())

		vis := filter.Evaluate(admin, j)

		assert.ElementsMatch(t, []job.Status{job.NeedsRevision, job.ReadyForPrint}, vis.Actions)
	})

	t.Run("closed job has no actions", func(t *testing.T) {
		j := mustJob(t, actor.MachineTypeA, job.Closed, kernel.NewUUID())
		assert.Empty(t, filter.Evaluate(admin, j).Actions)
	})
}

func TestVisibilityFilter_Preparer(t *testing.T) {
	filter := services.NewVisibilityFilter()
	preparer := mustActor(t, actor.RolePreparer, actor.MachineTypeUnknown)

	t.Run("sees own job while preparing", func(t *testing.T) {
		own := mustJob(t, actor.MachineTypeA, job.InProgress, preparer.ID())

		vis := filter.Evaluate(preparer, own)

		require.True(t, vis.Visible)
		assert.Equal(t, []job.Status{job.ReadyForPrint}, vis.Actions)
	})

	t.Run("sees own job in needs_revision", func(t *testing.T) {
		own := mustJob(t, actor.MachineTypeA, job.NeedsRevision, preparer.ID())

		vis := filter.Evaluate(preparer, own)

		require.True(t, vis.Visible)
		assert.Equal(t, []job.Status{job.InProgress}, vis.Actions)
	})

	t.Run("does not see another preparer's job", func(t *testing.T) {
		foreign := mustJob(t, actor.MachineTypeA, job.InProgress, kernel.NewUUID())

		vis := filter.Evaluate(preparer, foreign)

		assert.False(t, vis.Visible)
		assert.Empty(t, vis.Actions)
	})

	t.Run("loses sight once the job leaves preparation", func(t *testing.T) {
		own := mustJob(t, actor.MachineTypeA, job.ReadyForPrint, preparer.ID())
		assert.False(t, filter.Evaluate(preparer, own).Visible)
	})
}

func TestVisibilityFilter_PrinterOperator(t *testing.T) {
	filter := services.NewVisibilityFilter()
	operatorA := mustActor(t, actor.RolePrinterOperator, actor.MachineTypeA)

	t.Run("sees matching-machine jobs across the print stages", func(t *testing.T) {
		for _, s := range []job.Status{job.InProgress, job.ReadyForPrint, job.Printing, job.Printed} {
			j := mustJob(t, actor.MachineTypeA, s, kernel.NewUUID())
			assert.True(t, filter.Evaluate(operatorA, j).Visible, s.String())
		}
	})

	t.Run("never sees jobs of the other machine", func(t *testing.T) {
		j := mustJob(t, actor.MachineTypeB, job.ReadyForPrint, kernel.NewUUID())
		assert.False(t, filter.Evaluate(operatorA, j).Visible)
	})

	t.Run("read access is wider than write access", func(t *testing.T) {
		// An operator sees in_progress jobs for context but cannot act on
		// them except sending them to revision.
		j := mustJob(t, actor.MachineTypeA, job.InProgress, kernel.NewUUID())

		vis := filter.Evaluate(operatorA, j)

		require.True(t, vis.Visible)
		assert.Equal(t, []job.Status{job.NeedsRevision}, vis.Actions)
	})

	t.Run("does not see delivery stages", func(t *testing.T) {
		j := mustJob(t, actor.MachineTypeA, job.Delivering, kernel.NewUUID())
		assert.False(t, filter.Evaluate(operatorA, j).Visible)
	})
}

func TestVisibilityFilter_DeliveryAgent(t *testing.T) {
	filter := services.NewVisibilityFilter()
	agent := mustActor(t, actor.RoleDeliveryAgent, actor.MachineTypeUnknown)

	t.Run("sees the delivery stages regardless of machine", func(t *testing.T) {
		for _, s := range []job.Status{job.Printed, job.ReadyForDelivery, job.Delivering, job.Delivered} {
			for _, m := range []actor.MachineType{actor.MachineTypeA, actor.MachineTypeB} {
				j := mustJob(t, m, s, kernel.NewUUID())
				assert.True(t, filter.Evaluate(agent, j).Visible, "%s on %s", s, m)
			}
		}
	})

	t.Run("does not see preparation or printing", func(t *testing.T) {
		for _, s := range []job.Status{job.InProgress, job.NeedsRevision, job.ReadyForPrint, job.Printing, job.Closed} {
			j := mustJob(t, actor.MachineTypeA, s, kernel.NewUUID())
			assert.False(t, filter.Evaluate(agent, j).Visible, s.String())
		}
	})

	t.Run("printed is visible but actionless for the agent", func(t *testing.T) {
		j := mustJob(t, actor.MachineTypeA, job.Printed, kernel.NewUUID())

		vis := filter.Evaluate(agent, j)

		require.True(t, vis.Visible)
		assert.Empty(t, vis.Actions)
	})
}

func TestVisibilityFilter_IsDeterministic(t *testing.T) {
	filter := services.NewVisibilityFilter()
	operator := mustActor(t, actor.RolePrinterOperator, actor.MachineTypeB)
	j := mustJob(t, actor.MachineTypeB, job.Printing, kernel.NewUUID())

	first := filter.Evaluate(operator, j)
	second := filter.Evaluate(operator, j)

	assert.Equal(t, first, second)
}

func TestVisibilityFilter_ZeroValues(t *testing.T) {
	filter := services.NewVisibilityFilter()

	var a actor.Actor
	j := mustJob(t, actor.MachineTypeA, job.InProgress, kernel.NewUUID())

	assert.False(t, filter.Evaluate(a, j).Visible)
}
