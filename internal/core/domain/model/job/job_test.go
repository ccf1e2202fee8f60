package job_test

import (
	"testing"
	"time"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJob(t *testing.T) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), actor.MachineTypeA, kernel.NewUUID(), "blob-ref", time.Now())
	require.NoError(t, err)
	return j
}

func TestNewJob(t *testing.T) {
	t.Run("valid job starts in in_progress", func(t *testing.T) {
		id := kernel.NewUUID()
		owner := kernel.NewUUID()
		createdAt := time.Now()

		j, err := job.NewJob(id, actor.MachineTypeB, owner, "ref-1", createdAt)

		require.NoError(t, err)
		assert.True(t, j.ID().IsEqual(id))
		assert.Equal(t, actor.MachineTypeB, j.MachineType())
		assert.True(t, j.OwnerID().IsEqual(owner))
		assert.Equal(t, "ref-1", j.AttachmentRef())
		assert.Equal(t, job.InProgress, j.Status())
		assert.Equal(t, createdAt, j.CreatedAt())
		assert.Equal(t, createdAt, j.UpdatedAt())
		require.NoError(t, j.Validate())
	})

	t.Run("invalid id", func(t *testing.T) {
		var id kernel.UUID
		_, err := job.NewJob(id, actor.MachineTypeA, kernel.NewUUID(), "", time.Now())
		require.Error(t, err)
	})

	t.Run("invalid machine type", func(t *testing.T) {
		_, err := job.NewJob(kernel.NewUUID(), actor.MachineTypeUnknown, kernel.NewUUID(), "", time.Now())
		require.Error(t, err)
	})

	t.Run("zero created_at", func(t *testing.T) {
		_, err := job.NewJob(kernel.NewUUID(), actor.MachineTypeA, kernel.NewUUID(), "", time.Time{})
		require.Error(t, err)
	})
}

func TestRestoreJob(t *testing.T) {
	t.Run("restores mid-lifecycle status", func(t *testing.T) {
		j, err := job.RestoreJob(
			kernel.NewUUID(), actor.MachineTypeA, kernel.NewUUID(), "",
			job.Printing, time.Now().Add(-time.Hour), time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, job.Printing, j.Status())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := job.RestoreJob(
			kernel.NewUUID(), actor.MachineTypeA, kernel.NewUUID(), "",
			job.Unknown, time.Now(), time.Now(),
		)
		require.Error(t, err)
	})
}

func TestJob_Validate(t *testing.T) {
	t.Run("zero value job fails validation", func(t *testing.T) {
		var j job.Job
		require.ErrorIs(t, j.Validate(), job.ErrJobIsNotConstructed)
	})

	t.Run("nil job fails validation", func(t *testing.T) {
		var j *job.Job
		require.ErrorIs(t, j.Validate(), job.ErrJobIsNotConstructed)
	})
}

func TestJob_MoveTo(t *testing.T) {
	t.Run("valid edge updates status and updatedAt once", func(t *testing.T) {
		j := newTestJob(t)
		at := time.Now().Add(time.Minute)

		require.NoError(t, j.MoveTo(job.ReadyForPrint, at))

		assert.Equal(t, job.ReadyForPrint, j.Status())
		assert.Equal(t, at, j.UpdatedAt())
	})

	t.Run("same status is rejected", func(t *testing.T) {
		j := newTestJob(t)

		err := j.MoveTo(job.InProgress, time.Now())

		require.ErrorIs(t, err, job.ErrInvalidTransition)
		assert.Equal(t, job.InProgress, j.Status())
	})

	t.Run("missing edge is rejected and names the pair", func(t *testing.T) {
		j := newTestJob(t)

		err := j.MoveTo(job.Delivered, time.Now())

		require.ErrorIs(t, err, job.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "in_progress")
		assert.Contains(t, err.Error(), "delivered")
	})

	t.Run("invalid target status is rejected", func(t *testing.T) {
		j := newTestJob(t)
		require.Error(t, j.MoveTo(job.Unknown, time.Now()))
	})

	t.Run("terminal status admits no moves", func(t *testing.T) {
		j, err := job.RestoreJob(
			kernel.NewUUID(), actor.MachineTypeA, kernel.NewUUID(), "",
			job.Closed, time.Now(), time.Now(),
		)
		require.NoError(t, err)

		require.ErrorIs(t, j.MoveTo(job.NeedsRevision, time.Now()), job.ErrInvalidTransition)
	})
}

func TestJob_RequiresRevisionComment(t *testing.T) {
	j := newTestJob(t)
	assert.False(t, j.RequiresRevisionComment())

	require.NoError(t, j.MoveTo(job.NeedsRevision, time.Now()))
	assert.True(t, j.RequiresRevisionComment())
}
