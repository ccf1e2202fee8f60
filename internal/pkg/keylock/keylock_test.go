package keylock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printflow/internal/pkg/keylock"
)

func Test_KeyedMutex_SerializesSameKey(t *testing.T) {
	// Arrange
	m := keylock.New(10, 50*time.Millisecond)
	var counter, max int
	var mu sync.Mutex
	var wg sync.WaitGroup

	// Act
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := m.Acquire(context.Background(), "job-1")
			require.NoError(t, err)
			defer release()

			mu.Lock()
			counter++
			if counter > max {
				max = counter
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)

			mu.Lock()
			counter--
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Assert
	assert.Equal(t, 1, max)
}

func Test_KeyedMutex_IndependentKeysDoNotBlock(t *testing.T) {
	// Arrange
	m := keylock.New(1, 10*time.Millisecond)
	releaseA, err := m.Acquire(context.Background(), "job-a")
	require.NoError(t, err)
	defer releaseA()

	// Act
	releaseB, err := m.Acquire(context.Background(), "job-b")

	// Assert
	require.NoError(t, err)
	releaseB()
}

func Test_KeyedMutex_BudgetExhausted(t *testing.T) {
	// Arrange
	m := keylock.New(2, 5*time.Millisecond)
	release, err := m.Acquire(context.Background(), "job-1")
	require.NoError(t, err)
	defer release()

	// Act
	_, err = m.Acquire(context.Background(), "job-1")

	// Assert
	assert.ErrorIs(t, err, keylock.ErrLockNotAcquired)
}

func Test_KeyedMutex_ContextCancelled(t *testing.T) {
	// Arrange
	m := keylock.New(100, time.Second)
	release, err := m.Acquire(context.Background(), "job-1")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())

	// Act
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err = m.Acquire(ctx, "job-1")

	// Assert
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_KeyedMutex_ReleaseIsIdempotent(t *testing.T) {
	// Arrange
	m := keylock.New(3, 5*time.Millisecond)
	release, err := m.Acquire(context.Background(), "job-1")
	require.NoError(t, err)

	// Act
	release()
	release()

	// Assert
	next, err := m.Acquire(context.Background(), "job-1")
	require.NoError(t, err)
	next()
}
