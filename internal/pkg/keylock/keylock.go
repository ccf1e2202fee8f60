// Package keylock provides a keyed mutex with a bounded acquisition budget.
// It serializes work per key (printflow uses the job id) while leaving work
// on different keys fully parallel. Acquisition retries a small bounded
// number of times and then gives up, so a caller stuck behind a contended
// key surfaces a distinct error instead of waiting forever.
package keylock

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrLockNotAcquired is returned when the acquisition budget is exhausted.
var ErrLockNotAcquired = errors.New("lock not acquired within retry budget")

const (
	defaultAttempts  = 3
	defaultRetryWait = 200 * time.Millisecond
)

type lockEntry struct {
	sem  chan struct{}
	refs int
}

// KeyedMutex serializes callers per key. Entries are created on first use
// and removed once the last interested caller releases, so the map does not
// grow with the total number of keys ever seen.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*lockEntry

	attempts  int
	retryWait time.Duration
}

// New creates a KeyedMutex. Non-positive attempts or retryWait fall back to
// the defaults (3 attempts, 200ms each).
func New(attempts int, retryWait time.Duration) *KeyedMutex {
	if attempts <= 0 {
		attempts = defaultAttempts
	}
	if retryWait <= 0 {
		retryWait = defaultRetryWait
	}
	return &KeyedMutex{
		locks:     make(map[string]*lockEntry),
		attempts:  attempts,
		retryWait: retryWait,
	}
}

// Acquire takes the lock for key, waiting up to attempts × retryWait.
// On success it returns a release function that must be called exactly once.
// Returns ErrLockNotAcquired when the budget is exhausted, or the context
// error when ctx is done first.
func (m *KeyedMutex) Acquire(ctx context.Context, key string) (func(), error) {
	entry := m.retain(key)

	for attempt := 0; attempt < m.attempts; attempt++ {
		timer := time.NewTimer(m.retryWait)
		select {
		case entry.sem <- struct{}{}:
			timer.Stop()
			var once sync.Once
			return func() {
				once.Do(func() {
					<-entry.sem
					m.release(key)
				})
			}, nil
		case <-ctx.Done():
			timer.Stop()
			m.release(key)
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	m.release(key)
	return nil, ErrLockNotAcquired
}

func (m *KeyedMutex) retain(key string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.locks[key]
	if !ok {
		entry = &lockEntry{sem: make(chan struct{}, 1)}
		m.locks[key] = entry
	}
	entry.refs++
	return entry
}

func (m *KeyedMutex) release(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.locks[key]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, key)
	}
}
