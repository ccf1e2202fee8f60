package realtime

import (
	"sync"
)

// Registry tracks the live subscriptions of one service instance.
// Safe for concurrent use; fan-out iterates over a snapshot so a slow
// delivery never blocks subscribe and unsubscribe.
type Registry struct {
	mu   sync.RWMutex
	subs map[string]Subscription
}

// NewRegistry creates an empty subscription registry.
func NewRegistry() *Registry {
	return &Registry{
		subs: make(map[string]Subscription),
	}
}

// Add registers a subscription, replacing any previous subscription with
// the same connection id.
func (r *Registry) Add(sub Subscription) error {
	if err := sub.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.ConnectionID] = sub
	return nil
}

// Remove drops the subscription for the given connection id.
// Removing an unknown id is a no-op.
func (r *Registry) Remove(connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subs, connectionID)
}

// Snapshot returns a copy of the current subscriptions.
func (r *Registry) Snapshot() []Subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := make([]Subscription, 0, len(r.subs))
	for _, sub := range r.subs {
		subs = append(subs, sub)
	}
	return subs
}

// Len returns the number of live subscriptions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}
