// Package realtime fans committed job changes out to connected clients.
// Every subscriber receives a view computed for its own actor: the same
// change can render as an update for one connection, a removal for another,
// and nothing at all for a third.
package realtime

import (
	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
)

// Subscription is one connected client's standing interest in job changes.
// RoleRoom subscribes to the actor's whole visible set; JobIDs register
// additional per-job interests on the same connection. A connection can
// hold either kind alone or both at once; a subscription without the role
// room and without job interests routes nothing and is rejected.
type Subscription struct {
	ConnectionID string
	Actor        actor.Actor
	RoleRoom     bool
	JobIDs       []kernel.UUID
}

// Validate checks the subscription is complete enough to route events to.
func (s Subscription) Validate() error {
	if s.ConnectionID == "" {
		return errs.NewValueIsRequiredError("connectionID")
	}
	if err := s.Actor.Validate(); err != nil {
		return err
	}
	if !s.RoleRoom && len(s.JobIDs) == 0 {
		return errs.NewValueIsRequiredError("roleRoom or jobIDs")
	}
	for _, jobID := range s.JobIDs {
		if err := jobID.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// WantsJob reports whether events about the given job match one of this
// subscription's interests.
func (s Subscription) WantsJob(jobID kernel.UUID) bool {
	if s.RoleRoom {
		return true
	}
	for _, watched := range s.JobIDs {
		if watched.IsEqual(jobID) {
			return true
		}
	}
	return false
}
