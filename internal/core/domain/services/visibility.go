package services

import (
	"sort"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
)

// Visibility is the result of evaluating the filter for one (actor, job)
// pair: whether the job is visible at all, and which target statuses the
// actor may move it to from its current state.
type Visibility struct {
	Visible bool
	Actions []job.Status
}

// VisibilityFilter decides which jobs a role sees and which transitions it
// may initiate on them. Like the TransitionValidator it is pure: the result
// is a deterministic function of the actor and the job snapshot.
//
// The rules, first match wins:
//   - admin: every job is visible, every transition from the current status
//     is available
//   - preparer: own jobs only, and only while in in_progress or
//     needs_revision
//   - printer operator: jobs of the operator's machine type in in_progress,
//     ready_for_print, printing, or printed (read access extends one state
//     around write access to show context)
//   - delivery agent: jobs in printed, ready_for_delivery, delivering, or
//     delivered
type VisibilityFilter struct{}

// NewVisibilityFilter creates a VisibilityFilter.
func NewVisibilityFilter() *VisibilityFilter {
	return &VisibilityFilter{}
}

// Evaluate computes the visibility of the job for the actor.
// For invisible jobs the action set is always empty.
func (f *VisibilityFilter) Evaluate(a actor.Actor, j *job.Job) Visibility {
	if a.Validate() != nil || j.Validate() != nil {
		return Visibility{}
	}

	if !f.visible(a, j) {
		return Visibility{}
	}

	return Visibility{
		Visible: true,
		Actions: f.actions(a, j),
	}
}

func (f *VisibilityFilter) visible(a actor.Actor, j *job.Job) bool {
	switch a.Role() {
	case actor.RoleAdmin:
		return true

	case actor.RolePreparer:
		return j.OwnerID().IsEqual(a.ID()) &&
			statusIn(j.Status(), job.InProgress, job.NeedsRevision)

	case actor.RolePrinterOperator:
		return a.OperatesMachine(j.MachineType()) &&
			statusIn(j.Status(), job.InProgress, job.ReadyForPrint, job.Printing, job.Printed)

	case actor.RoleDeliveryAgent:
		return statusIn(j.Status(), job.Printed, job.ReadyForDelivery, job.Delivering, job.Delivered)
	}

	return false
}

// actions intersects the transition table's rows leaving the job's current
// status with the actor's role (and machine type for operators).
func (f *VisibilityFilter) actions(a actor.Actor, j *job.Job) []job.Status {
	seen := make(map[job.Status]bool)
	var actions []job.Status

	for _, rule := range job.RulesFrom(j.Status()) {
		if !rule.Allows(a.Role()) {
			continue
		}
		if !seen[rule.To] {
			seen[rule.To] = true
			actions = append(actions, rule.To)
		}
	}

	sort.Slice(actions, func(i, k int) bool { return actions[i] < actions[k] })
	return actions
}

func statusIn(s job.Status, set ...job.Status) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}
