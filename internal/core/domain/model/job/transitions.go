package job

import "printflow/internal/core/domain/model/actor"

// Rule describes one edge of the job lifecycle: which status change it
// performs, which roles may initiate it, and whether a comment is mandatory.
//
// Machine-type enforcement is not part of the rule itself: whenever the
// acting role is a printer operator, the operator's machine type must match
// the job's. That check is applied by the transition validator service.
type Rule struct {
	From            Status
	To              Status
	Roles           []actor.Role
	RequiresComment bool
}

// transitionTable is the closed set of legal lifecycle edges.
// The admin escape valve (any non-terminal status to needs_revision, comment
// mandatory) is appended programmatically so the explicit rows stay readable.
var transitionTable = buildTransitionTable()

func buildTransitionTable() []Rule {
	rules := []Rule{
		{From: InProgress, To: NeedsRevision, Roles: []actor.Role{actor.RolePrinterOperator}, RequiresComment: true},
		{From: InProgress, To: ReadyForPrint, Roles: []actor.Role{actor.RolePreparer, actor.RoleAdmin}},
		{From: NeedsRevision, To: InProgress, Roles: []actor.Role{actor.RolePreparer, actor.RoleAdmin}},
		{From: ReadyForPrint, To: Printing, Roles: []actor.Role{actor.RolePrinterOperator}},
		{From: Printing, To: Printed, Roles: []actor.Role{actor.RolePrinterOperator}},
		{From: Printing, To: NeedsRevision, Roles: []actor.Role{actor.RolePrinterOperator}, RequiresComment: true},
		{From: Printed, To: ReadyForDelivery, Roles: []actor.Role{actor.RoleAdmin, actor.RolePrinterOperator}},
		{From: ReadyForDelivery, To: Delivering, Roles: []actor.Role{actor.RoleDeliveryAgent}},
		{From: Delivering, To: Delivered, Roles: []actor.Role{actor.RoleDeliveryAgent}},
		{From: Delivered, To: Closed, Roles: []actor.Role{actor.RoleAdmin}},
	}

	// Admin escape valve: any non-terminal status except needs_revision itself
	// can be forced back to needs_revision with a mandatory comment.
	for from := range getValidStatusStrings() {
		if from.IsTerminal() || from == NeedsRevision {
			continue
		}
		rules = append(rules, Rule{
			From:            from,
			To:              NeedsRevision,
			Roles:           []actor.Role{actor.RoleAdmin},
			RequiresComment: true,
		})
	}

	return rules
}

// RulesFor returns every rule for the (from, to) pair. An empty result means
// the pair is not a legal edge. A pair can carry more than one rule when the
// escape valve overlaps an explicit operator edge.
func RulesFor(from, to Status) []Rule {
	var matched []Rule
	for _, rule := range transitionTable {
		if rule.From == from && rule.To == to {
			matched = append(matched, rule)
		}
	}
	return matched
}

// RulesFrom returns every rule leaving the given status.
// Used to compute the action set a role may perform on a job.
func RulesFrom(from Status) []Rule {
	var matched []Rule
	for _, rule := range transitionTable {
		if rule.From == from {
			matched = append(matched, rule)
		}
	}
	return matched
}

// Allows reports whether the given role may initiate this rule.
// Admin may initiate every edge in the table.
func (r Rule) Allows(role actor.Role) bool {
	if role == actor.RoleAdmin {
		return true
	}
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}
