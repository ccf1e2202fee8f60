// Package job provides the Job aggregate root for the printflow domain:
// one print-production order tracked through its lifecycle from preparation
// to delivery and closure.
//
// The package includes:
//   - Job: The aggregate root holding identity, machine type, ownership, and status
//   - Status: A closed enumeration of lifecycle states with a single terminal state
//   - The transition table: every legal (from, to) edge with its allowed roles
//     and guard conditions, including the admin escape valve to needs_revision
//
// Key business rules:
//   - A job's machine type and owner are set at creation and never change
//   - Status changes only through edges present in the transition table
//   - There are no self-loop edges; re-applying the current status is invalid
//   - Closed is terminal: no edge leaves it
//   - Every edge into needs_revision carries a mandatory comment
//
// Role and machine-type enforcement for a concrete caller is performed by the
// domain services on top of the table exposed here; the aggregate itself only
// guarantees that its status walks the table.
package job
