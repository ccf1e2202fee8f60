package job

import (
	"fmt"
	"sort"

	"printflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a print-production job.
// It is a closed enumeration; the legal movements between values are defined
// by the transition table in this package.
//
// Lifecycle (simplified, role guards omitted):
//
//	in_progress ──> ready_for_print ──> printing ──> printed ──> ready_for_delivery
//	     ^                                  │            │
//	     └── needs_revision <───────────────┘            └──> ... ──> delivered ──> closed
//
// Closed is the single terminal state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// InProgress is the initial status: the preparer is assembling the job.
	InProgress

	// NeedsRevision means the job was sent back to the preparer with a
	// mandatory comment explaining what must change.
	NeedsRevision

	// ReadyForPrint means preparation is complete and the job awaits its
	// printer machine.
	ReadyForPrint

	// Printing means a printer operator is producing the job.
	Printing

	// Printed means production finished and the job awaits handover to delivery.
	Printed

	// ReadyForDelivery means the job is packed and awaits a delivery agent.
	ReadyForDelivery

	// Delivering means a delivery agent is transporting the job.
	Delivering

	// Delivered means the job reached its recipient.
	Delivered

	// Closed is the terminal state; no further transitions are possible.
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "unknown",
		InProgress:       "in_progress",
		NeedsRevision:    "needs_revision",
		ReadyForPrint:    "ready_for_print",
		Printing:         "printing",
		Printed:          "printed",
		ReadyForDelivery: "ready_for_delivery",
		Delivering:       "delivering",
		Delivered:        "delivered",
		Closed:           "closed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		InProgress:       "in_progress",
		NeedsRevision:    "needs_revision",
		ReadyForPrint:    "ready_for_print",
		Printing:         "printing",
		Printed:          "printed",
		ReadyForDelivery: "ready_for_delivery",
		Delivering:       "delivering",
		Delivered:        "delivered",
		Closed:           "closed",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status (e.g. "ready_for_print"),
// or "unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire name back into a Status.
// Returns an error for names outside the closed enumeration.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Closed
}

// ActiveStatuses returns every non-terminal status in ascending order.
// Jobs in one of these states can still move, so they are the ones worth
// watching for staleness.
func ActiveStatuses() []Status {
	active := make([]Status, 0, len(getValidStatusStrings()))
	for status := range getValidStatusStrings() {
		if status.IsTerminal() {
			continue
		}
		active = append(active, status)
	}
	sort.Slice(active, func(i, j int) bool { return active[i] < active[j] })
	return active
}
