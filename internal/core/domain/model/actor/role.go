package actor

import (
	"fmt"

	"printflow/internal/pkg/errs"
)

// Role represents the workflow role of an actor. It is a closed enumeration:
// every authorization decision in the system is made against these values.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin has full visibility over every job and every transition.
	RoleAdmin

	// RolePreparer creates jobs and reworks them after a revision request.
	RolePreparer

	// RolePrinterOperator runs the printing stages for one machine type.
	RolePrinterOperator

	// RoleDeliveryAgent handles the delivery stages of printed jobs.
	RoleDeliveryAgent
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:         "unknown",
		RoleAdmin:           "admin",
		RolePreparer:        "preparer",
		RolePrinterOperator: "printer_operator",
		RoleDeliveryAgent:   "delivery_agent",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:           "admin",
		RolePreparer:        "preparer",
		RolePrinterOperator: "printer_operator",
		RoleDeliveryAgent:   "delivery_agent",
	}
}

// Validate checks if the Role value is valid.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role ("admin", "preparer",
// "printer_operator", "delivery_agent"), or "unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// RoleFromString parses a wire name back into a Role.
// Returns an error for names outside the closed enumeration.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}
