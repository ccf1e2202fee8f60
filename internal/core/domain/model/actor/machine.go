package actor

import (
	"fmt"

	"printflow/internal/pkg/errs"
)

// MachineType identifies which printer machine a job is produced on, and
// which machine a printer operator is assigned to. A job's machine type is
// set at creation and never changes; only an operator of the matching type
// may act on the job's printing stages.
type MachineType int

const (
	// MachineTypeUnknown represents an invalid or undefined machine type.
	// It is also the value carried by actors whose role has no machine.
	MachineTypeUnknown MachineType = iota

	// MachineTypeA is the first printer machine class.
	MachineTypeA

	// MachineTypeB is the second printer machine class.
	MachineTypeB
)

func getMachineTypeStrings() map[MachineType]string {
	return map[MachineType]string{
		MachineTypeUnknown: "unknown",
		MachineTypeA:       "type_a",
		MachineTypeB:       "type_b",
	}
}

func getValidMachineTypeStrings() map[MachineType]string {
	//nolint:exhaustive // MachineTypeUnknown is intentionally excluded as it's invalid
	return map[MachineType]string{
		MachineTypeA: "type_a",
		MachineTypeB: "type_b",
	}
}

// Validate checks if the MachineType value is valid.
// MachineTypeUnknown (0) and any other values are invalid.
func (m MachineType) Validate() error {
	if _, ok := getValidMachineTypeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("machineType", fmt.Errorf("%d is not a valid machine type", m))
	}
	return nil
}

// String returns the wire name of the machine type ("type_a", "type_b"),
// or "unknown" for invalid values.
func (m MachineType) String() string {
	if str, ok := getMachineTypeStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// MachineTypeFromString parses a wire name back into a MachineType.
func MachineTypeFromString(s string) (MachineType, error) {
	for machine, name := range getValidMachineTypeStrings() {
		if name == s {
			return machine, nil
		}
	}
	return MachineTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"machineType",
		fmt.Errorf("%q is not a valid machine type", s),
	)
}
