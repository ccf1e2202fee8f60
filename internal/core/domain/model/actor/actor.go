package actor

import (
	"errors"
	"fmt"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory function.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the verified identity of a caller: who they are, which role they
// hold, and, for printer operators, which machine they operate.
//
// Actor follows these invariants:
//   - Must have a valid unique identifier
//   - Must hold one of the closed set of roles
//   - Printer operators must carry a valid machine type
//   - Non-operator roles never carry a machine type
//
// Actor is a value object: it is immutable after construction and safe to
// copy and share between goroutines.
type Actor struct {
	// id is the unique identifier supplied by the identity provider
	id kernel.UUID

	// role is the workflow role of this actor
	role Role

	// machineType is set only for printer operators
	machineType MachineType

	// isConstructed ensures the actor was created via NewActor
	isConstructed bool
}

// NewActor creates a new Actor with validation. Printer operators must supply
// a valid machine type; every other role must pass MachineTypeUnknown.
//
// Example:
//
//	operator, err := actor.NewActor(kernel.NewUUID(), actor.RolePrinterOperator, actor.MachineTypeA)
//	admin, err := actor.NewActor(kernel.NewUUID(), actor.RoleAdmin, actor.MachineTypeUnknown)
func NewActor(id kernel.UUID, role Role, machineType MachineType) (Actor, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return Actor{}, err
	}

	if role == RolePrinterOperator {
		if err := machineType.Validate(); err != nil {
			return Actor{}, errs.NewValueIsRequiredErrorWithCause("machineType", err)
		}
	} else if machineType != MachineTypeUnknown {
		return Actor{}, errs.NewValueIsInvalidErrorWithCause(
			"machineType",
			fmt.Errorf("role %s does not operate a machine", role),
		)
	}

	return Actor{
		id:            id,
		role:          role,
		machineType:   machineType,
		isConstructed: true,
	}, nil
}

// Validate ensures the Actor instance was properly constructed through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's unique identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's workflow role.
func (a Actor) Role() Role {
	return a.role
}

// MachineType returns the machine the actor operates.
// For non-operator roles this is MachineTypeUnknown.
func (a Actor) MachineType() MachineType {
	return a.machineType
}

// OperatesMachine reports whether the actor is a printer operator assigned
// to the given machine type.
func (a Actor) OperatesMachine(machineType MachineType) bool {
	return a.role == RolePrinterOperator && a.machineType == machineType
}

// IsEqual compares two actors by their unique identifiers.
func (a Actor) IsEqual(other Actor) bool {
	return a.id.IsEqual(other.id)
}
