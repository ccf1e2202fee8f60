// Package guard provides a constructor guard for commands and queries.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable, so objects that bypass their constructor fail validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value is invalid, which is the whole point: a struct
// built by hand instead of via its New* function fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor,
// otherwise the supplied validationError (or ErrDefaultConstructorGuard when
// validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
