// Package errs provides standardized error types for the printflow application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value lies outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Domain-specific error kinds (invalid transition, wrong machine type, missing
// revision comment, authorization failures) live next to the domain code that
// raises them and follow the same sentinel-plus-struct pattern. The distinct
// kinds are never collapsed into a single generic message; callers and the
// HTTP adapter classify them with errors.Is and render each one specifically.
package errs
