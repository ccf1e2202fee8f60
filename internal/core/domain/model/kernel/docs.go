// Package kernel provides shared value objects for the printflow domain model.
// These are the building blocks used across aggregates: identifier types that
// carry their own validation and cannot be constructed in an invalid state.
//
// The package includes:
//   - UUID: An immutable identifier value object wrapping github.com/google/uuid
//
// Kernel types are deliberately free of any business rules; they only enforce
// structural validity so that aggregates can rely on their inputs being sound.
package kernel
