// Package actor provides the identity and role model for callers of the
// printflow core. An Actor is the already-verified identity supplied by the
// external identity provider: an id, one of a closed set of roles, and, for
// printer operators, the machine type they operate.
//
// The package includes:
//   - Role: A closed enumeration of the roles in the production workflow
//   - MachineType: The printer machine enumeration (type A or type B)
//   - Actor: A value object combining id, role, and machine type
//
// Role checks throughout the system are performed against this enumeration,
// never against free-form strings.
package actor
