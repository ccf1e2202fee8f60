// Package services provides domain services for the printflow workflow:
// pure decision functions that span the Job aggregate and the Actor model
// without naturally belonging to either.
//
// The package includes:
//   - TransitionValidator: Decides whether an actor may move a job along a
//     requested lifecycle edge, reporting the distinct rejection kind
//     (invalid transition, wrong machine type, comment required, not
//     authorized) rather than a single generic error
//   - VisibilityFilter: Decides whether a role sees a job in its current
//     state and which transitions that role may initiate on it
//
// Both services are stateless and side-effect free: evaluating them twice
// with the same inputs yields the same result, which is what allows the
// fan-out engine to re-evaluate visibility per subscriber on every accepted
// transition.
package services
