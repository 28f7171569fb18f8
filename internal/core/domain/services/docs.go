// Package services provides domain services that implement business logic
// spanning multiple domain entities. It implements behavior that doesn't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - TransitionGraph: the validation oracle over the item state edge set
//
// Domain services coordinate between aggregates following Domain-Driven
// Design principles.
package services
