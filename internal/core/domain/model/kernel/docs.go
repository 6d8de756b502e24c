// Package kernel provides shared value objects used across the domain model:
// order identifiers, peso amounts with display formatting, and municipality
// slugs derived from city names.
//
// All types in this package are immutable value objects. Zero values are
// invalid and must be produced through the provided factory functions, which
// enforce the construction invariants.
package kernel
