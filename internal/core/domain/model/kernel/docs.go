// Package kernel contains the shared value objects of the domain model:
// identifiers and money. These types are immutable, validated at construction,
// and safe for concurrent use. Aggregates across the model build on them to
// keep identity and monetary arithmetic consistent.
package kernel
