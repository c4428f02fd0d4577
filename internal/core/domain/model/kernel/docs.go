// Package kernel contains shared value objects used across the domain model.
// These are the building blocks that aggregates compose: geographic locations
// with validated coordinate ranges. Value objects in this package are
// immutable and can only be created through their constructor functions.
package kernel
