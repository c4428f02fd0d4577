package ports

import (
	"context"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/driver"
)

// DriverRepository defines the persistence contract for driver aggregates.
//
// Availability is mutated only by the Transition Engine and the assignment
// engine, always inside the same unit of work as the request mutation that
// caused it, with the driver row locked after the request row.
type DriverRepository interface {
	// Add persists a new driver aggregate and assigns its storage identity.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by id without locking.
	Get(ctx context.Context, id int64) (*driver.Driver, error)

	// GetForUpdate retrieves a driver by id under an exclusive row lock.
	GetForUpdate(ctx context.Context, id int64) (*driver.Driver, error)

	// LockFirstAvailable retrieves one driver whose status is available
	// under an exclusive row lock, optionally excluding a specific id
	// (used after a rejection so the rejecting driver is not rebound).
	// Tie-break is deterministic: the lowest id wins. Returns an
	// ObjectNotFoundError when no candidate exists.
	LockFirstAvailable(ctx context.Context, excludeID *int64) (*driver.Driver, error)
}
