// Package ports defines the persistence contracts between the dispatch core
// and its storage adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for request aggregates.
//
// The locking methods acquire exclusive row locks that live for the duration
// of the surrounding unit of work; every precondition check in the Transition
// Engine runs against state read under such a lock, never against a value
// read before locking. Callers must lock the request row before any driver
// row they intend to touch in the same unit of work.
type RequestRepository interface {
	// Add persists a new request aggregate and assigns its storage identity.
	Add(ctx context.Context, aggregate *request.Request) error

	// Update persists changes to an existing request aggregate, including
	// clearing the driver and vehicle bindings.
	Update(ctx context.Context, aggregate *request.Request) error

	// UpdateWithStatusGuard persists changes to an existing request only if
	// its stored status still equals expected. Zero affected rows is
	// reported as a ConflictError carrying the expected status. The row lock
	// is the primary correctness mechanism; this guard is a secondary check
	// against skew between a cached read and a truly stale row.
	UpdateWithStatusGuard(ctx context.Context, aggregate *request.Request, expected request.Status) error

	// Get retrieves a request by id without locking. Used for response
	// construction after the unit of work has committed.
	Get(ctx context.Context, id int64) (*request.Request, error)

	// GetForUpdate retrieves a request by id under an exclusive row lock,
	// blocking until any concurrent unit of work holding the lock ends.
	GetForUpdate(ctx context.Context, id int64) (*request.Request, error)

	// GetFirstUnassignedPendingForUpdate retrieves the lowest-id pending
	// request with no driver bound, under an exclusive row lock. Returns an
	// ObjectNotFoundError when no such request exists. Used by the
	// assignment sweep.
	GetFirstUnassignedPendingForUpdate(ctx context.Context) (*request.Request, error)
}
