package queries

import (
	"errors"
	"time"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/guard"
)

var ErrGetPendingRequestsQueryIsNotConstructed = errors.New(
	"GetPendingRequestsQuery must be created via NewGetPendingRequestsQuery constructor",
)

// GetPendingRequestsQuery retrieves all requests still waiting for service,
// oldest first. Used by dispatch monitoring.
type GetPendingRequestsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingRequestsQuery creates a query to retrieve pending requests.
// This is a parameterless query.
func NewGetPendingRequestsQuery() GetPendingRequestsQuery {
	return GetPendingRequestsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingRequestsQueryIsNotConstructed if validation fails.
func (q GetPendingRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingRequestsQueryIsNotConstructed)
}

// GetPendingRequestsQueryResponse represents one pending request, including
// any tentative driver binding.
type GetPendingRequestsQueryResponse struct {
	ID              int64
	RequesterID     int64
	DriverID        *int64
	Kind            string
	PickupLatitude  float64
	PickupLongitude float64
	ScheduledTime   *time.Time
	CreatedAt       time.Time
}
