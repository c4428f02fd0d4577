package queries

import (
	"errors"
	"time"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/guard"
)

var ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
	"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
)

// GetAvailableDriversQuery retrieves all drivers currently in the assignable
// pool.
type GetAvailableDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDriversQuery creates a query to retrieve available drivers.
// This is a parameterless query.
func NewGetAvailableDriversQuery() GetAvailableDriversQuery {
	return GetAvailableDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableDriversQueryIsNotConstructed if validation fails.
func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}

// GetAvailableDriversQueryResponse represents one available driver with
// their last reported position, when any.
type GetAvailableDriversQueryResponse struct {
	ID             int64
	VehicleID      *int64
	LastLatitude   *float64
	LastLongitude  *float64
	LastLocationAt *time.Time
}
