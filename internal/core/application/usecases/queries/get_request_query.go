// Package queries contains the read side of the dispatch core: denormalized
// views over requests, drivers and the audit trail. Queries bypass the
// aggregates and repositories and read the store directly; they never lock
// rows and never mutate state.
package queries

import (
	"errors"
	"fmt"
	"time"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/guard"
)

var ErrGetRequestQueryIsNotConstructed = errors.New(
	"GetRequestQuery must be created via NewGetRequestQuery constructor",
)

// GetRequestQuery retrieves a single transport request with its full audit
// history.
//
// Example:
//
//	query, err := NewGetRequestQuery(42)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetRequestQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
type GetRequestQuery struct { //nolint:recvcheck //using for validation
	requestID int64

	guard guard.ConstructorGuard
}

// NewGetRequestQuery creates a query for the given request id.
func NewGetRequestQuery(requestID int64) (GetRequestQuery, error) {
	if requestID <= 0 {
		return GetRequestQuery{}, errs.NewValueIsInvalidErrorWithCause("requestID",
			fmt.Errorf("%d is not a valid request id", requestID))
	}

	return GetRequestQuery{
		requestID: requestID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRequestQueryIsNotConstructed if validation fails.
func (q GetRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetRequestQueryIsNotConstructed)
}

// RequestID returns the identifier of the request to fetch.
func (q GetRequestQuery) RequestID() int64 {
	return q.requestID
}

// RequestHistoryItem is one audit entry in a request view, oldest first.
type RequestHistoryItem struct {
	Action    string
	ActorKind string
	ActorID   *int64
	CreatedAt time.Time
}

// GetRequestQueryResponse is the denormalized view of a transport request
// and its audit history.
type GetRequestQueryResponse struct {
	ID              int64
	RequesterID     int64
	DriverID        *int64
	VehicleID       *int64
	Kind            string
	Status          string
	PickupLatitude  float64
	PickupLongitude float64
	ScheduledTime   *time.Time
	CreatedAt       time.Time
	History         []RequestHistoryItem
}
