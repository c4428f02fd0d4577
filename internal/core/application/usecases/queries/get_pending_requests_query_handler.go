package queries

import (
	"context"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/request"

	"gorm.io/gorm"
)

// GetPendingRequestsQueryHandler lists requests awaiting service from the
// database.
type GetPendingRequestsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingRequestsQueryHandler creates a handler for pending-request
// views. Requires a GORM database connection for query execution.
func NewGetPendingRequestsQueryHandler(db *gorm.DB) GetPendingRequestsQueryHandler {
	return GetPendingRequestsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by request id for consistent
// output, which matches assignment order.
func (h GetPendingRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingRequestsQuery,
) ([]GetPendingRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetPendingRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			requester_id,
			driver_id,
			kind,
			pickup_latitude,
			pickup_longitude,
			scheduled_time,
			created_at
		FROM requests
		WHERE status = ? AND deleted_at IS NULL
		ORDER BY id
	`, request.StatusPending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingRequestsQueryResponse
		err = rows.Scan(
			&resp.ID,
			&resp.RequesterID,
			&resp.DriverID,
			&resp.Kind,
			&resp.PickupLatitude,
			&resp.PickupLongitude,
			&resp.ScheduledTime,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
