package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRequestQueryHandler reads a single request and its audit trail straight
// from the store.
type GetRequestQueryHandler struct {
	db *gorm.DB
}

// NewGetRequestQueryHandler creates a handler for single-request views.
// Requires a GORM database connection for query execution.
func NewGetRequestQueryHandler(db *gorm.DB) GetRequestQueryHandler {
	return GetRequestQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the request
// does not exist or has been soft-deleted.
func (h GetRequestQueryHandler) Handle(
	ctx context.Context,
	query GetRequestQuery,
) (GetRequestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRequestQueryResponse{}, err
	}

	var resp GetRequestQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			requester_id,
			driver_id,
			vehicle_id,
			kind,
			status,
			pickup_latitude,
			pickup_longitude,
			scheduled_time,
			created_at
		FROM requests
		WHERE id = ? AND deleted_at IS NULL
	`, query.RequestID()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.RequesterID,
		&resp.DriverID,
		&resp.VehicleID,
		&resp.Kind,
		&resp.Status,
		&resp.PickupLatitude,
		&resp.PickupLongitude,
		&resp.ScheduledTime,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetRequestQueryResponse{}, errs.NewObjectNotFoundError("requestID", query.RequestID())
	}
	if err != nil {
		return GetRequestQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			action,
			actor_kind,
			actor_id,
			created_at
		FROM request_history
		WHERE request_id = ?
		ORDER BY id
	`, query.RequestID()).Rows()
	if err != nil {
		return GetRequestQueryResponse{}, err
	}
	defer rows.Close()

	resp.History = make([]RequestHistoryItem, 0)
	for rows.Next() {
		var item RequestHistoryItem
		if err = rows.Scan(&item.Action, &item.ActorKind, &item.ActorID, &item.CreatedAt); err != nil {
			return GetRequestQueryResponse{}, err
		}
		resp.History = append(resp.History, item)
	}

	if err = rows.Err(); err != nil {
		return GetRequestQueryResponse{}, err
	}

	return resp, nil
}
