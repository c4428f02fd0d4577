package queries

import (
	"context"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/driver"

	"gorm.io/gorm"
)

// GetAvailableDriversQueryHandler lists assignable drivers from the
// database.
type GetAvailableDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDriversQueryHandler creates a handler for available-driver
// views. Requires a GORM database connection for query execution.
func NewGetAvailableDriversQueryHandler(db *gorm.DB) GetAvailableDriversQueryHandler {
	return GetAvailableDriversQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by driver id, the same order
// the assignment engine uses to pick candidates.
func (h GetAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDriversQuery,
) ([]GetAvailableDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]GetAvailableDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vehicle_id,
			last_latitude,
			last_longitude,
			last_location_at
		FROM drivers
		WHERE status = ? AND deleted_at IS NULL
		ORDER BY id
	`, driver.StatusAvailable.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailableDriversQueryResponse
		err = rows.Scan(
			&resp.ID,
			&resp.VehicleID,
			&resp.LastLatitude,
			&resp.LastLongitude,
			&resp.LastLocationAt,
		)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
