// Package requestrepo provides data transfer objects and mapping functions
// for request persistence. Implements the repository pattern for the request
// aggregate, converting between domain entities and database rows.
package requestrepo

import (
	"time"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/kernel"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/request"

	"gorm.io/gorm"
)

// RequestDTO represents the database structure for persisting request
// aggregates. Status and kind are stored as their lower-case string forms so
// the rows stay readable in ad-hoc queries.
type RequestDTO struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	RequesterID     int64   `gorm:"index;not null"`
	DriverID        *int64  `gorm:"index"`
	VehicleID       *int64
	Kind            string  `gorm:"type:varchar(16);not null"`
	Status          string  `gorm:"type:varchar(16);index;not null"`
	PickupLatitude  float64 `gorm:"type:decimal(10,8);not null"`
	PickupLongitude float64 `gorm:"type:decimal(11,8);not null"`
	ScheduledTime   *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for request entities.
func (RequestDTO) TableName() string {
	return "requests"
}

// updatableColumns are the columns written on every Update. Listing them
// explicitly makes gorm persist nil driver and vehicle bindings, which a
// struct update would silently skip.
func updatableColumns() []string {
	return []string{
		"requester_id",
		"driver_id",
		"vehicle_id",
		"kind",
		"status",
		"pickup_latitude",
		"pickup_longitude",
		"scheduled_time",
	}
}

func fromDomain(aggregate *request.Request) RequestDTO {
	return RequestDTO{
		ID:              aggregate.ID(),
		RequesterID:     aggregate.RequesterID(),
		DriverID:        aggregate.Driver(),
		VehicleID:       aggregate.Vehicle(),
		Kind:            aggregate.Kind().String(),
		Status:          aggregate.Status().String(),
		PickupLatitude:  aggregate.Pickup().Latitude(),
		PickupLongitude: aggregate.Pickup().Longitude(),
		ScheduledTime:   aggregate.ScheduledTime(),
	}
}

func toDomain(dto RequestDTO) (*request.Request, error) {
	kind, err := request.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	status, err := request.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewLocation(dto.PickupLatitude, dto.PickupLongitude)
	if err != nil {
		return nil, err
	}

	return request.RestoreRequest(
		dto.ID,
		dto.RequesterID,
		dto.DriverID,
		dto.VehicleID,
		kind,
		status,
		pickup,
		dto.ScheduledTime,
	)
}
