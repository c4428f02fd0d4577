// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence.
package driverrepo

import (
	"time"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/driver"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// DriverDTO represents the database structure for persisting driver
// aggregates. The last reported position is optional: a freshly registered
// driver has never reported one.
type DriverDTO struct {
	ID             int64    `gorm:"primaryKey;autoIncrement"`
	Status         string   `gorm:"type:varchar(16);index;not null"`
	VehicleID      *int64
	LastLatitude   *float64 `gorm:"type:decimal(10,8)"`
	LastLongitude  *float64 `gorm:"type:decimal(11,8)"`
	LastLocationAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

func updatableColumns() []string {
	return []string{
		"status",
		"vehicle_id",
		"last_latitude",
		"last_longitude",
		"last_location_at",
	}
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	dto := DriverDTO{
		ID:             aggregate.ID(),
		Status:         aggregate.Status().String(),
		VehicleID:      aggregate.Vehicle(),
		LastLocationAt: aggregate.LastLocationAt(),
	}

	if location := aggregate.LastLocation(); location != nil {
		latitude := location.Latitude()
		longitude := location.Longitude()
		dto.LastLatitude = &latitude
		dto.LastLongitude = &longitude
	}

	return dto
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	status, err := driver.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var lastLocation *kernel.Location
	if dto.LastLatitude != nil && dto.LastLongitude != nil {
		location, locErr := kernel.NewLocation(*dto.LastLatitude, *dto.LastLongitude)
		if locErr != nil {
			return nil, locErr
		}
		lastLocation = &location
	}

	return driver.RestoreDriver(
		dto.ID,
		status,
		dto.VehicleID,
		lastLocation,
		dto.LastLocationAt,
	)
}
