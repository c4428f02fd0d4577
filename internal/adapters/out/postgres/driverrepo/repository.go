package driverrepo

import (
	"context"
	"errors"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/adapters/out/postgres/pgerr"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/driver"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver and copies the generated identity back onto the
// aggregate.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("add driver", err)
	}

	if err := aggregate.SetID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing driver, including a cleared vehicle binding.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select(updatableColumns()).
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Classify("update driver", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driverID", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID without locking.
func (r *GormDriverRepository) Get(ctx context.Context, id int64) (*driver.Driver, error) {
	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driverID", id)
		}
		return nil, pgerr.Classify("get driver", err)
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a driver by ID under an exclusive row lock held
// until the surrounding transaction ends.
func (r *GormDriverRepository) GetForUpdate(ctx context.Context, id int64) (*driver.Driver, error) {
	var dto DriverDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driverID", id)
		}
		return nil, pgerr.Classify("lock driver", err)
	}

	return toDomain(dto)
}

// LockFirstAvailable retrieves the lowest-id available driver under an
// exclusive row lock, optionally skipping excludeID.
func (r *GormDriverRepository) LockFirstAvailable(ctx context.Context, excludeID *int64) (*driver.Driver, error) {
	query := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("status = ?", driver.StatusAvailable.String())

	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var dto DriverDTO
	if err := query.Order("id").First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", "first available")
		}
		return nil, pgerr.Classify("lock driver", err)
	}

	return toDomain(dto)
}
