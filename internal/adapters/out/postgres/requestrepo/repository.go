package requestrepo

import (
	"context"
	"errors"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/adapters/out/postgres/pgerr"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/request"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRequestRepository implements RequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormRequestRepository creates a new GORM request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new request and copies the generated identity back onto the
// aggregate.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("add request", err)
	}

	if err := aggregate.SetID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing request, including cleared driver and vehicle
// bindings.
func (r *GormRequestRepository) Update(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("id = ?", dto.ID).
		Select(updatableColumns()).
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Classify("update request", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("requestID", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateWithStatusGuard saves an existing request only while its stored
// status still equals expected. Zero affected rows means another writer got
// there first.
func (r *GormRequestRepository) UpdateWithStatusGuard(ctx context.Context, aggregate *request.Request, expected request.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Select(updatableColumns()).
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Classify("update request", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("stale update", dto.Status)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a request by ID without locking.
func (r *GormRequestRepository) Get(ctx context.Context, id int64) (*request.Request, error) {
	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("requestID", id)
		}
		return nil, pgerr.Classify("get request", err)
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a request by ID under an exclusive row lock held
// until the surrounding transaction ends.
func (r *GormRequestRepository) GetForUpdate(ctx context.Context, id int64) (*request.Request, error) {
	var dto RequestDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("requestID", id)
		}
		return nil, pgerr.Classify("lock request", err)
	}

	return toDomain(dto)
}

// GetFirstUnassignedPendingForUpdate retrieves the lowest-id pending request
// with no driver bound, under an exclusive row lock.
func (r *GormRequestRepository) GetFirstUnassignedPendingForUpdate(ctx context.Context) (*request.Request, error) {
	var dto RequestDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("status = ? AND driver_id IS NULL", request.StatusPending.String()).
		Order("id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request", "first unassigned pending")
		}
		return nil, pgerr.Classify("lock request", err)
	}

	return toDomain(dto)
}
