package historyrepo

import (
	"context"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/adapters/out/postgres/pgerr"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/history"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Add appends an audit record and copies the generated identity back onto
// it.
func (r *GormHistoryRepository) Add(ctx context.Context, record *history.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("add history record", err)
	}

	return record.SetID(dto.ID)
}

// ListByRequest retrieves all audit records for a request, oldest first.
func (r *GormHistoryRepository) ListByRequest(ctx context.Context, requestID int64) ([]*history.Record, error) {
	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Classify("list history records", err)
	}

	records := make([]*history.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
