// Package historyrepo provides persistence for the append-only audit trail.
package historyrepo

import (
	"time"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/history"
)

// RecordDTO represents one audit row. Rows are insert-only; there is no
// updated_at or deleted_at.
type RecordDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	RequestID int64  `gorm:"index;not null"`
	Action    string `gorm:"type:varchar(32);not null"`
	ActorKind string `gorm:"type:varchar(16);not null"`
	ActorID   *int64
	CreatedAt time.Time
}

// TableName specifies the database table name for audit records.
func (RecordDTO) TableName() string {
	return "request_history"
}

func fromDomain(record *history.Record) RecordDTO {
	return RecordDTO{
		ID:        record.ID(),
		RequestID: record.RequestID(),
		Action:    record.Action(),
		ActorKind: record.Actor().String(),
		ActorID:   record.ActorID(),
		CreatedAt: record.CreatedAt(),
	}
}

func toDomain(dto RecordDTO) (*history.Record, error) {
	actorKind, err := history.ActorKindFromString(dto.ActorKind)
	if err != nil {
		return nil, err
	}

	return history.RestoreRecord(
		dto.ID,
		dto.RequestID,
		dto.Action,
		actorKind,
		dto.ActorID,
		dto.CreatedAt,
	)
}
