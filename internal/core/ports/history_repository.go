package ports

import (
	"context"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/history"
)

// HistoryRepository defines the append-only persistence contract for audit
// records. There is no update or delete: a record written inside a unit of
// work becomes visible exactly when the state change it describes commits.
type HistoryRepository interface {
	// Add appends an audit record within the caller's unit of work.
	Add(ctx context.Context, record *history.Record) error

	// ListByRequest retrieves all records for a request, oldest first.
	ListByRequest(ctx context.Context, requestID int64) ([]*history.Record, error)
}
