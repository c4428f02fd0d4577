// Package pgerr classifies low-level postgres errors for the repository
// layer. Retryable server conditions are surfaced as TransientStoreError so
// callers can distinguish "retry the whole transaction" from a permanent
// failure.
package pgerr

import (
	"errors"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes that indicate a transient, retryable condition.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// Classify wraps err as a TransientStoreError when it carries a retryable
// postgres error code, and returns it unchanged otherwise. A nil err stays
// nil.
func Classify(operation string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return errs.NewTransientStoreError(operation, err)
		}
	}

	return err
}
