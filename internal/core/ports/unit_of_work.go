package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each operation.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents the atomic transaction boundary every lifecycle
// transition executes in. Row locks acquired through the repositories it
// vends are held until Commit or Rollback ends the transaction; the database
// transaction is the sole synchronization primitive, so correctness holds
// across multiple server processes sharing one store.
//
// Client code must explicitly manage the transaction lifecycle:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	// lock request row first, then any driver row it touches
//	req, err := uow.RequestRepository().GetForUpdate(ctx, id)
//	...
//
//	return uow.Commit(ctx)
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// RequestRepository returns a RequestRepository bound to the current
	// transaction, or to the base connection when none is active.
	RequestRepository() RequestRepository

	// DriverRepository returns a DriverRepository bound to the current
	// transaction, or to the base connection when none is active.
	DriverRepository() DriverRepository

	// HistoryRepository returns a HistoryRepository bound to the current
	// transaction, or to the base connection when none is active.
	HistoryRepository() HistoryRepository
}
