// Package commands contains the business operations that modify system state:
// the lifecycle transitions of transport requests and the driver availability
// changes coupled to them. Implements the Command pattern for write operations
// in the CQRS architecture. All commands follow a consistent pattern:
// validation, one atomic unit of work with lock-ordered row access (request
// row before driver row), and persistence.
package commands

import (
	"context"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares the narrowest interface covering the aggregates it
// touches, so a transition that never locks a driver row cannot accidentally
// reach one.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RequestRepoFactory provides access to the request repository within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// HistoryRepoFactory provides access to the history repository within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// RequestUoW manages transactions for operations that touch only the
	// request row and its audit trail (mark-arrived, cancel).
	RequestUoW interface {
		TxManager
		RequestRepoFactory
		HistoryRepoFactory
	}

	// RequestUoWFactory creates new request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// DriverUoW manages transactions for driver-only operations
	// (availability toggling, location reports).
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// DispatchUoW manages transactions that couple the request lifecycle to
	// driver availability (create, accept, reject, complete, assignment
	// sweep). The request row is always locked before any driver row inside
	// one of these units of work.
	DispatchUoW interface {
		TxManager
		RequestRepoFactory
		DriverRepoFactory
		HistoryRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)
