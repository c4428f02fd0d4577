package commands

import (
	"context"
	"errors"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/history"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/request"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

// DriverAssigner binds an available driver to a pending request inside the
// caller's already-open unit of work. The caller must hold the request row
// lock before Assign is called; the driver row is locked here, after it, so
// every writer acquires the two locks in the same order.
//
// Assignment is tentative: the driver id is written onto the request but the
// driver's own availability is untouched until the driver accepts.
type DriverAssigner struct{}

// NewDriverAssigner creates a DriverAssigner.
func NewDriverAssigner() DriverAssigner {
	return DriverAssigner{}
}

// Assign locks the first available driver (lowest id, optionally skipping
// excludeID) and binds it to req, recording a system audit entry. Returns
// false with a nil error when no driver is available: a request with no
// driver is a normal outcome, not a failure, and the sweep job will retry.
func (a DriverAssigner) Assign(
	ctx context.Context,
	requestRepo RequestRepoFactory,
	driverRepo DriverRepoFactory,
	historyRepo HistoryRepoFactory,
	req *request.Request,
	excludeID *int64,
) (bool, error) {
	candidate, err := driverRepo.DriverRepository().LockFirstAvailable(ctx, excludeID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err = req.AssignDriver(candidate.ID()); err != nil {
		return false, err
	}

	if err = requestRepo.RequestRepository().Update(ctx, req); err != nil {
		return false, err
	}

	record, err := history.NewRecord(req.ID(), history.ActionDriverAssigned, history.ActorSystem, nil)
	if err != nil {
		return false, err
	}

	if err = historyRepo.HistoryRepository().Add(ctx, record); err != nil {
		return false, err
	}

	return true, nil
}
