package commands

import (
	"context"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/history"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/request"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

// RejectRequestCommandHandler handles a driver declining a tentative
// assignment. The binding is cleared, the request stays pending, and another
// available driver is tried immediately within the same transaction, skipping
// the one who just declined.
type RejectRequestCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewRejectRequestCommandHandler creates a handler for reject operations.
// Requires a DispatchUoWFactory for coordinating request and driver updates.
func NewRejectRequestCommandHandler(uowFactory DispatchUoWFactory) RejectRequestCommandHandler {
	return RejectRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reject command. Only the driver the request is
// tentatively bound to may reject it. Returns the request, rebound to a new
// driver when one was available and unassigned otherwise.
func (h RejectRequestCommandHandler) Handle(ctx context.Context, cmd RejectRequestCommand) (*request.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsDriver() {
		return nil, errs.NewForbiddenError("only drivers can reject transport requests")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	req, err := uow.RequestRepository().GetForUpdate(ctx, cmd.RequestID())
	if err != nil {
		return nil, err
	}

	if !req.IsBoundTo(cmd.Actor().ID()) {
		return nil, errs.NewForbiddenError("request is not assigned to this driver")
	}

	drv, err := uow.DriverRepository().GetForUpdate(ctx, cmd.Actor().ID())
	if err != nil {
		return nil, err
	}

	if err = req.Reject(); err != nil {
		return nil, err
	}

	drv.MarkAvailable()

	if err = uow.RequestRepository().Update(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.DriverRepository().Update(ctx, drv); err != nil {
		return nil, err
	}

	driverID := cmd.Actor().ID()
	record, err := history.NewRecord(req.ID(), history.ActionDriverRejected, history.ActorDriver, &driverID)
	if err != nil {
		return nil, err
	}

	if err = uow.HistoryRepository().Add(ctx, record); err != nil {
		return nil, err
	}

	if _, err = NewDriverAssigner().Assign(ctx, uow, uow, uow, req, &driverID); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return req, nil
}
