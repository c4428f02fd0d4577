package commands

import (
	"context"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/history"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/request"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

// CompleteRequestCommandHandler handles a driver finishing a transport. The
// request moves from "arrived" to terminal "completed", its driver binding is
// cleared while the vehicle reference is kept for the record, and the driver
// returns to the available pool in the same transaction.
type CompleteRequestCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewCompleteRequestCommandHandler creates a handler for completion
// operations. Requires a DispatchUoWFactory for coordinating request and
// driver updates.
func NewCompleteRequestCommandHandler(uowFactory DispatchUoWFactory) CompleteRequestCommandHandler {
	return CompleteRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command. Only the driver the request is
// bound to may complete it.
func (h CompleteRequestCommandHandler) Handle(ctx context.Context, cmd CompleteRequestCommand) (*request.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsDriver() {
		return nil, errs.NewForbiddenError("only drivers can complete transport requests")
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

	if err = req.Complete(); err != nil {
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
	record, err := history.NewRecord(req.ID(), history.ActionRequestCompleted, history.ActorDriver, &driverID)
	if err != nil {
		return nil, err
	}

	if err = uow.HistoryRepository().Add(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return req, nil
}
