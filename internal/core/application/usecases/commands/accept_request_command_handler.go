package commands

import (
	"context"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/history"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/request"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

// AcceptRequestCommandHandler handles a driver confirming a tentative
// assignment. The request moves to "accepted", the driver's vehicle is bound
// to the request, and the driver becomes busy, all in one transaction.
//
// The request row is locked before the driver row. The status-guarded update
// makes a second concurrent accept fail with zero affected rows even if it
// somehow read a stale status.
//
// Example:
//
//	handler := NewAcceptRequestCommandHandler(uowFactory)
//	accepted, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrForbidden):
//	    // request is bound to a different driver
//	case errors.Is(err, errs.ErrConflict):
//	    // request is no longer pending
//	}
type AcceptRequestCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAcceptRequestCommandHandler creates a handler for accept operations.
// Requires a DispatchUoWFactory for coordinating request and driver updates.
func NewAcceptRequestCommandHandler(uowFactory DispatchUoWFactory) AcceptRequestCommandHandler {
	return AcceptRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept command. Only the driver the request is
// tentatively bound to may accept it.
func (h AcceptRequestCommandHandler) Handle(ctx context.Context, cmd AcceptRequestCommand) (*request.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsDriver() {
		return nil, errs.NewForbiddenError("only drivers can accept transport requests")
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

	if err = req.Accept(drv.Vehicle()); err != nil {
		return nil, err
	}

	if err = drv.MarkBusy(); err != nil {
		return nil, err
	}

	if err = uow.RequestRepository().UpdateWithStatusGuard(ctx, req, request.StatusPending); err != nil {
		return nil, err
	}

	if err = uow.DriverRepository().Update(ctx, drv); err != nil {
		return nil, err
	}

	driverID := cmd.Actor().ID()
	record, err := history.NewRecord(req.ID(), history.ActionDriverAccepted, history.ActorDriver, &driverID)
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
