package commands

import (
	"context"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/history"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/request"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

// MarkArrivedCommandHandler handles a driver reporting arrival at the pickup
// location. The request moves from "accepted" to "arrived"; the driver stays
// busy and no driver row is touched.
type MarkArrivedCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewMarkArrivedCommandHandler creates a handler for arrival reports.
// Requires a RequestUoWFactory for transactional persistence.
func NewMarkArrivedCommandHandler(uowFactory RequestUoWFactory) MarkArrivedCommandHandler {
	return MarkArrivedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the arrival report. Only the driver the request is bound
// to may report arrival.
func (h MarkArrivedCommandHandler) Handle(ctx context.Context, cmd MarkArrivedCommand) (*request.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsDriver() {
		return nil, errs.NewForbiddenError("only drivers can report arrival")
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

	if err = req.MarkArrived(); err != nil {
		return nil, err
	}

	if err = uow.RequestRepository().Update(ctx, req); err != nil {
		return nil, err
	}

	driverID := cmd.Actor().ID()
	record, err := history.NewRecord(req.ID(), history.ActionDriverArrived, history.ActorDriver, &driverID)
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
