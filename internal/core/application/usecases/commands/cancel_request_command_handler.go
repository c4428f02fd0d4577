package commands

import (
	"context"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/history"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/request"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

// CancelRequestCommandHandler handles a requester withdrawing a pending
// request. Any tentative driver binding is dropped; the driver was never
// marked busy for a tentative offer, so no driver row is touched.
type CancelRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCancelRequestCommandHandler creates a handler for cancellations.
// Requires a RequestUoWFactory for transactional persistence.
func NewCancelRequestCommandHandler(uowFactory RequestUoWFactory) CancelRequestCommandHandler {
	return CancelRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation. Only the requester who created the
// request may cancel it, and only while it is still pending.
func (h CancelRequestCommandHandler) Handle(ctx context.Context, cmd CancelRequestCommand) (*request.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.Actor().IsDriver() {
		return nil, errs.NewForbiddenError("drivers cannot cancel transport requests")
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

	if req.RequesterID() != cmd.Actor().ID() {
		return nil, errs.NewForbiddenError("request belongs to a different requester")
	}

	if err = req.Cancel(); err != nil {
		return nil, err
	}

	if err = uow.RequestRepository().Update(ctx, req); err != nil {
		return nil, err
	}

	requesterID := cmd.Actor().ID()
	record, err := history.NewRecord(req.ID(), history.ActionRequestCancelled, history.ActorRequester, &requesterID)
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
