package commands

import (
	"context"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/history"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/request"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

// CreateRequestCommandHandler handles the business logic for request
// creation. Persists the request in "pending" status, writes the audit
// record, and immediately tries to bind an available driver inside the same
// transaction. A request with no available driver commits unassigned and is
// picked up by the assignment sweep later.
//
// Example:
//
//	handler := NewCreateRequestCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("request creation failed: %w", err)
//	}
//	fmt.Printf("request %d created in status %s", created.ID(), created.Status())
type CreateRequestCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewCreateRequestCommandHandler creates a handler for request creation.
// Requires a DispatchUoWFactory for transactional persistence.
func NewCreateRequestCommandHandler(uowFactory DispatchUoWFactory) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the request creation command. Only requesters may create
// requests. Returns the created aggregate, with a driver tentatively bound
// when one was available.
func (h CreateRequestCommandHandler) Handle(ctx context.Context, cmd CreateRequestCommand) (*request.Request, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.Actor().IsDriver() {
		return nil, errs.NewForbiddenError("drivers cannot create transport requests")
	}

	req, err := request.NewRequest(cmd.Actor().ID(), cmd.Kind(), cmd.Pickup(), cmd.ScheduledTime())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RequestRepository().Add(ctx, req); err != nil {
		return nil, err
	}

	requesterID := cmd.Actor().ID()
	record, err := history.NewRecord(req.ID(), history.ActionRequestCreated, history.ActorRequester, &requesterID)
	if err != nil {
		return nil, err
	}

	if err = uow.HistoryRepository().Add(ctx, record); err != nil {
		return nil, err
	}

	if _, err = NewDriverAssigner().Assign(ctx, uow, uow, uow, req, nil); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return req, nil
}
