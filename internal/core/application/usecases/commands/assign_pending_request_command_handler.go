package commands

import (
	"context"
	"errors"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

var (
	ErrNoPendingRequests  = errors.New("no unassigned pending requests found")
	ErrNoAvailableDrivers = errors.New("no available drivers found")
)

// AssignPendingRequestCommandHandler orchestrates the background assignment
// sweep. It picks the oldest pending request with no driver bound and runs
// the same assignment logic used at creation time, so requests created while
// every driver was busy still get offered to drivers as they free up.
//
// Example:
//
//	handler := NewAssignPendingRequestCommandHandler(uowFactory)
//	cmd := NewAssignPendingRequestCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingRequests):
//	    log.Println("Nothing waiting")
//	case errors.Is(err, ErrNoAvailableDrivers):
//	    log.Println("All drivers busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignPendingRequestCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAssignPendingRequestCommandHandler creates a handler for the assignment
// sweep. Requires a DispatchUoWFactory for coordinating transactional updates
// across repositories.
func NewAssignPendingRequestCommandHandler(uowFactory DispatchUoWFactory) AssignPendingRequestCommandHandler {
	return AssignPendingRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one sweep pass. Returns ErrNoPendingRequests when nothing
// is waiting and ErrNoAvailableDrivers when a request is waiting but every
// driver is busy or offline.
func (h AssignPendingRequestCommandHandler) Handle(ctx context.Context, cmd AssignPendingRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	req, err := uow.RequestRepository().GetFirstUnassignedPendingForUpdate(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingRequests
	}
	if err != nil {
		return err
	}

	assigned, err := NewDriverAssigner().Assign(ctx, uow, uow, uow, req, nil)
	if err != nil {
		return err
	}
	if !assigned {
		return ErrNoAvailableDrivers
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
