package commands

import (
	"context"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/driver"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

// SetDriverAvailabilityCommandHandler handles drivers going on and off
// shift. Going offline while busy is a conflict: the active transport must
// be completed first.
type SetDriverAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSetDriverAvailabilityCommandHandler creates a handler for availability
// changes. Requires a DriverUoWFactory for transactional persistence.
func NewSetDriverAvailabilityCommandHandler(uowFactory DriverUoWFactory) SetDriverAvailabilityCommandHandler {
	return SetDriverAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability change for the calling driver.
func (h SetDriverAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetDriverAvailabilityCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.Actor().IsDriver() {
		return nil, errs.NewForbiddenError("only drivers can change driver availability")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	drv, err := uow.DriverRepository().GetForUpdate(ctx, cmd.Actor().ID())
	if err != nil {
		return nil, err
	}

	// A busy driver is committed to an active transport; the toggle must not
	// slip them back into the assignable pool or off shift.
	if drv.Status() == driver.StatusBusy {
		return nil, errs.NewConflictError("set availability", drv.Status().String())
	}

	if cmd.Available() {
		drv.MarkAvailable()
	} else if err = drv.MarkOffline(); err != nil {
		return nil, err
	}

	if err = uow.DriverRepository().Update(ctx, drv); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return drv, nil
}
