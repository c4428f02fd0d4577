package commands

import (
	"context"
	"time"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

// UpdateDriverLocationCommandHandler handles driver position reports. The
// reported position replaces the previous one; no movement history is kept.
type UpdateDriverLocationCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverLocationCommandHandler creates a handler for position
// reports. Requires a DriverUoWFactory for transactional persistence.
func NewUpdateDriverLocationCommandHandler(uowFactory DriverUoWFactory) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position report for the calling driver.
func (h UpdateDriverLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDriverLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsDriver() {
		return errs.NewForbiddenError("only drivers can report driver locations")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	drv, err := uow.DriverRepository().GetForUpdate(ctx, cmd.Actor().ID())
	if err != nil {
		return err
	}

	if err = drv.ReportLocation(cmd.Location(), time.Now()); err != nil {
		return err
	}

	if err = uow.DriverRepository().Update(ctx, drv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
