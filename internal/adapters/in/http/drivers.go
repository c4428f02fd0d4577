package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/application/usecases/commands"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/application/usecases/queries"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/driver"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/kernel"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
)

// NewDriver is the body of POST /api/v1/drivers.
type NewDriver struct {
	VehicleID *int64 `json:"vehicle_id,omitempty"`
}

// SetAvailability is the body of POST /api/v1/drivers/availability.
type SetAvailability struct {
	Available bool `json:"available"`
}

// Driver is the wire representation of a driver.
type Driver struct {
	ID             int64      `json:"id"`
	Status         string     `json:"status"`
	VehicleID      *int64     `json:"vehicle_id,omitempty"`
	LastLocation   *Location  `json:"last_location,omitempty"`
	LastLocationAt *time.Time `json:"last_location_at,omitempty"`
}

func toDriverBody(drv *driver.Driver) Driver {
	body := Driver{
		ID:             drv.ID(),
		Status:         drv.Status().String(),
		VehicleID:      drv.Vehicle(),
		LastLocationAt: drv.LastLocationAt(),
	}
	if loc := drv.LastLocation(); loc != nil {
		body.LastLocation = &Location{
			Latitude:  loc.Latitude(),
			Longitude: loc.Longitude(),
		}
	}
	return body
}

// RegisterDriver handles POST /api/v1/drivers - adds a driver to the fleet.
// New drivers start offline and join the pool via the availability endpoint.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var body NewDriver
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewRegisterDriverCommand(body.VehicleID)
	if err != nil {
		return writeError(ctx, err)
	}

	registered, err := s.registerDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toDriverBody(registered))
}

// SetDriverAvailability handles POST /api/v1/drivers/availability - the
// acting driver joins or leaves the assignable pool.
func (s *Server) SetDriverAvailability(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body SetAvailability
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewSetDriverAvailabilityCommand(actor, body.Available)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.setDriverAvailabilityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDriverBody(updated))
}

// UpdateDriverLocation handles POST /api/v1/drivers/location - the acting
// driver reports a position fix.
func (s *Server) UpdateDriverLocation(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body Location
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	location, err := kernel.NewLocation(body.Latitude, body.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(actor, location)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateDriverLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	query := queries.NewGetAvailableDriversQuery()

	available, err := s.getAvailableDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Driver, len(available))
	for i, item := range available {
		response[i] = Driver{
			ID:             item.ID,
			Status:         driver.StatusAvailable.String(),
			VehicleID:      item.VehicleID,
			LastLocationAt: item.LastLocationAt,
		}
		if item.LastLatitude != nil && item.LastLongitude != nil {
			response[i].LastLocation = &Location{
				Latitude:  *item.LastLatitude,
				Longitude: *item.LastLongitude,
			}
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
