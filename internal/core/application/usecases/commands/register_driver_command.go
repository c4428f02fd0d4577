package commands

import (
	"errors"
	"fmt"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand represents adding a new driver to the fleet,
// optionally bound to a vehicle. New drivers start offline and must go on
// shift before receiving assignments.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	vehicleID *int64

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a driver with an
// optional vehicle binding.
func NewRegisterDriverCommand(vehicleID *int64) (RegisterDriverCommand, error) {
	cmd := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setVehicleID(vehicleID); err != nil {
		return RegisterDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterDriverCommandIsNotConstructed if validation fails.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// VehicleID returns the vehicle bound to the new driver, nil when none.
func (c RegisterDriverCommand) VehicleID() *int64 {
	return c.vehicleID
}

func (c *RegisterDriverCommand) setVehicleID(vehicleID *int64) error {
	if vehicleID != nil && *vehicleID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("vehicleID",
			fmt.Errorf("%d is not a valid vehicle id", *vehicleID))
	}

	c.vehicleID = vehicleID
	return nil
}
