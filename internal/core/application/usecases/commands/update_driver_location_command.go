package commands

import (
	"errors"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/kernel"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/guard"
)

var ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
)

// UpdateDriverLocationCommand represents a driver reporting their current
// position.
type UpdateDriverLocationCommand struct { //nolint:recvcheck //using for validation
	actor    Actor
	location kernel.Location

	guard guard.ConstructorGuard
}

// NewUpdateDriverLocationCommand creates a command for the given driver to
// report their position.
func NewUpdateDriverLocationCommand(actor Actor, location kernel.Location) (UpdateDriverLocationCommand, error) {
	cmd := UpdateDriverLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setLocation(location),
	); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateDriverLocationCommandIsNotConstructed if validation fails.
func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

// Actor returns the driver reporting their position.
func (c UpdateDriverLocationCommand) Actor() Actor {
	return c.actor
}

// Location returns the reported position.
func (c UpdateDriverLocationCommand) Location() kernel.Location {
	return c.location
}

func (c *UpdateDriverLocationCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateDriverLocationCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
