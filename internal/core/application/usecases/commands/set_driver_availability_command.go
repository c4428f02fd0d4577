package commands

import (
	"errors"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/guard"
)

var ErrSetDriverAvailabilityCommandIsNotConstructed = errors.New(
	"SetDriverAvailabilityCommand must be created via NewSetDriverAvailabilityCommand constructor",
)

// SetDriverAvailabilityCommand represents a driver going on or off shift.
type SetDriverAvailabilityCommand struct { //nolint:recvcheck //using for validation
	actor     Actor
	available bool

	guard guard.ConstructorGuard
}

// NewSetDriverAvailabilityCommand creates a command for the given driver to
// mark themselves available (true) or offline (false).
func NewSetDriverAvailabilityCommand(actor Actor, available bool) (SetDriverAvailabilityCommand, error) {
	cmd := SetDriverAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setActor(actor); err != nil {
		return SetDriverAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetDriverAvailabilityCommandIsNotConstructed if validation fails.
func (c SetDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverAvailabilityCommandIsNotConstructed)
}

// Actor returns the driver changing their availability.
func (c SetDriverAvailabilityCommand) Actor() Actor {
	return c.actor
}

// Available reports whether the driver is going on shift.
func (c SetDriverAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetDriverAvailabilityCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
