package commands

import (
	"errors"
	"fmt"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/guard"
)

var ErrMarkArrivedCommandIsNotConstructed = errors.New(
	"MarkArrivedCommand must be created via NewMarkArrivedCommand constructor",
)

// MarkArrivedCommand represents a driver reporting arrival at the pickup
// location of an accepted request.
type MarkArrivedCommand struct { //nolint:recvcheck //using for validation
	actor     Actor
	requestID int64

	guard guard.ConstructorGuard
}

// NewMarkArrivedCommand creates a command for the given driver to report
// arrival on the given request.
func NewMarkArrivedCommand(actor Actor, requestID int64) (MarkArrivedCommand, error) {
	cmd := MarkArrivedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRequestID(requestID),
	); err != nil {
		return MarkArrivedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkArrivedCommandIsNotConstructed if validation fails.
func (c MarkArrivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkArrivedCommandIsNotConstructed)
}

// Actor returns the driver reporting arrival.
func (c MarkArrivedCommand) Actor() Actor {
	return c.actor
}

// RequestID returns the identifier of the request arrived at.
func (c MarkArrivedCommand) RequestID() int64 {
	return c.requestID
}

func (c *MarkArrivedCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *MarkArrivedCommand) setRequestID(requestID int64) error {
	if requestID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("requestID",
			fmt.Errorf("%d is not a valid request id", requestID))
	}

	c.requestID = requestID
	return nil
}
