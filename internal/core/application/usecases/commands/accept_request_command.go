package commands

import (
	"errors"
	"fmt"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/guard"
)

var ErrAcceptRequestCommandIsNotConstructed = errors.New(
	"AcceptRequestCommand must be created via NewAcceptRequestCommand constructor",
)

// AcceptRequestCommand represents a driver accepting a transport request
// tentatively assigned to them.
type AcceptRequestCommand struct { //nolint:recvcheck //using for validation
	actor     Actor
	requestID int64

	guard guard.ConstructorGuard
}

// NewAcceptRequestCommand creates a command for the given driver to accept
// the given request.
func NewAcceptRequestCommand(actor Actor, requestID int64) (AcceptRequestCommand, error) {
	cmd := AcceptRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRequestID(requestID),
	); err != nil {
		return AcceptRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptRequestCommandIsNotConstructed if validation fails.
func (c AcceptRequestCommand) Validate() error {
	return c.guard.Validate(ErrAcceptRequestCommandIsNotConstructed)
}

// Actor returns the driver accepting the request.
func (c AcceptRequestCommand) Actor() Actor {
	return c.actor
}

// RequestID returns the identifier of the request being accepted.
func (c AcceptRequestCommand) RequestID() int64 {
	return c.requestID
}

func (c *AcceptRequestCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AcceptRequestCommand) setRequestID(requestID int64) error {
	if requestID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("requestID",
			fmt.Errorf("%d is not a valid request id", requestID))
	}

	c.requestID = requestID
	return nil
}
