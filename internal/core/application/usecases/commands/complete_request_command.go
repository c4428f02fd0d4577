package commands

import (
	"errors"
	"fmt"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/guard"
)

var ErrCompleteRequestCommandIsNotConstructed = errors.New(
	"CompleteRequestCommand must be created via NewCompleteRequestCommand constructor",
)

// CompleteRequestCommand represents a driver finishing a transport request
// they had arrived at.
type CompleteRequestCommand struct { //nolint:recvcheck //using for validation
	actor     Actor
	requestID int64

	guard guard.ConstructorGuard
}

// NewCompleteRequestCommand creates a command for the given driver to
// complete the given request.
func NewCompleteRequestCommand(actor Actor, requestID int64) (CompleteRequestCommand, error) {
	cmd := CompleteRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRequestID(requestID),
	); err != nil {
		return CompleteRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteRequestCommandIsNotConstructed if validation fails.
func (c CompleteRequestCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRequestCommandIsNotConstructed)
}

// Actor returns the driver completing the request.
func (c CompleteRequestCommand) Actor() Actor {
	return c.actor
}

// RequestID returns the identifier of the request being completed.
func (c CompleteRequestCommand) RequestID() int64 {
	return c.requestID
}

func (c *CompleteRequestCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CompleteRequestCommand) setRequestID(requestID int64) error {
	if requestID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("requestID",
			fmt.Errorf("%d is not a valid request id", requestID))
	}

	c.requestID = requestID
	return nil
}
