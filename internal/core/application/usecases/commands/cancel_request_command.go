package commands

import (
	"errors"
	"fmt"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/guard"
)

var ErrCancelRequestCommandIsNotConstructed = errors.New(
	"CancelRequestCommand must be created via NewCancelRequestCommand constructor",
)

// CancelRequestCommand represents a requester withdrawing their own pending
// transport request.
type CancelRequestCommand struct { //nolint:recvcheck //using for validation
	actor     Actor
	requestID int64

	guard guard.ConstructorGuard
}

// NewCancelRequestCommand creates a command for the given requester to
// cancel the given request.
func NewCancelRequestCommand(actor Actor, requestID int64) (CancelRequestCommand, error) {
	cmd := CancelRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRequestID(requestID),
	); err != nil {
		return CancelRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelRequestCommandIsNotConstructed if validation fails.
func (c CancelRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelRequestCommandIsNotConstructed)
}

// Actor returns the requester cancelling the request.
func (c CancelRequestCommand) Actor() Actor {
	return c.actor
}

// RequestID returns the identifier of the request being cancelled.
func (c CancelRequestCommand) RequestID() int64 {
	return c.requestID
}

func (c *CancelRequestCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CancelRequestCommand) setRequestID(requestID int64) error {
	if requestID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("requestID",
			fmt.Errorf("%d is not a valid request id", requestID))
	}

	c.requestID = requestID
	return nil
}
