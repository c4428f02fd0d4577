package commands

import (
	"errors"
	"fmt"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/guard"
)

var ErrRejectRequestCommandIsNotConstructed = errors.New(
	"RejectRequestCommand must be created via NewRejectRequestCommand constructor",
)

// RejectRequestCommand represents a driver declining a transport request
// tentatively assigned to them.
type RejectRequestCommand struct { //nolint:recvcheck //using for validation
	actor     Actor
	requestID int64

	guard guard.ConstructorGuard
}

// NewRejectRequestCommand creates a command for the given driver to reject
// the given request.
func NewRejectRequestCommand(actor Actor, requestID int64) (RejectRequestCommand, error) {
	cmd := RejectRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRequestID(requestID),
	); err != nil {
		return RejectRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectRequestCommandIsNotConstructed if validation fails.
func (c RejectRequestCommand) Validate() error {
	return c.guard.Validate(ErrRejectRequestCommandIsNotConstructed)
}

// Actor returns the driver rejecting the request.
func (c RejectRequestCommand) Actor() Actor {
	return c.actor
}

// RequestID returns the identifier of the request being rejected.
func (c RejectRequestCommand) RequestID() int64 {
	return c.requestID
}

func (c *RejectRequestCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RejectRequestCommand) setRequestID(requestID int64) error {
	if requestID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("requestID",
			fmt.Errorf("%d is not a valid request id", requestID))
	}

	c.requestID = requestID
	return nil
}
