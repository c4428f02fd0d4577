package commands

import (
	"errors"
	"time"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/kernel"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/request"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/guard"
)

var ErrCreateRequestCommandIsNotConstructed = errors.New(
	"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
)

// CreateRequestCommand represents a request for emergency or scheduled
// transport. Encapsulates the requester identity, the pickup location and,
// for scheduled transport, the future pickup time.
//
// Example:
//
//	pickup, _ := kernel.NewLocation(30.0444, 31.2357)
//	cmd, err := NewCreateRequestCommand(actor, request.KindEmergency, pickup, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid request data: %w", err)
//	}
//
//	handler := NewCreateRequestCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateRequestCommand struct { //nolint:recvcheck //using for validation
	actor         Actor
	kind          request.Kind
	pickup        kernel.Location
	scheduledTime *time.Time

	guard guard.ConstructorGuard
}

// NewCreateRequestCommand creates a command to register a new transport
// request on behalf of actor. Kind and pickup are validated here; the
// scheduled-time rules belong to the aggregate and are checked by the
// handler.
func NewCreateRequestCommand(
	actor Actor,
	kind request.Kind,
	pickup kernel.Location,
	scheduledTime *time.Time,
) (CreateRequestCommand, error) {
	cmd := CreateRequestCommand{
		scheduledTime: scheduledTime,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setKind(kind),
		cmd.setPickup(pickup),
	); err != nil {
		return CreateRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRequestCommandIsNotConstructed if validation fails.
func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

// Actor returns the caller identity the request is created for.
func (c CreateRequestCommand) Actor() Actor {
	return c.actor
}

// Kind returns whether the transport is emergency or scheduled.
func (c CreateRequestCommand) Kind() request.Kind {
	return c.kind
}

// Pickup returns the pickup location.
func (c CreateRequestCommand) Pickup() kernel.Location {
	return c.pickup
}

// ScheduledTime returns the requested pickup time, nil for emergencies.
func (c CreateRequestCommand) ScheduledTime() *time.Time {
	return c.scheduledTime
}

func (c *CreateRequestCommand) setActor(actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateRequestCommand) setKind(kind request.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreateRequestCommand) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	return nil
}
