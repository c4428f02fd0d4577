package commands

import (
	"errors"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/guard"
)

var ErrAssignPendingRequestCommandIsNotConstructed = errors.New(
	"AssignPendingRequestCommand must be created via NewAssignPendingRequestCommand constructor",
)

// AssignPendingRequestCommand triggers one pass of the background assignment
// sweep: bind the oldest unassigned pending request to an available driver.
// Issued by the scheduler, not by any caller.
//
// Example:
//
//	cmd := NewAssignPendingRequestCommand()
//	handler := NewAssignPendingRequestCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Nothing to assign: %v", err)
//	}
type AssignPendingRequestCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignPendingRequestCommand creates a new command to trigger the
// assignment sweep. This is a parameterless command.
func NewAssignPendingRequestCommand() AssignPendingRequestCommand {
	return AssignPendingRequestCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPendingRequestCommandIsNotConstructed if validation fails.
func (c *AssignPendingRequestCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignPendingRequestCommandIsNotConstructed,
	)
}
