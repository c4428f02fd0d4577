package commands_test

import (
	"testing"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/require"
)

func TestNewAssignPendingRequestCommand(t *testing.T) {
	cmd := commands.NewAssignPendingRequestCommand()
	require.NoError(t, cmd.Validate())
}

func TestAssignPendingRequestCommand_NotConstructed(t *testing.T) {
	var cmd commands.AssignPendingRequestCommand
	err := cmd.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignPendingRequestCommandIsNotConstructed)
}
