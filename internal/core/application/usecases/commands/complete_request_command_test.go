package commands_test

import (
	"testing"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/application/usecases/commands"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteRequestCommand_ValidInput(t *testing.T) {
	actor := mustDriverActor(t, 5)
	cmd, err := commands.NewCompleteRequestCommand(actor, 42)
	require.NoError(t, err)
	assert.Equal(t, actor, cmd.Actor())
	assert.Equal(t, int64(42), cmd.RequestID())
}

func TestNewCompleteRequestCommand_InvalidRequestID(t *testing.T) {
	_, err := commands.NewCompleteRequestCommand(mustDriverActor(t, 5), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
