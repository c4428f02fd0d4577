package history_test

import (
	"testing"
	"time"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/history"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Run("driver_action_with_actor_id", func(t *testing.T) {
		actorID := int64(5)

		rec, err := history.NewRecord(7, history.ActionDriverAccepted, history.ActorDriver, &actorID)

		require.NoError(t, err)
		require.NoError(t, rec.Validate())
		assert.Equal(t, int64(7), rec.RequestID())
		assert.Equal(t, "Driver Accepted", rec.Action())
		assert.Equal(t, history.ActorDriver, rec.Actor())
		require.NotNil(t, rec.ActorID())
		assert.Equal(t, int64(5), *rec.ActorID())
		assert.False(t, rec.CreatedAt().IsZero())
	})

	t.Run("system_action_without_actor_id", func(t *testing.T) {
		rec, err := history.NewRecord(7, history.ActionDriverAssigned, history.ActorSystem, nil)

		require.NoError(t, err)
		assert.Nil(t, rec.ActorID())
	})

	t.Run("rejects_empty_action", func(t *testing.T) {
		_, err := history.NewRecord(7, "", history.ActorSystem, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_invalid_request_id", func(t *testing.T) {
		_, err := history.NewRecord(0, history.ActionRequestCreated, history.ActorRequester, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_invalid_actor_kind", func(t *testing.T) {
		_, err := history.NewRecord(7, history.ActionRequestCreated, history.ActorUnknown, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRecord_Validate(t *testing.T) {
	var rec history.Record

	require.ErrorIs(t, rec.Validate(), history.ErrRecordIsNotConstructed)
}

func TestRestoreRecord(t *testing.T) {
	createdAt := time.Now().Add(-time.Hour)

	rec, err := history.RestoreRecord(1, 7, history.ActionRequestCreated, history.ActorRequester, nil, createdAt)

	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID())
	assert.True(t, rec.CreatedAt().Equal(createdAt))
}

func TestActorKindFromString(t *testing.T) {
	for _, k := range []history.ActorKind{history.ActorRequester, history.ActorDriver, history.ActorSystem} {
		parsed, err := history.ActorKindFromString(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := history.ActorKindFromString("user")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
