package request_test

import (
	"testing"
	"time"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/kernel"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/request"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPickup(t *testing.T) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(10.0, 20.0)
	require.NoError(t, err)
	return loc
}

func newEmergencyRequest(t *testing.T) *request.Request {
	t.Helper()
	req, err := request.NewRequest(1, request.KindEmergency, mustPickup(t), nil)
	require.NoError(t, err)
	require.NoError(t, req.SetID(1))
	return req
}

func TestNewRequest(t *testing.T) {
	t.Run("emergency_request_starts_pending_and_unbound", func(t *testing.T) {
		req, err := request.NewRequest(1, request.KindEmergency, mustPickup(t), nil)

		require.NoError(t, err)
		require.NoError(t, req.Validate())
		assert.Equal(t, request.StatusPending, req.Status())
		assert.Equal(t, int64(1), req.RequesterID())
		assert.Nil(t, req.Driver())
		assert.Nil(t, req.Vehicle())
		assert.False(t, req.IsTentativelyAssigned())
	})

	t.Run("scheduled_request_with_future_time", func(t *testing.T) {
		scheduled := time.Now().Add(2 * time.Hour)

		req, err := request.NewRequest(1, request.KindScheduled, mustPickup(t), &scheduled)

		require.NoError(t, err)
		require.NotNil(t, req.ScheduledTime())
		assert.True(t, req.ScheduledTime().Equal(scheduled))
	})

	t.Run("scheduled_request_with_past_time_is_invalid", func(t *testing.T) {
		scheduled := time.Now().Add(-time.Minute)

		_, err := request.NewRequest(1, request.KindScheduled, mustPickup(t), &scheduled)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("scheduled_request_without_time_is_invalid", func(t *testing.T) {
		_, err := request.NewRequest(1, request.KindScheduled, mustPickup(t), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_requester_id", func(t *testing.T) {
		_, err := request.NewRequest(0, request.KindEmergency, mustPickup(t), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid_kind", func(t *testing.T) {
		_, err := request.NewRequest(1, request.KindUnknown, mustPickup(t), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_pickup_is_invalid", func(t *testing.T) {
		var pickup kernel.Location

		_, err := request.NewRequest(1, request.KindEmergency, pickup, nil)

		require.Error(t, err)
	})
}

func TestRequest_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var req request.Request

		require.ErrorIs(t, req.Validate(), request.ErrRequestIsNotConstructed)
	})
}

func TestRequest_SetID(t *testing.T) {
	req, err := request.NewRequest(1, request.KindEmergency, mustPickup(t), nil)
	require.NoError(t, err)

	require.NoError(t, req.SetID(7))
	assert.Equal(t, int64(7), req.ID())

	require.ErrorIs(t, req.SetID(8), request.ErrIDAlreadyAssigned)
}

func TestRequest_AssignDriver(t *testing.T) {
	t.Run("binds_tentatively_without_changing_status", func(t *testing.T) {
		req := newEmergencyRequest(t)

		require.NoError(t, req.AssignDriver(5))

		assert.Equal(t, request.StatusPending, req.Status())
		require.NotNil(t, req.Driver())
		assert.Equal(t, int64(5), *req.Driver())
		assert.True(t, req.IsTentativelyAssigned())
		assert.True(t, req.IsBoundTo(5))
		assert.False(t, req.IsBoundTo(6))
	})

	t.Run("conflict_when_already_bound", func(t *testing.T) {
		req := newEmergencyRequest(t)
		require.NoError(t, req.AssignDriver(5))

		require.ErrorIs(t, req.AssignDriver(6), errs.ErrConflict)
	})

	t.Run("conflict_when_not_pending", func(t *testing.T) {
		req := newEmergencyRequest(t)
		require.NoError(t, req.AssignDriver(5))
		require.NoError(t, req.Accept(nil))

		require.ErrorIs(t, req.AssignDriver(6), errs.ErrConflict)
	})

	t.Run("invalid_driver_id", func(t *testing.T) {
		req := newEmergencyRequest(t)

		require.ErrorIs(t, req.AssignDriver(0), errs.ErrValueIsInvalid)
	})
}

func TestRequest_Accept(t *testing.T) {
	t.Run("pending_bound_request_becomes_accepted", func(t *testing.T) {
		req := newEmergencyRequest(t)
		require.NoError(t, req.AssignDriver(5))
		vehicleID := int64(3)

		require.NoError(t, req.Accept(&vehicleID))

		assert.Equal(t, request.StatusAccepted, req.Status())
		assert.True(t, req.IsBoundTo(5))
		require.NotNil(t, req.Vehicle())
		assert.Equal(t, int64(3), *req.Vehicle())
		assert.False(t, req.IsTentativelyAssigned())
	})

	t.Run("conflict_without_bound_driver", func(t *testing.T) {
		req := newEmergencyRequest(t)

		require.ErrorIs(t, req.Accept(nil), errs.ErrConflict)
	})

	t.Run("second_accept_is_a_conflict", func(t *testing.T) {
		req := newEmergencyRequest(t)
		require.NoError(t, req.AssignDriver(5))
		require.NoError(t, req.Accept(nil))

		err := req.Accept(nil)

		require.ErrorIs(t, err, errs.ErrConflict)

		var conflict *errs.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "accepted", conflict.CurrentState)
	})
}

func TestRequest_Reject(t *testing.T) {
	t.Run("clears_binding_and_stays_pending", func(t *testing.T) {
		req := newEmergencyRequest(t)
		require.NoError(t, req.AssignDriver(5))

		require.NoError(t, req.Reject())

		assert.Equal(t, request.StatusPending, req.Status())
		assert.Nil(t, req.Driver())
		assert.False(t, req.IsTentativelyAssigned())
	})

	t.Run("rebindable_after_reject", func(t *testing.T) {
		req := newEmergencyRequest(t)
		require.NoError(t, req.AssignDriver(5))
		require.NoError(t, req.Reject())

		require.NoError(t, req.AssignDriver(6))
		assert.True(t, req.IsBoundTo(6))
	})

	t.Run("conflict_without_bound_driver", func(t *testing.T) {
		req := newEmergencyRequest(t)

		require.ErrorIs(t, req.Reject(), errs.ErrConflict)
	})

	t.Run("conflict_once_accepted", func(t *testing.T) {
		req := newEmergencyRequest(t)
		require.NoError(t, req.AssignDriver(5))
		require.NoError(t, req.Accept(nil))

		require.ErrorIs(t, req.Reject(), errs.ErrConflict)
	})
}

func TestRequest_Lifecycle(t *testing.T) {
	t.Run("full_accept_arrive_complete_flow", func(t *testing.T) {
		req := newEmergencyRequest(t)
		require.NoError(t, req.AssignDriver(5))
		require.NoError(t, req.Accept(nil))

		require.NoError(t, req.MarkArrived())
		assert.Equal(t, request.StatusArrived, req.Status())
		assert.True(t, req.IsBoundTo(5))

		require.NoError(t, req.Complete())
		assert.Equal(t, request.StatusCompleted, req.Status())
		assert.Nil(t, req.Driver(), "binding is cleared on completion")
	})

	t.Run("complete_while_accepted_is_a_conflict", func(t *testing.T) {
		req := newEmergencyRequest(t)
		require.NoError(t, req.AssignDriver(5))
		require.NoError(t, req.Accept(nil))

		require.ErrorIs(t, req.Complete(), errs.ErrConflict)
	})

	t.Run("arrive_while_pending_is_a_conflict", func(t *testing.T) {
		req := newEmergencyRequest(t)

		require.ErrorIs(t, req.MarkArrived(), errs.ErrConflict)
	})
}

func TestRequest_Cancel(t *testing.T) {
	t.Run("pending_request_with_tentative_binding", func(t *testing.T) {
		req := newEmergencyRequest(t)
		require.NoError(t, req.AssignDriver(5))

		require.NoError(t, req.Cancel())

		assert.Equal(t, request.StatusCancelled, req.Status())
		assert.Nil(t, req.Driver())
	})

	t.Run("conflict_once_accepted", func(t *testing.T) {
		req := newEmergencyRequest(t)
		require.NoError(t, req.AssignDriver(5))
		require.NoError(t, req.Accept(nil))

		require.ErrorIs(t, req.Cancel(), errs.ErrConflict)
	})
}

func TestRestoreRequest(t *testing.T) {
	t.Run("restores_persisted_state", func(t *testing.T) {
		driverID := int64(5)
		vehicleID := int64(3)

		req, err := request.RestoreRequest(7, 1, &driverID, &vehicleID,
			request.KindEmergency, request.StatusAccepted, mustPickup(t), nil)

		require.NoError(t, err)
		assert.Equal(t, int64(7), req.ID())
		assert.Equal(t, request.StatusAccepted, req.Status())
		assert.True(t, req.IsBoundTo(5))
	})

	t.Run("rejects_driver_on_terminal_status", func(t *testing.T) {
		driverID := int64(5)

		_, err := request.RestoreRequest(7, 1, &driverID, nil,
			request.KindEmergency, request.StatusCompleted, mustPickup(t), nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("does_not_recheck_scheduled_time_against_clock", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)

		req, err := request.RestoreRequest(7, 1, nil, nil,
			request.KindScheduled, request.StatusPending, mustPickup(t), &past)

		require.NoError(t, err)
		require.NotNil(t, req.ScheduledTime())
	})
}
