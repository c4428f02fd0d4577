package commands_test

import (
	"testing"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/application/usecases/commands"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/driver"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/kernel"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/request"

	"github.com/stretchr/testify/require"
)

func mustRequesterActor(t *testing.T, id int64) commands.Actor {
	t.Helper()
	actor, err := commands.NewActor(commands.ActorKindRequester, id)
	require.NoError(t, err)
	return actor
}

func mustDriverActor(t *testing.T, id int64) commands.Actor {
	t.Helper()
	actor, err := commands.NewActor(commands.ActorKindDriver, id)
	require.NoError(t, err)
	return actor
}

func mustPickup(t *testing.T) kernel.Location {
	t.Helper()
	pickup, err := kernel.NewLocation(30.0444, 31.2357)
	require.NoError(t, err)
	return pickup
}

func pendingRequest(t *testing.T, id, requesterID int64) *request.Request {
	t.Helper()
	req, err := request.RestoreRequest(id, requesterID, nil, nil,
		request.KindEmergency, request.StatusPending, mustPickup(t), nil)
	require.NoError(t, err)
	return req
}

func assignedRequest(t *testing.T, id, requesterID, driverID int64) *request.Request {
	t.Helper()
	req, err := request.RestoreRequest(id, requesterID, &driverID, nil,
		request.KindEmergency, request.StatusPending, mustPickup(t), nil)
	require.NoError(t, err)
	return req
}

func acceptedRequest(t *testing.T, id, requesterID, driverID int64) *request.Request {
	t.Helper()
	vehicleID := int64(7)
	req, err := request.RestoreRequest(id, requesterID, &driverID, &vehicleID,
		request.KindEmergency, request.StatusAccepted, mustPickup(t), nil)
	require.NoError(t, err)
	return req
}

func arrivedRequest(t *testing.T, id, requesterID, driverID int64) *request.Request {
	t.Helper()
	vehicleID := int64(7)
	req, err := request.RestoreRequest(id, requesterID, &driverID, &vehicleID,
		request.KindEmergency, request.StatusArrived, mustPickup(t), nil)
	require.NoError(t, err)
	return req
}

func availableDriver(t *testing.T, id int64) *driver.Driver {
	t.Helper()
	vehicleID := int64(7)
	drv, err := driver.RestoreDriver(id, driver.StatusAvailable, &vehicleID, nil, nil)
	require.NoError(t, err)
	return drv
}

func busyDriver(t *testing.T, id int64) *driver.Driver {
	t.Helper()
	vehicleID := int64(7)
	drv, err := driver.RestoreDriver(id, driver.StatusBusy, &vehicleID, nil, nil)
	require.NoError(t, err)
	return drv
}
