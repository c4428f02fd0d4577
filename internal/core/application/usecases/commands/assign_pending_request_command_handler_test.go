package commands_test

import (
	"testing"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/application/usecases/commands"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/history"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignPendingRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignPendingRequestCommand()

	req := pendingRequest(t, 42, 1)

	requestRepo := new(MockRequestRepository)
	driverRepo := new(MockDriverRepository)
	historyRepo := new(MockHistoryRepository)

	requestRepo.On("GetFirstUnassignedPendingForUpdate", mock.Anything).Return(req, nil).Once()
	driverRepo.On("LockFirstAvailable", mock.Anything, (*int64)(nil)).
		Return(availableDriver(t, 5), nil).Once()
	requestRepo.On("Update", mock.Anything, req).Return(nil).Once()
	historyRepo.On("Add", mock.Anything, mock.MatchedBy(func(r *history.Record) bool {
		return r.Action() == history.ActionDriverAssigned &&
			r.Actor() == history.ActorSystem && r.ActorID() == nil
	})).Return(nil).Once()

	uow := new(MockDispatchUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RequestRepository").Return(requestRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("HistoryRepository").Return(historyRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignPendingRequestCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, req.Driver())
	assert.Equal(t, int64(5), *req.Driver())

	requestRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignPendingRequestCommandHandler_Handle_NoPendingRequests(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignPendingRequestCommand()

	requestRepo := new(MockRequestRepository)
	requestRepo.On("GetFirstUnassignedPendingForUpdate", mock.Anything).
		Return(nil, errs.NewObjectNotFoundError("request", nil)).Once()

	uow := new(MockDispatchUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RequestRepository").Return(requestRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignPendingRequestCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoPendingRequests)
}

func TestAssignPendingRequestCommandHandler_Handle_NoAvailableDrivers(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewAssignPendingRequestCommand()

	requestRepo := new(MockRequestRepository)
	driverRepo := new(MockDriverRepository)
	requestRepo.On("GetFirstUnassignedPendingForUpdate", mock.Anything).
		Return(pendingRequest(t, 42, 1), nil).Once()
	driverRepo.On("LockFirstAvailable", mock.Anything, (*int64)(nil)).
		Return(nil, errs.NewObjectNotFoundError("driver", nil)).Once()

	uow := new(MockDispatchUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RequestRepository").Return(requestRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignPendingRequestCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoAvailableDrivers)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
