package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/application/usecases/commands"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/application/usecases/queries"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/kernel"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/domain/model/request"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/pkg/errs"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/observability"
)

// Location is the wire representation of a geographic point.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewRequest is the body of POST /api/v1/requests.
type NewRequest struct {
	Kind          string     `json:"kind"`
	Pickup        Location   `json:"pickup"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
}

// Request is the wire representation of a transport request.
type Request struct {
	ID            int64      `json:"id"`
	RequesterID   int64      `json:"requester_id"`
	DriverID      *int64     `json:"driver_id,omitempty"`
	VehicleID     *int64     `json:"vehicle_id,omitempty"`
	Kind          string     `json:"kind"`
	Status        string     `json:"status"`
	Pickup        Location   `json:"pickup"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
}

// HistoryEntry is one audit record in a request view.
type HistoryEntry struct {
	Action    string    `json:"action"`
	ActorKind string    `json:"actor_kind"`
	ActorID   *int64    `json:"actor_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RequestView is the detailed view returned by GET /api/v1/requests/:id.
type RequestView struct {
	Request
	CreatedAt time.Time      `json:"created_at"`
	History   []HistoryEntry `json:"history"`
}

func toRequestBody(req *request.Request) Request {
	return Request{
		ID:          req.ID(),
		RequesterID: req.RequesterID(),
		DriverID:    req.Driver(),
		VehicleID:   req.Vehicle(),
		Kind:        req.Kind().String(),
		Status:      req.Status().String(),
		Pickup: Location{
			Latitude:  req.Pickup().Latitude(),
			Longitude: req.Pickup().Longitude(),
		},
		ScheduledTime: req.ScheduledTime(),
	}
}

// CreateRequest handles POST /api/v1/requests - registers a new transport request.
func (s *Server) CreateRequest(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body NewRequest
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	kind, err := request.KindFromString(body.Kind)
	if err != nil {
		return writeError(ctx, err)
	}

	pickup, err := kernel.NewLocation(body.Pickup.Latitude, body.Pickup.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateRequestCommand(actor, kind, pickup, body.ScheduledTime)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createRequestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	observability.RequestsCreatedTotal.Inc()
	if created.IsTentativelyAssigned() {
		observability.AssignmentsTotal.WithLabelValues("create").Inc()
	}

	return ctx.JSON(http.StatusCreated, toRequestBody(created))
}

// AcceptRequest handles POST /api/v1/requests/:id/accept - the bound driver
// commits to the request.
func (s *Server) AcceptRequest(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := requestIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptRequestCommand(actor, id)
	if err != nil {
		return writeError(ctx, err)
	}

	accepted, err := s.acceptRequestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRequestBody(accepted))
}

// RejectRequest handles POST /api/v1/requests/:id/reject - the bound driver
// declines; the request returns to the pool and is offered to the next driver.
func (s *Server) RejectRequest(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := requestIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRejectRequestCommand(actor, id)
	if err != nil {
		return writeError(ctx, err)
	}

	rejected, err := s.rejectRequestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	if rejected.IsTentativelyAssigned() {
		observability.AssignmentsTotal.WithLabelValues("reject").Inc()
	}

	return ctx.JSON(http.StatusOK, toRequestBody(rejected))
}

// MarkArrived handles POST /api/v1/requests/:id/arrived.
func (s *Server) MarkArrived(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := requestIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkArrivedCommand(actor, id)
	if err != nil {
		return writeError(ctx, err)
	}

	arrived, err := s.markArrivedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRequestBody(arrived))
}

// CompleteRequest handles POST /api/v1/requests/:id/completed.
func (s *Server) CompleteRequest(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := requestIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteRequestCommand(actor, id)
	if err != nil {
		return writeError(ctx, err)
	}

	completed, err := s.completeRequestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRequestBody(completed))
}

// CancelRequest handles POST /api/v1/requests/:id/cancel - the requester
// withdraws a request that has not been accepted yet.
func (s *Server) CancelRequest(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := requestIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelRequestCommand(actor, id)
	if err != nil {
		return writeError(ctx, err)
	}

	cancelled, err := s.cancelRequestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRequestBody(cancelled))
}

// GetRequest handles GET /api/v1/requests/:id - retrieves one request with
// its audit history.
func (s *Server) GetRequest(ctx echo.Context) error {
	id, err := requestIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetRequestQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getRequestHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	history := make([]HistoryEntry, len(view.History))
	for i, item := range view.History {
		history[i] = HistoryEntry{
			Action:    item.Action,
			ActorKind: item.ActorKind,
			ActorID:   item.ActorID,
			CreatedAt: item.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, RequestView{
		Request: Request{
			ID:          view.ID,
			RequesterID: view.RequesterID,
			DriverID:    view.DriverID,
			VehicleID:   view.VehicleID,
			Kind:        view.Kind,
			Status:      view.Status,
			Pickup: Location{
				Latitude:  view.PickupLatitude,
				Longitude: view.PickupLongitude,
			},
			ScheduledTime: view.ScheduledTime,
		},
		CreatedAt: view.CreatedAt,
		History:   history,
	})
}

// GetPendingRequests handles GET /api/v1/requests/pending.
func (s *Server) GetPendingRequests(ctx echo.Context) error {
	query := queries.NewGetPendingRequestsQuery()

	pending, err := s.getPendingRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Request, len(pending))
	for i, item := range pending {
		response[i] = Request{
			ID:          item.ID,
			RequesterID: item.RequesterID,
			DriverID:    item.DriverID,
			Kind:        item.Kind,
			Status:      request.StatusPending.String(),
			Pickup: Location{
				Latitude:  item.PickupLatitude,
				Longitude: item.PickupLongitude,
			},
			ScheduledTime: item.ScheduledTime,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
