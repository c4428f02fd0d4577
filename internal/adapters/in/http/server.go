// Package http exposes the dispatch use cases over a JSON REST API.
// It translates transport concerns (routing, binding, status codes) into
// commands and queries; no business rules live here.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/application/usecases/commands"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/application/usecases/queries"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createRequestHandler         commands.CreateRequestCommandHandler
	acceptRequestHandler         commands.AcceptRequestCommandHandler
	rejectRequestHandler         commands.RejectRequestCommandHandler
	markArrivedHandler           commands.MarkArrivedCommandHandler
	completeRequestHandler       commands.CompleteRequestCommandHandler
	cancelRequestHandler         commands.CancelRequestCommandHandler
	registerDriverHandler        commands.RegisterDriverCommandHandler
	setDriverAvailabilityHandler commands.SetDriverAvailabilityCommandHandler
	updateDriverLocationHandler  commands.UpdateDriverLocationCommandHandler

	// Query handlers
	getRequestHandler          queries.GetRequestQueryHandler
	getPendingRequestsHandler  queries.GetPendingRequestsQueryHandler
	getAvailableDriversHandler queries.GetAvailableDriversQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createRequestHandler commands.CreateRequestCommandHandler,
	acceptRequestHandler commands.AcceptRequestCommandHandler,
	rejectRequestHandler commands.RejectRequestCommandHandler,
	markArrivedHandler commands.MarkArrivedCommandHandler,
	completeRequestHandler commands.CompleteRequestCommandHandler,
	cancelRequestHandler commands.CancelRequestCommandHandler,
	registerDriverHandler commands.RegisterDriverCommandHandler,
	setDriverAvailabilityHandler commands.SetDriverAvailabilityCommandHandler,
	updateDriverLocationHandler commands.UpdateDriverLocationCommandHandler,
	getRequestHandler queries.GetRequestQueryHandler,
	getPendingRequestsHandler queries.GetPendingRequestsQueryHandler,
	getAvailableDriversHandler queries.GetAvailableDriversQueryHandler,
) *Server {
	return &Server{
		createRequestHandler:         createRequestHandler,
		acceptRequestHandler:         acceptRequestHandler,
		rejectRequestHandler:         rejectRequestHandler,
		markArrivedHandler:           markArrivedHandler,
		completeRequestHandler:       completeRequestHandler,
		cancelRequestHandler:         cancelRequestHandler,
		registerDriverHandler:        registerDriverHandler,
		setDriverAvailabilityHandler: setDriverAvailabilityHandler,
		updateDriverLocationHandler:  updateDriverLocationHandler,
		getRequestHandler:            getRequestHandler,
		getPendingRequestsHandler:    getPendingRequestsHandler,
		getAvailableDriversHandler:   getAvailableDriversHandler,
	}
}

// RegisterRoutes wires the API surface onto the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/requests", s.CreateRequest)
	api.GET("/requests/pending", s.GetPendingRequests)
	api.GET("/requests/:id", s.GetRequest)
	api.POST("/requests/:id/accept", s.AcceptRequest)
	api.POST("/requests/:id/reject", s.RejectRequest)
	api.POST("/requests/:id/arrived", s.MarkArrived)
	api.POST("/requests/:id/completed", s.CompleteRequest)
	api.POST("/requests/:id/cancel", s.CancelRequest)

	api.POST("/drivers", s.RegisterDriver)
	api.POST("/drivers/availability", s.SetDriverAvailability)
	api.POST("/drivers/location", s.UpdateDriverLocation)
	api.GET("/drivers/available", s.GetAvailableDrivers)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
