package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/application/usecases/commands"
	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/observability"
)

// RequestAssignmentJob manages the scheduled sweep over unassigned pending
// requests. Runs every second so requests that found no driver at creation
// time get bound as soon as a driver frees up.
type RequestAssignmentJob struct {
	handler commands.AssignPendingRequestCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRequestAssignmentJob creates a new job for binding pending requests.
// Uses AssignPendingRequestCommandHandler to process one request per tick.
func NewRequestAssignmentJob(handler commands.AssignPendingRequestCommandHandler, logger *slog.Logger) *RequestAssignmentJob {
	return &RequestAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "request_assignment_job"),
	}
}

// Start begins the request assignment job to run every second.
func (j *RequestAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignPendingRequestCommand()

		start := time.Now()
		err := j.handler.Handle(ctx, cmd)
		observability.SweepDuration.Observe(time.Since(start).Seconds())

		if err != nil {
			// An empty queue and an empty driver pool are expected business
			// scenarios, not failures.
			if !errors.Is(err, commands.ErrNoPendingRequests) && !errors.Is(err, commands.ErrNoAvailableDrivers) {
				j.logger.ErrorContext(ctx, "Request assignment job failed", "error", err)
			}
			return
		}

		observability.AssignmentsTotal.WithLabelValues("sweep").Inc()
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Request assignment job started (running every second)")
	return nil
}

// Stop stops the request assignment job.
func (j *RequestAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Request assignment job stopped")
}
