package jobs

import (
	"fmt"
	"log/slog"

	"github.com/Khaled-elnabawy/smart-ambulance-api/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	requestAssignmentJob *RequestAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	assignPendingRequestHandler commands.AssignPendingRequestCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		requestAssignmentJob: NewRequestAssignmentJob(assignPendingRequestHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.requestAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start request assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.requestAssignmentJob.Stop()
}
