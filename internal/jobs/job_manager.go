package jobs

import (
	"fmt"
	"log/slog"

	"zepta/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	autoAssignmentJob *AutoAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	bulkAssignHandler commands.BulkAssignAgentsCommandHandler,
	assignSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		autoAssignmentJob: NewAutoAssignmentJob(bulkAssignHandler, assignSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.autoAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start auto-assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.autoAssignmentJob.Stop()
}
