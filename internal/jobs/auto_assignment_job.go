package jobs

import (
	"context"
	"errors"
	"log/slog"

	"zepta/internal/core/application/usecases/commands"
	"zepta/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// AutoAssignmentJob runs the bulk auto-assignment sweep on a schedule,
// matching eligible orders with active delivery agents without operator
// intervention.
type AutoAssignmentJob struct {
	handler  commands.BulkAssignAgentsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAutoAssignmentJob creates a new job for the assignment sweep.
// The schedule is a cron expression with a seconds field, e.g.
// "0 * * * * *" for every minute.
func NewAutoAssignmentJob(
	handler commands.BulkAssignAgentsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *AutoAssignmentJob {
	return &AutoAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "auto_assignment_job"),
	}
}

// Start schedules the assignment sweep.
func (j *AutoAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewBulkAssignAgentsCommand()

		result, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			// An empty queue or an empty roster is the normal idle state.
			if !errors.Is(handleErr, commands.ErrNoEligibleOrders) &&
				!errors.Is(handleErr, commands.ErrNoActiveAgents) {
				j.logger.ErrorContext(ctx, "Auto-assignment sweep failed", "error", handleErr)
			}
			return
		}

		metrics.RecordSweep(result.Assigned, result.Failed)
		j.logger.InfoContext(ctx, "Auto-assignment sweep completed",
			"assigned", result.Assigned,
			"failed", result.Failed)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto-assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the assignment sweep job.
func (j *AutoAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto-assignment job stopped")
}
