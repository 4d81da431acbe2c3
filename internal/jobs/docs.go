// Package jobs provides scheduled background tasks for the service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds
// field in the schedule expression.
//
// # Available Jobs
//
// AutoAssignmentJob runs the bulk auto-assignment sweep on a configurable
// schedule, so eligible orders get agents even when no operator presses
// "Auto-Assign All" on the dashboard.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(bulkAssignHandler, "0 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep job treats an empty order queue and an empty agent roster as
// the normal idle state and stays quiet about them; every other error is
// logged. Sweep outcomes feed the Prometheus assignment counters.
package jobs
