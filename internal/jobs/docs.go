// Package jobs holds the background schedules of the dispatch system, built
// on github.com/robfig/cron/v3.
//
// The only job today is RequestAssignmentJob: a once-per-second sweep that
// binds the oldest unassigned pending request to the lowest-id available
// driver. Each tick handles at most one request, so a burst of requests
// drains over consecutive ticks and every binding stays one small atomic
// transaction. An empty queue or an empty driver pool ends the tick silently;
// anything else is logged as a failure.
//
// JobManager is the single entry point the composition root uses:
//
//	jobManager := jobs.NewJobManager(assignPendingRequestHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
package jobs
