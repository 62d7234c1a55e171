// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OrderCompletionJob sweeps FullyAllocated orders and completes those whose
// productions are all Completed. Completing a production already completes
// its orders in the same transaction; the sweep picks up orders that became
// fully allocated after their productions had finished.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(completeFulfilledOrdersHandler, "@every 1m", log)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs", "error", err)
//	}
//	defer jobManager.StopAll()
//
// Overlapping runs are skipped; a failed sweep is logged and retried on the
// next tick.
package jobs
