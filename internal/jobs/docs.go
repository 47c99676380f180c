// Package jobs provides scheduled background tasks for the food court service.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(replayHandler, jobs.ReplayConfig{Schedule: "@every 30s", Batch: 50}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// TraceabilityReplayJob drains the traceability outbox. Records that could not
// be appended to the traceability service when an order changed status are
// re-sent in batches, oldest first, and deleted once accepted.
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Overlapping runs are
// skipped and a panic inside a run is recovered.
package jobs
