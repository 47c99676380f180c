package jobs

import (
	"fmt"
	"log/slog"
)

// ReplayConfig schedules the traceability outbox replay.
type ReplayConfig struct {
	Schedule string
	Batch    int
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	traceabilityReplayJob *TraceabilityReplayJob
}

func NewJobManager(replayHandler ReplayHandler, replay ReplayConfig, logger *slog.Logger) *JobManager {
	return &JobManager{
		traceabilityReplayJob: NewTraceabilityReplayJob(replayHandler, replay.Schedule, replay.Batch, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.traceabilityReplayJob.Start(); err != nil {
		return fmt.Errorf("failed to start traceability replay job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.traceabilityReplayJob.Stop()
}
