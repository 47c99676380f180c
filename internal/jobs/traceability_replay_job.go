package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foodcourt/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultReplayTimeout bounds a single replay run.
const DefaultReplayTimeout = 20 * time.Second

// ReplayHandler drains the traceability outbox.
type ReplayHandler interface {
	Handle(ctx context.Context, cmd commands.ReplayTraceabilityCommand) (int, error)
}

// TraceabilityReplayJob re-sends buffered traceability records on a schedule.
// Runs never overlap; a tick that fires while a run is active is skipped.
type TraceabilityReplayJob struct {
	handler  ReplayHandler
	schedule string
	batch    int
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewTraceabilityReplayJob accepts any schedule the standard cron parser
// understands, including descriptors such as "@every 30s".
func NewTraceabilityReplayJob(handler ReplayHandler, schedule string, batch int, logger *slog.Logger) *TraceabilityReplayJob {
	logger = logger.With("component", "traceability_replay_job")
	return &TraceabilityReplayJob{
		handler:  handler,
		schedule: schedule,
		batch:    batch,
		timeout:  DefaultReplayTimeout,
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.DiscardLogger),
			cron.Recover(cron.DiscardLogger),
		)),
		logger: logger,
	}
}

func (j *TraceabilityReplayJob) Start() error {
	if _, err := commands.NewReplayTraceabilityCommand(j.batch); err != nil {
		return fmt.Errorf("replay batch: %w", err)
	}
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return fmt.Errorf("replay schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "traceability replay job started",
		"schedule", j.schedule, "batch", j.batch)
	return nil
}

func (j *TraceabilityReplayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "traceability replay job stopped")
}

func (j *TraceabilityReplayJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	cmd, err := commands.NewReplayTraceabilityCommand(j.batch)
	if err != nil {
		j.logger.ErrorContext(ctx, "traceability replay job failed", "error", err)
		return
	}

	replayed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "traceability replay job failed", "replayed", replayed, "error", err)
		return
	}
	if replayed > 0 {
		j.logger.InfoContext(ctx, "traceability records replayed", "replayed", replayed)
	}
}
