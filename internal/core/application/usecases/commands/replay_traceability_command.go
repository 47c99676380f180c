package commands

import (
	"errors"

	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrReplayTraceabilityCommandIsNotConstructed = errors.New(
	"ReplayTraceabilityCommand must be created via NewReplayTraceabilityCommand constructor",
)

// MaxReplayBatch bounds one replay run.
const MaxReplayBatch = 500

// ReplayTraceabilityCommand re-sends up to batch outbox records to the traceability store.
type ReplayTraceabilityCommand struct {
	batch int

	guard guard.ConstructorGuard
}

func NewReplayTraceabilityCommand(batch int) (ReplayTraceabilityCommand, error) {
	if batch < 1 || batch > MaxReplayBatch {
		return ReplayTraceabilityCommand{}, errs.NewValueIsOutOfRangeError("batch", batch, 1, MaxReplayBatch)
	}
	return ReplayTraceabilityCommand{batch: batch, guard: guard.NewConstructorGuard()}, nil
}

func (c ReplayTraceabilityCommand) Validate() error {
	return c.guard.Validate(ErrReplayTraceabilityCommandIsNotConstructed)
}

func (c ReplayTraceabilityCommand) Batch() int {
	return c.batch
}
