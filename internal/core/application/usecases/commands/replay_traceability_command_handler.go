package commands

import (
	"context"
	"log/slog"

	"foodcourt/internal/core/ports"
)

// ReplayTraceabilityCommandHandler drains the traceability outbox. Entries
// are deleted once appended; a failed entry is marked and retried on the next run.
type ReplayTraceabilityCommandHandler struct {
	outbox ports.TraceabilityOutbox
	store  ports.TraceabilityStore
	logger *slog.Logger
}

func NewReplayTraceabilityCommandHandler(
	outbox ports.TraceabilityOutbox,
	store ports.TraceabilityStore,
	logger *slog.Logger,
) ReplayTraceabilityCommandHandler {
	return ReplayTraceabilityCommandHandler{
		outbox: outbox,
		store:  store,
		logger: logger.With("component", "traceability_replay"),
	}
}

// Handle returns how many entries were delivered.
func (h ReplayTraceabilityCommandHandler) Handle(ctx context.Context, cmd ReplayTraceabilityCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	entries, err := h.outbox.Pending(ctx, cmd.Batch())
	if err != nil {
		return 0, err
	}

	replayed := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return replayed, ctx.Err()
		}

		if appendErr := h.store.Append(ctx, entry.Record); appendErr != nil {
			h.logger.WarnContext(ctx, "traceability replay failed",
				"entry_id", entry.ID.String(),
				"order_id", entry.Record.OrderID.String(),
				"attempts", entry.Attempts+1,
				"error", appendErr,
			)
			if err = h.outbox.MarkFailed(ctx, entry.ID, appendErr); err != nil {
				return replayed, err
			}
			continue
		}

		if err = h.outbox.Delete(ctx, entry.ID); err != nil {
			return replayed, err
		}
		replayed++
	}

	return replayed, nil
}
