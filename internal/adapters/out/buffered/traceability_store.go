// Package buffered decorates the remote traceability store with a local
// outbox so records survive an unavailable traceability service.
package buffered

import (
	"context"
	"log/slog"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/traceability"
	"foodcourt/internal/core/ports"

	"github.com/pkg/errors"
)

var _ ports.TraceabilityStore = (*TraceabilityStore)(nil)

// TraceabilityStore stores a record in the outbox when the remote append
// fails. Reads go straight to the remote store.
type TraceabilityStore struct {
	remote ports.TraceabilityStore
	outbox ports.TraceabilityOutbox
	logger *slog.Logger
}

func NewTraceabilityStore(
	remote ports.TraceabilityStore,
	outbox ports.TraceabilityOutbox,
	logger *slog.Logger,
) *TraceabilityStore {
	return &TraceabilityStore{remote: remote, outbox: outbox, logger: logger.With("component", "traceability_outbox")}
}

// Append fails only when both the remote store and the outbox fail.
func (s *TraceabilityStore) Append(ctx context.Context, record traceability.Record) error {
	appendErr := s.remote.Append(ctx, record)
	if appendErr == nil {
		return nil
	}

	if err := s.outbox.Save(ctx, record, appendErr); err != nil {
		return errors.Wrapf(err, "append failed (%v) and outbox is unavailable", appendErr)
	}

	s.logger.InfoContext(ctx, "traceability record buffered",
		slog.String("order_id", record.OrderID.String()),
		slog.String("new_status", record.NewStatus.String()),
		slog.Any("error", appendErr),
	)
	return nil
}

func (s *TraceabilityStore) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]traceability.Record, error) {
	return s.remote.GetByOrder(ctx, orderID)
}

func (s *TraceabilityStore) GetOrdersEfficiency(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]traceability.OrderEfficiency, error) {
	return s.remote.GetOrdersEfficiency(ctx, restaurantID)
}

func (s *TraceabilityStore) GetEmployeeRanking(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]traceability.EmployeeRanking, error) {
	return s.remote.GetEmployeeRanking(ctx, restaurantID)
}
