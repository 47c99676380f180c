package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/traceability"
)

// TraceabilityStore is the external log of order status changes and the
// analytics computed over it.
type TraceabilityStore interface {
	Append(ctx context.Context, record traceability.Record) error

	// GetByOrder returns the records of one order, oldest first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]traceability.Record, error)

	GetOrdersEfficiency(ctx context.Context, restaurantID kernel.UUID) ([]traceability.OrderEfficiency, error)

	// GetEmployeeRanking returns employees fastest first.
	GetEmployeeRanking(ctx context.Context, restaurantID kernel.UUID) ([]traceability.EmployeeRanking, error)
}

// OutboxEntry is a traceability record that could not be appended yet.
type OutboxEntry struct {
	ID        kernel.UUID
	Record    traceability.Record
	Attempts  int
	LastError string
}

// TraceabilityOutbox keeps records whose append failed until they are replayed.
type TraceabilityOutbox interface {
	Save(ctx context.Context, record traceability.Record, cause error) error

	// Pending returns at most limit entries, oldest first.
	Pending(ctx context.Context, limit int) ([]OutboxEntry, error)

	Delete(ctx context.Context, id kernel.UUID) error

	// MarkFailed records another unsuccessful replay of the entry.
	MarkFailed(ctx context.Context, id kernel.UUID, cause error) error
}
