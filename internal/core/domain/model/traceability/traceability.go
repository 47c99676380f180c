// Package traceability holds the append-only audit values of order status
// changes and the analytics views derived from them.
//
// The records are stored by an external traceability service. This service
// builds them from its own aggregates and reads back the derived views.
package traceability

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// ItemSnapshot freezes the dish name and unit price of an order line at the
// time of the transition.
type ItemSnapshot struct {
	DishID    kernel.UUID
	DishName  string
	UnitPrice int
	Quantity  int
}

// Record is one status change of one order. PreviousStatus is order.Unknown
// for the creation entry.
type Record struct {
	OrderID        kernel.UUID
	ClientID       kernel.UUID
	ClientEmail    string
	RestaurantID   kernel.UUID
	EmployeeID     *kernel.UUID
	EmployeeEmail  string
	PreviousStatus order.Status
	NewStatus      order.Status
	OccurredAt     time.Time
	Items          []ItemSnapshot
}

// NewRecord captures the current state of o right after a transition from previous.
func NewRecord(o *order.Order, previous order.Status, items []ItemSnapshot) Record {
	return Record{
		OrderID:        o.ID(),
		ClientID:       o.ClientID(),
		RestaurantID:   o.RestaurantID(),
		EmployeeID:     o.EmployeeID(),
		PreviousStatus: previous,
		NewStatus:      o.Status(),
		OccurredAt:     o.UpdatedAt(),
		Items:          items,
	}
}

// Total is the order amount at snapshot prices.
func (r Record) Total() int {
	total := 0
	for _, item := range r.Items {
		total += item.UnitPrice * item.Quantity
	}
	return total
}

// OrderEfficiency is the time a delivered order took from creation to delivery.
type OrderEfficiency struct {
	OrderID     kernel.UUID
	EmployeeID  *kernel.UUID
	StartedAt   time.Time
	CompletedAt time.Time
	Duration    time.Duration
}

// EmployeeRanking is an employee's position by average order duration; the
// fastest employee holds position 1.
type EmployeeRanking struct {
	Position        int
	EmployeeID      kernel.UUID
	EmployeeEmail   string
	AverageDuration time.Duration
	CompletedOrders int
}
