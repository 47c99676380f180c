package ports

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
)

// ErrCollaboratorUnavailable marks a sibling service that did not answer in time
// or answered with a server error.
var ErrCollaboratorUnavailable = errors.New("collaborator unavailable")

// UserDirectory answers identity questions about users of the platform.
type UserDirectory interface {
	Exists(ctx context.Context, userID kernel.UUID) (bool, error)

	// GetRole returns the role name, for example "OWNER".
	GetRole(ctx context.Context, userID kernel.UUID) (string, error)
}

// EmployeeDirectory resolves restaurant employees.
type EmployeeDirectory interface {
	// RestaurantOf fails with order.ErrEmployeeNotAssociatedWithRestaurant when
	// the employee works nowhere.
	RestaurantOf(ctx context.Context, employeeID kernel.UUID) (kernel.UUID, error)

	EmailOf(ctx context.Context, employeeID kernel.UUID) (string, error)
}

// ClientDirectory resolves contact data of clients.
type ClientDirectory interface {
	PhoneOf(ctx context.Context, clientID kernel.UUID) (string, error)
	EmailOf(ctx context.Context, clientID kernel.UUID) (string, error)
}

// OrderReadyNotification tells a client that the order can be picked up.
type OrderReadyNotification struct {
	Phone          string
	OrderID        kernel.UUID
	Pin            string
	RestaurantName string
}

// Notifier delivers client notifications. Delivery is best-effort.
type Notifier interface {
	NotifyOrderReady(ctx context.Context, notification OrderReadyNotification) error
}
