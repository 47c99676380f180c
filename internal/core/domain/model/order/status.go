package order

import (
	"fmt"
	"strings"

	"foodcourt/internal/pkg/errs"
)

// Status is the lifecycle state of an order. The numeric values are persisted.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Pending
	InPreparation
	Ready
	Delivered
	Cancelled
)

var statusStrings = map[Status]string{
	Unknown:       "UNKNOWN",
	Pending:       "PENDING",
	InPreparation: "IN_PREPARATION",
	Ready:         "READY",
	Delivered:     "DELIVERED",
	Cancelled:     "CANCELLED",
}

// ActiveStatuses are the statuses of an order that is not yet delivered or cancelled.
func ActiveStatuses() []Status {
	return []Status{Pending, InPreparation, Ready}
}

// ParseStatus reads a status name case-insensitively. Unknown names are an
// input error, never an internal one.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range statusStrings {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

func (s Status) Validate() error {
	if _, ok := statusStrings[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return statusStrings[Unknown]
}

// IsActive reports whether the status blocks the client from placing another order.
func (s Status) IsActive() bool {
	return s == Pending || s == InPreparation || s == Ready
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Assign transitions PENDING to IN_PREPARATION.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return Unknown, NewInvalidStatusError(s, Pending)
	}
	return InPreparation, nil
}

// MarkReady transitions IN_PREPARATION to READY.
func (s Status) MarkReady() (Status, error) {
	if s != InPreparation {
		return Unknown, fmt.Errorf("%w: current status is %s", ErrOrderNotInPreparation, s)
	}
	return Ready, nil
}

// Deliver transitions READY to DELIVERED.
func (s Status) Deliver() (Status, error) {
	if s != Ready {
		return Unknown, NewInvalidStatusError(s, Ready)
	}
	return Delivered, nil
}

// Cancel transitions PENDING to CANCELLED.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return Unknown, fmt.Errorf("%w: current status is %s", ErrOrderNotCancellable, s)
	}
	return Cancelled, nil
}
