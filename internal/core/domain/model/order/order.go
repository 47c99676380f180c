package order

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"slices"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// Order is the aggregate root of a client order placed at one restaurant.
//
// Invariants:
//   - items is never empty
//   - employeeID is set from IN_PREPARATION on
//   - pin is set from READY on and kept after delivery
//   - status changes only through the transition methods
type Order struct {
	id           kernel.UUID
	clientID     kernel.UUID
	restaurantID kernel.UUID
	employeeID   *kernel.UUID
	status       Status
	pin          *string
	items        []Item
	createdAt    time.Time
	updatedAt    time.Time

	// version is the optimistic concurrency token, owned by the repository.
	version int64

	isConstructed bool
}

// NewOrder creates a PENDING order with createdAt = updatedAt = now.
func NewOrder(id, clientID, restaurantID kernel.UUID, items []Item, now time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	if err := errors.Join(id.Validate(), clientID.Validate(), restaurantID.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		clientID:      clientID,
		restaurantID:  restaurantID,
		status:        Pending,
		items:         slices.Clone(items),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds an order from persistence without running the
// transition rules.
func RestoreOrder(
	id, clientID, restaurantID kernel.UUID,
	employeeID *kernel.UUID,
	status Status,
	pin *string,
	items []Item,
	createdAt, updatedAt time.Time,
	version int64,
) (*Order, error) {
	if err := errors.Join(id.Validate(), clientID.Validate(), restaurantID.Validate(), status.Validate()); err != nil {
		return nil, fmt.Errorf("restore order %s: %w", id, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("restore order %s: %w", id, ErrEmptyOrder)
	}
	if employeeID == nil && status != Pending && status != Cancelled {
		return nil, errs.NewValueIsRequiredErrorWithCause("employee",
			fmt.Errorf("order %s is %s without an assigned employee", id, status))
	}

	return &Order{
		id:            id,
		clientID:      clientID,
		restaurantID:  restaurantID,
		employeeID:    employeeID,
		status:        status,
		pin:           pin,
		items:         slices.Clone(items),
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// EmployeeID returns the assigned employee, nil while PENDING.
func (o *Order) EmployeeID() *kernel.UUID {
	return o.employeeID
}

func (o *Order) Status() Status {
	return o.status
}

// Pin returns the delivery security PIN, nil before READY.
func (o *Order) Pin() *string {
	return o.pin
}

func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) Version() int64 {
	return o.version
}

// EnsureFromRestaurant fails with ErrOrderNotFromEmployeeRestaurant unless the
// order was placed at restaurantID.
func (o *Order) EnsureFromRestaurant(restaurantID kernel.UUID) error {
	if !o.restaurantID.IsEqual(restaurantID) {
		return fmt.Errorf("%w: order %s", ErrOrderNotFromEmployeeRestaurant, o.id)
	}
	return nil
}

// EnsureAssignedTo fails with ErrOrderNotAssignedToEmployee unless employeeID
// is preparing the order.
func (o *Order) EnsureAssignedTo(employeeID kernel.UUID) error {
	if o.employeeID == nil || !o.employeeID.IsEqual(employeeID) {
		return fmt.Errorf("%w: order %s", ErrOrderNotAssignedToEmployee, o.id)
	}
	return nil
}

// EnsurePlacedBy fails with ErrOrderNotFromClient unless clientID placed the order.
func (o *Order) EnsurePlacedBy(clientID kernel.UUID) error {
	if !o.clientID.IsEqual(clientID) {
		return fmt.Errorf("%w: order %s", ErrOrderNotFromClient, o.id)
	}
	return nil
}

// Assign hands a PENDING order to employeeID and moves it to IN_PREPARATION.
// The restaurant match is checked by the caller, who resolves the employee's restaurant.
func (o *Order) Assign(employeeID kernel.UUID, now time.Time) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.employeeID = &employeeID
	o.updatedAt = now
	return nil
}

// MarkReady stores pin and moves the order to READY. Only the assigned
// employee may do so.
func (o *Order) MarkReady(employeeID kernel.UUID, pin string, now time.Time) error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}
	if err = o.EnsureAssignedTo(employeeID); err != nil {
		return err
	}
	if kernel.IsBlank(pin) {
		return errs.NewValueIsRequiredError("pin")
	}

	o.status = newStatus
	o.pin = &pin
	o.updatedAt = now
	return nil
}

// Deliver confirms the hand-off with the PIN the client presents. A wrong PIN
// leaves the order READY.
func (o *Order) Deliver(employeeID kernel.UUID, pin string, now time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}
	if err = o.EnsureAssignedTo(employeeID); err != nil {
		return err
	}
	if o.pin == nil || subtle.ConstantTimeCompare([]byte(*o.pin), []byte(pin)) != 1 {
		return fmt.Errorf("%w: order %s", ErrInvalidSecurityPin, o.id)
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Cancel lets the order's own client withdraw a PENDING order.
func (o *Order) Cancel(clientID kernel.UUID, now time.Time) error {
	if err := o.EnsurePlacedBy(clientID); err != nil {
		return err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}
