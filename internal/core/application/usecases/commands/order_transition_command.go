package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrAssignOrderCommandIsNotConstructed = errors.New(
		"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
	)
	ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
		"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
	)
	ErrDeliverOrderCommandIsNotConstructed = errors.New(
		"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
	)
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// orderActor is the order and the authenticated user acting on it.
type orderActor struct {
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

func newOrderActor(orderID, actorID kernel.UUID) (orderActor, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return orderActor{}, err
	}
	return orderActor{orderID: orderID, actorID: actorID, guard: guard.NewConstructorGuard()}, nil
}

func (a orderActor) OrderID() kernel.UUID {
	return a.orderID
}

// AssignOrderCommand lets an employee take a pending order of their restaurant.
type AssignOrderCommand struct {
	orderActor
}

func NewAssignOrderCommand(orderID, employeeID kernel.UUID) (AssignOrderCommand, error) {
	a, err := newOrderActor(orderID, employeeID)
	return AssignOrderCommand{a}, err
}

func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

func (c AssignOrderCommand) EmployeeID() kernel.UUID {
	return c.actorID
}

// MarkOrderReadyCommand finishes the preparation of an order.
type MarkOrderReadyCommand struct {
	orderActor
}

func NewMarkOrderReadyCommand(orderID, employeeID kernel.UUID) (MarkOrderReadyCommand, error) {
	a, err := newOrderActor(orderID, employeeID)
	return MarkOrderReadyCommand{a}, err
}

func (c MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}

func (c MarkOrderReadyCommand) EmployeeID() kernel.UUID {
	return c.actorID
}

// DeliverOrderCommand hands a ready order to the client presenting pin.
type DeliverOrderCommand struct {
	orderActor

	pin string
}

func NewDeliverOrderCommand(orderID, employeeID kernel.UUID, pin string) (DeliverOrderCommand, error) {
	if kernel.IsBlank(pin) {
		return DeliverOrderCommand{}, errs.NewValueIsRequiredError("pin")
	}
	a, err := newOrderActor(orderID, employeeID)
	if err != nil {
		return DeliverOrderCommand{}, err
	}
	return DeliverOrderCommand{orderActor: a, pin: pin}, nil
}

func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

func (c DeliverOrderCommand) EmployeeID() kernel.UUID {
	return c.actorID
}

func (c DeliverOrderCommand) Pin() string {
	return c.pin
}

// CancelOrderCommand lets a client withdraw their own pending order.
type CancelOrderCommand struct {
	orderActor
}

func NewCancelOrderCommand(orderID, clientID kernel.UUID) (CancelOrderCommand, error) {
	a, err := newOrderActor(orderID, clientID)
	return CancelOrderCommand{a}, err
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) ClientID() kernel.UUID {
	return c.actorID
}
