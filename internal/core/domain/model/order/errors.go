package order

import (
	"errors"
	"fmt"

	"foodcourt/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrEmptyOrder = errs.NewBusinessError(errs.ErrValueIsInvalid, "ORDER_EMPTY",
		"an order must contain at least one item")
	ErrInvalidQuantity = errs.NewBusinessError(errs.ErrValueIsInvalid, "ORDER_ITEM_QUANTITY_INVALID",
		"item quantity must be a positive integer")
	ErrDishNotFromRestaurant = errs.NewBusinessError(errs.ErrValueIsInvalid, "DISH_NOT_FROM_RESTAURANT",
		"dish does not belong to the order's restaurant")
	ErrDishNotActive = errs.NewBusinessError(errs.ErrValueIsInvalid, "DISH_NOT_ACTIVE",
		"dish is not active")
	ErrClientHasActiveOrder = errs.NewBusinessError(errs.ErrObjectAlreadyExists, "CLIENT_HAS_ACTIVE_ORDER",
		"client already has an order in progress")
	ErrOrderNotFound = errs.NewBusinessError(errs.ErrObjectNotFound, "ORDER_NOT_FOUND",
		"order not found")
	ErrEmployeeNotAssociatedWithRestaurant = errs.NewBusinessError(errs.ErrObjectNotFound,
		"EMPLOYEE_NOT_ASSOCIATED_WITH_RESTAURANT", "employee is not associated with any restaurant")
	ErrOrderNotFromEmployeeRestaurant = errs.NewBusinessError(errs.ErrAccessDenied,
		"ORDER_NOT_FROM_EMPLOYEE_RESTAURANT", "order does not belong to the employee's restaurant")
	ErrOrderNotAssignedToEmployee = errs.NewBusinessError(errs.ErrAccessDenied, "ORDER_NOT_ASSIGNED_TO_EMPLOYEE",
		"order is not assigned to the employee")
	ErrOrderNotFromClient = errs.NewBusinessError(errs.ErrAccessDenied, "ORDER_NOT_FROM_CLIENT",
		"order does not belong to the client")
	ErrInvalidOrderStatus = errs.NewBusinessError(errs.ErrInvalidState, "ORDER_STATUS_INVALID",
		"order status does not allow this operation")
	ErrOrderNotInPreparation = errs.NewBusinessError(errs.ErrInvalidState, "ORDER_NOT_IN_PREPARATION",
		"order is not in preparation")
	ErrInvalidSecurityPin = errs.NewBusinessError(errs.ErrInvalidState, "ORDER_SECURITY_PIN_INVALID",
		"security pin does not match")
	ErrOrderNotCancellable = errs.NewBusinessError(errs.ErrInvalidState, "ORDER_NOT_CANCELLABLE",
		"only pending orders can be cancelled")
)

// InvalidStatusError is ErrInvalidOrderStatus carrying the status the order was found in.
type InvalidStatusError struct {
	Current  Status
	Required Status
}

func NewInvalidStatusError(current, required Status) *InvalidStatusError {
	return &InvalidStatusError{Current: current, Required: required}
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("%s: current status is %s, required %s", ErrInvalidOrderStatus, e.Current, e.Required)
}

func (e *InvalidStatusError) Unwrap() error {
	return ErrInvalidOrderStatus
}
