// Package errs provides standardized error types for the food-court application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines the error kinds every layer agrees on:
//   - ErrObjectNotFound: a restaurant, dish, order or user is absent
//   - ErrObjectAlreadyExists: a uniqueness rule is violated (duplicate NIT, second active order)
//   - ErrAccessDenied: the caller does not own or is not assigned to the resource
//   - ErrValueIsInvalid, ErrValueIsRequired, ErrValueIsOutOfRange: malformed input
//   - ErrInvalidState: the aggregate is not in the state the operation requires
//   - ErrVersionIsInvalid: a concurrent writer changed the aggregate first
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// BusinessError names a single rule violation (e.g. "DISH_NOT_ACTIVE") on top of a kind,
// so adapters can classify any error with errors.Is against the kinds and report its code.
package errs
