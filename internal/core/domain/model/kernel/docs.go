// Package kernel provides the shared primitives of the food-court domain model.
//
// The package includes:
//   - UUID: identifiers of restaurants, dishes, orders and (opaque) users
//   - Page / PageResult: validated pagination of listings
//   - Role: user roles carried by the caller's token
//   - Validation primitives: blank, numeric and phone checks shared by the aggregates
//
// The primitives are immutable values and safe for concurrent use.
package kernel
