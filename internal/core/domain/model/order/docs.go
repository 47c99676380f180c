// Package order provides the Order aggregate of the food court and its
// lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root owning its ordered list of items
//   - Item: a dish reference plus a positive quantity
//   - Status: the state machine enforcing the allowed transitions
//
// Lifecycle:
//
//	PENDING ──> IN_PREPARATION ──> READY ──> DELIVERED
//	   │
//	   └──> CANCELLED
//
// DELIVERED and CANCELLED are terminal. PENDING, IN_PREPARATION and READY are
// the active statuses; a client holds at most one active order at a time.
package order
