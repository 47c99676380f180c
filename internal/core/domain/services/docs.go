// Package services provides domain services for rules that span more than one
// aggregate of the food court.
//
// The package includes:
//   - OrderPlacementPolicy: checks each ordered dish against the order's restaurant
//   - PinGenerator: issues the security PIN an order receives when it becomes READY
package services
