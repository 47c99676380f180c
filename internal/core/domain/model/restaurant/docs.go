// Package restaurant provides the Restaurant aggregate: a food-court stand
// registered under a unique NIT and owned by a user holding the OWNER role.
//
// Restaurants are validated once at registration and are immutable afterwards.
// Ownership checks for dishes and analytics go through IsOwnedBy / EnsureOwnedBy.
package restaurant
