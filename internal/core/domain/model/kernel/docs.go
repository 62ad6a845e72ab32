// Package kernel provides the shared domain primitives of the marketplace core.
//
// The package includes:
//   - UUID: identifier value object used by every aggregate
//   - GeoPoint: a validated latitude/longitude pair with great-circle distance
//   - Money: an amount in integer minor units (cents)
//   - Role and Caller: the authenticated identity an operation is performed for
//
// All primitives are immutable values; zero values are invalid and fail Validate.
package kernel
