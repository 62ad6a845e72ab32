package kernel

import (
	"errors"
	"fmt"
	"math"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	// EarthRadiusKm is the mean Earth radius used for great-circle distances.
	EarthRadiusKm = 6371.0

	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when a zero GeoPoint is used.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint")

// GeoPoint is a WGS84 latitude/longitude pair in degrees.
//
// Example:
//
//	jobSite, err := kernel.NewGeoPoint(12.9716, 77.5946)
//	if err != nil {
//	    return err
//	}
//	km := jobSite.DistanceKm(center.Location())
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint validates the coordinates. NaN and infinities are rejected together
// with values outside [-90, 90] / [-180, 180].
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if err := errors.Join(
		validateCoordinate("latitude", latitude, LatitudeMin, LatitudeMax),
		validateCoordinate("longitude", longitude, LongitudeMin, LongitudeMax),
	); err != nil {
		return GeoPoint{}, err
	}

	return GeoPoint{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// MustNewGeoPoint panics on invalid input. Intended for tests and fixtures.
func MustNewGeoPoint(latitude, longitude float64) GeoPoint {
	p, err := NewGeoPoint(latitude, longitude)
	if err != nil {
		panic(err)
	}
	return p
}

func validateCoordinate(name string, value, minValue, maxValue float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not a finite number", value))
	}
	if value < minValue || value > maxValue {
		return errs.NewValueIsOutOfRangeError(name, value, minValue, maxValue)
	}
	return nil
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// Validate reports whether the point was built by NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// IsEqual compares coordinates exactly.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// DistanceKm returns the haversine great-circle distance to other in kilometres.
func (p GeoPoint) DistanceKm(other GeoPoint) float64 {
	lat1 := toRadians(p.latitude)
	lat2 := toRadians(other.latitude)
	dLat := lat2 - lat1
	dLon := toRadians(other.longitude - p.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.latitude, p.longitude)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
