package services

import (
	"bytes"
	"errors"
	"math"
	"slices"

	"marketplace/internal/core/domain/model/emergency"
	"marketplace/internal/core/domain/model/kernel"
)

// ErrNoCenterInRange is returned when no active center covers the point.
var ErrNoCenterInRange = errors.New("no emergency center in range")

// CenterLocator picks the emergency center that should respond to a point.
//
// Business rules:
//   - only active centers are considered
//   - a center qualifies when the point lies within its own service radius
//   - the closest qualifying center by great-circle distance is selected, so a
//     nearer center with a small radius does not hide a farther one that covers
//     the point
//   - on equal distance the center with the smallest id wins
//
// Example usage:
//
//	locator := services.NewCenterLocator()
//	center, err := locator.Nearest(point, centers)
//	if errors.Is(err, services.ErrNoCenterInRange) {
//	    // nobody to route to
//	}
type CenterLocator struct{}

func NewCenterLocator() CenterLocator {
	return CenterLocator{}
}

// Nearest runs a linear scan over centers. The input order does not matter;
// candidates are visited in id order so ties resolve the same way everywhere.
func (l CenterLocator) Nearest(point kernel.GeoPoint, centers []*emergency.Center) (*emergency.Center, error) {
	if err := point.Validate(); err != nil {
		return nil, err
	}

	ordered := slices.Clone(centers)
	slices.SortStableFunc(ordered, func(a, b *emergency.Center) int {
		idA, idB := a.ID().Bytes(), b.ID().Bytes()
		return bytes.Compare(idA[:], idB[:])
	})

	var (
		best         *emergency.Center
		bestDistance = math.MaxFloat64
	)

	for _, c := range ordered {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if !c.IsActive() {
			continue
		}

		d := c.DistanceKm(point)
		if !c.Covers(d) {
			continue
		}
		if d < bestDistance {
			bestDistance = d
			best = c
		}
	}

	if best == nil {
		return nil, ErrNoCenterInRange
	}
	return best, nil
}
