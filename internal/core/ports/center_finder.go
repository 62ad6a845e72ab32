package ports

import (
	"context"

	"marketplace/internal/core/domain/model/emergency"
	"marketplace/internal/core/domain/model/kernel"
)

// CenterFinder resolves the emergency center responsible for a point.
// It returns (nil, nil) when no active center covers the point.
//
// Implementations may use any candidate source (full scan, spatial index) as
// long as the selection rules of services.CenterLocator are preserved.
type CenterFinder interface {
	FindNearest(ctx context.Context, point kernel.GeoPoint) (*emergency.Center, error)
}

// CenterIndex is a spatial prefilter for emergency centers.
type CenterIndex interface {
	// Candidates returns ids of centers within radiusKm of point.
	Candidates(ctx context.Context, point kernel.GeoPoint, radiusKm float64) ([]kernel.UUID, error)

	// Replace swaps the whole index content for centers.
	Replace(ctx context.Context, centers []*emergency.Center) error
}
