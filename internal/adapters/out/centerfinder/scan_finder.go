// Package centerfinder implements ports.CenterFinder on top of the center
// repository, optionally narrowed by a spatial index.
package centerfinder

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/emergency"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// CenterSource loads reference centers.
type CenterSource interface {
	GetAllActive(ctx context.Context) ([]*emergency.Center, error)
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*emergency.Center, error)
}

// ScanFinder evaluates every active center. O(n) in the number of centers.
type ScanFinder struct {
	source  CenterSource
	locator services.CenterLocator
}

var _ ports.CenterFinder = (*ScanFinder)(nil)

func NewScanFinder(source CenterSource) *ScanFinder {
	return &ScanFinder{
		source:  source,
		locator: services.NewCenterLocator(),
	}
}

func (f *ScanFinder) FindNearest(ctx context.Context, point kernel.GeoPoint) (*emergency.Center, error) {
	centers, err := f.source.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}
	return pick(f.locator, point, centers)
}

func pick(locator services.CenterLocator, point kernel.GeoPoint, centers []*emergency.Center) (*emergency.Center, error) {
	center, err := locator.Nearest(point, centers)
	if errors.Is(err, services.ErrNoCenterInRange) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return center, nil
}
