package centerfinder

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"marketplace/internal/core/domain/model/emergency"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// IndexedFinder asks a spatial index for the centers around a point and then
// applies the same selection as ScanFinder to those candidates only.
//
// The index is queried with the largest service radius seen at the last Sync,
// so every center that could cover the point is among the candidates. Until
// the first successful Sync, and whenever the index fails, it falls back to a
// full scan. Points and centers beyond the latitudes a GEO set can store are
// also served by a full scan.
type IndexedFinder struct {
	index   ports.CenterIndex
	source  CenterSource
	scan    *ScanFinder
	locator services.CenterLocator
	logger  *slog.Logger

	mu          sync.RWMutex
	synced      bool
	polar       bool
	maxRadiusKm float64
}

// indexableLatitude is the Web Mercator limit enforced by Redis GEOADD.
const indexableLatitude = 85.05112878

// Redis measures GEO distances on a 6372.797 km sphere, so its distances run
// slightly longer than kernel.EarthRadiusKm ones. The prefilter radius is padded
// so that no center covering the point is cut off; the locator still applies
// each center's own radius.
const (
	prefilterScale    = 1.001
	prefilterMarginKm = 0.01
)

func prefilterRadius(maxRadiusKm float64) float64 {
	return maxRadiusKm*prefilterScale + prefilterMarginKm
}

func indexable(p kernel.GeoPoint) bool {
	return math.Abs(p.Latitude()) <= indexableLatitude
}

var _ ports.CenterFinder = (*IndexedFinder)(nil)

func NewIndexedFinder(index ports.CenterIndex, source CenterSource, logger *slog.Logger) *IndexedFinder {
	if logger == nil {
		logger = slog.Default()
	}
	return &IndexedFinder{
		index:   index,
		source:  source,
		scan:    NewScanFinder(source),
		locator: services.NewCenterLocator(),
		logger:  logger.With("component", "center_finder"),
	}
}

// Sync reloads active centers into the index. It returns the number indexed.
func (f *IndexedFinder) Sync(ctx context.Context) (int, error) {
	centers, err := f.source.GetAllActive(ctx)
	if err != nil {
		return 0, err
	}

	if err = f.index.Replace(ctx, centers); err != nil {
		return 0, err
	}

	maxRadius, polar := 0.0, false
	for _, c := range centers {
		if c.ServiceRadiusKm() > maxRadius {
			maxRadius = c.ServiceRadiusKm()
		}
		if !indexable(c.Location()) {
			polar = true
		}
	}

	f.mu.Lock()
	f.synced = true
	f.polar = polar
	f.maxRadiusKm = maxRadius
	f.mu.Unlock()

	return len(centers), nil
}

func (f *IndexedFinder) FindNearest(ctx context.Context, point kernel.GeoPoint) (*emergency.Center, error) {
	if err := point.Validate(); err != nil {
		return nil, err
	}

	f.mu.RLock()
	synced, polar, radius := f.synced, f.polar, f.maxRadiusKm
	f.mu.RUnlock()

	if !synced || polar || !indexable(point) {
		return f.scan.FindNearest(ctx, point)
	}
	if radius == 0 {
		return nil, nil
	}

	ids, err := f.index.Candidates(ctx, point, prefilterRadius(radius))
	if err != nil {
		f.logger.Warn("center index unavailable, scanning", "error", err)
		return f.scan.FindNearest(ctx, point)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	// the database stays authoritative for radius and active flag
	centers, err := f.source.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return pick(f.locator, point, centers)
}
