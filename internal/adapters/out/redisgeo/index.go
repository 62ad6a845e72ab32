// Package redisgeo keeps emergency center positions in a Redis GEO set and
// answers radius searches for the center finder.
package redisgeo

import (
	"context"
	"fmt"
	"math"

	"marketplace/internal/core/domain/model/emergency"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the sorted set holding center positions.
const DefaultKey = "emergency_centers:geo"

// Index implements ports.CenterIndex with GEOADD / GEOSEARCH.
type Index struct {
	client redis.UniversalClient
	key    string
}

var _ ports.CenterIndex = (*Index)(nil)

func NewIndex(client redis.UniversalClient, key string) *Index {
	if key == "" {
		key = DefaultKey
	}
	return &Index{client: client, key: key}
}

// NewClient opens a client for addr, which may be host:port or a redis:// URL.
func NewClient(addr string) (*redis.Client, error) {
	if opts, err := redis.ParseURL(addr); err == nil {
		return redis.NewClient(opts), nil
	}
	if addr == "" {
		return nil, fmt.Errorf("redis address is empty")
	}
	return redis.NewClient(&redis.Options{Addr: addr}), nil
}

// MaxLatitude is the largest absolute latitude GEOADD accepts.
const MaxLatitude = 85.05112878

// Replace rebuilds the set atomically: readers see either the old or the new content.
// Centers beyond MaxLatitude are left out.
func (i *Index) Replace(ctx context.Context, centers []*emergency.Center) error {
	locations := make([]*redis.GeoLocation, 0, len(centers))
	for _, c := range centers {
		if math.Abs(c.Location().Latitude()) > MaxLatitude {
			continue
		}
		locations = append(locations, &redis.GeoLocation{
			Name:      c.ID().String(),
			Longitude: c.Location().Longitude(),
			Latitude:  c.Location().Latitude(),
		})
	}

	_, err := i.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, i.key)
		if len(locations) > 0 {
			pipe.GeoAdd(ctx, i.key, locations...)
		}
		return nil
	})
	return err
}

// Candidates returns center ids within radiusKm of point, closest first.
func (i *Index) Candidates(ctx context.Context, point kernel.GeoPoint, radiusKm float64) ([]kernel.UUID, error) {
	if err := point.Validate(); err != nil {
		return nil, err
	}

	names, err := i.client.GeoSearch(ctx, i.key, &redis.GeoSearchQuery{
		Longitude:  point.Longitude(),
		Latitude:   point.Latitude(),
		Radius:     radiusKm,
		RadiusUnit: "km",
		Sort:       "ASC",
	}).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(names))
	for _, name := range names {
		id, parseErr := kernel.UUIDFromString(name)
		if parseErr != nil {
			return nil, fmt.Errorf("center index member %q: %w", name, parseErr)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
