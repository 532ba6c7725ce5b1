package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/katalvlaran/lvroute/geo"
	"github.com/katalvlaran/lvroute/location"
)

// RoundCoordinate rounds a coordinate to 5 decimal places (about 1.1 m),
// the precision cache keys are stored at.
func RoundCoordinate(v float64) float64 {
	return math.Round(v*1e5) / 1e5
}

// CachedDistance returns the cached distance from origin to dest.
// ok is false on a cache miss.
func (s *Store) CachedDistance(ctx context.Context, origin, dest geo.Point) (km float64, ok bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return 0, false, ErrClosed
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT distance_km FROM distance_cache
		WHERE origin_lat = ? AND origin_lng = ? AND dest_lat = ? AND dest_lng = ?`,
		RoundCoordinate(origin.Lat), RoundCoordinate(origin.Lng),
		RoundCoordinate(dest.Lat), RoundCoordinate(dest.Lng),
	).Scan(&km)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("store: get cached distance: %w", err)
	}

	return km, true, nil
}

// StoreDistance caches the distance from origin to dest, replacing any
// previous value. Only finite, non-negative distances are accepted.
func (s *Store) StoreDistance(ctx context.Context, origin, dest geo.Point, km float64) error {
	if math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
		return fmt.Errorf("store: distance %g is not cacheable", km)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return ErrClosed
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO distance_cache
		(origin_lat, origin_lng, dest_lat, dest_lng, distance_km)
		VALUES (?, ?, ?, ?, ?)`,
		RoundCoordinate(origin.Lat), RoundCoordinate(origin.Lng),
		RoundCoordinate(dest.Lat), RoundCoordinate(dest.Lng),
		km,
	)
	if err != nil {
		return fmt.Errorf("store: set cached distance: %w", err)
	}

	return nil
}

// ClearDistanceCache removes every cached distance.
func (s *Store) ClearDistanceCache(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return ErrClosed
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM distance_cache"); err != nil {
		return fmt.Errorf("store: clear distance cache: %w", err)
	}

	return nil
}

// CachedSource is a location.DistanceSource that answers from the
// distance cache and falls back to another source on a miss, storing
// finite results.
type CachedSource struct {
	store    *Store
	fallback location.DistanceSource

	hits   atomic.Int64
	misses atomic.Int64
}

var _ location.DistanceSource = (*CachedSource)(nil)

// CachedSource wraps fallback with the store's distance cache.
func (s *Store) CachedSource(fallback location.DistanceSource) *CachedSource {
	return &CachedSource{store: s, fallback: fallback}
}

// Distance implements location.DistanceSource.
func (c *CachedSource) Distance(ctx context.Context, a, b location.Record) (float64, error) {
	km, ok, err := c.store.CachedDistance(ctx, a.Point(), b.Point())
	if err != nil {
		return 0, err
	}
	if ok {
		c.hits.Add(1)
		return km, nil
	}

	c.misses.Add(1)
	if km, err = c.fallback.Distance(ctx, a, b); err != nil {
		return 0, err
	}
	if math.IsInf(km, 1) {
		return km, nil
	}
	if err = c.store.StoreDistance(ctx, a.Point(), b.Point(), km); err != nil {
		return 0, err
	}
	c.store.log.Debug("distance cached", "from", a.Capital, "to", b.Capital, "km", km)

	return km, nil
}

// Stats returns the number of cache hits and misses so far.
func (c *CachedSource) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
