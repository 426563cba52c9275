package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/minjae-kw/meal-recommendation/internal/geo"
)

// ErrNoReadings is returned when every provider failed for a grid cell.
var ErrNoReadings = errors.New("no provider readings available")

// Service fetches readings from all providers, aggregates them, and keeps
// the latest snapshot per grid cell.
type Service struct {
	providers []Provider
	maxAge    time.Duration

	mu     sync.RWMutex
	latest map[string]Snapshot
}

// NewService creates a Service. Snapshots older than maxAge are refetched;
// maxAge <= 0 disables caching.
func NewService(providers []Provider, maxAge time.Duration) *Service {
	return &Service{
		providers: providers,
		maxAge:    maxAge,
		latest:    make(map[string]Snapshot),
	}
}

func gridKey(g geo.GridCoordinate) string {
	return fmt.Sprintf("%d:%d", g.X, g.Y)
}

// CurrentConditions returns classified weather for the coordinate. Missing
// data is never an error here: when no provider reading is available the
// neutral moderate/moderate conditions are returned so scoring can proceed.
func (s *Service) CurrentConditions(ctx context.Context, loc geo.Coordinate) Conditions {
	snap, err := s.Snapshot(ctx, loc)
	if err != nil {
		log.Printf("weather: no reading for %.4f,%.4f; using neutral conditions: %v", loc.Lat, loc.Lng, err)
		return Neutral()
	}
	return Classify(snap.TemperatureC, snap.HumidityPct)
}

// Snapshot returns the latest snapshot for the coordinate's grid cell,
// fetching from providers when the cache is stale or empty.
func (s *Service) Snapshot(ctx context.Context, loc geo.Coordinate) (Snapshot, error) {
	grid, err := geo.ToGrid(loc)
	if err != nil {
		return Snapshot{}, err
	}

	key := gridKey(grid)

	s.mu.RLock()
	cached, ok := s.latest[key]
	s.mu.RUnlock()
	if ok && s.maxAge > 0 && time.Since(cached.Timestamp) <= s.maxAge {
		return cached, nil
	}

	snap, err := s.fetch(ctx, loc, grid)
	if err != nil {
		if ok {
			// Serve the stale snapshot rather than nothing.
			log.Printf("weather: fetch failed for cell %s, serving stale snapshot: %v", key, err)
			return cached, nil
		}
		return Snapshot{}, err
	}

	s.mu.Lock()
	s.latest[key] = snap
	s.mu.Unlock()
	return snap, nil
}

// Refresh fetches and caches a snapshot for the coordinate regardless of
// cache freshness. Used by the scheduler.
func (s *Service) Refresh(ctx context.Context, loc geo.Coordinate) error {
	grid, err := geo.ToGrid(loc)
	if err != nil {
		return err
	}

	snap, err := s.fetch(ctx, loc, grid)
	if err != nil {
		// Keep the last good snapshot if any.
		return err
	}

	s.mu.Lock()
	s.latest[gridKey(grid)] = snap
	s.mu.Unlock()
	return nil
}

// fetch queries all providers concurrently and aggregates whatever succeeded.
func (s *Service) fetch(ctx context.Context, loc geo.Coordinate, grid geo.GridCoordinate) (Snapshot, error) {
	if len(s.providers) == 0 {
		return Snapshot{}, fmt.Errorf("%w: no providers configured", ErrNoReadings)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		readings []Reading
	)

	for _, p := range s.providers {
		p := p
		wg.Add(1)
		go func() {
			defer wg.Done()

			r, err := p.Fetch(ctx, loc)
			if err != nil {
				// Log and continue; partial success is fine.
				log.Printf("weather: provider %s fetch failed for %.4f,%.4f: %v", p.Name(), loc.Lat, loc.Lng, err)
				return
			}

			mu.Lock()
			readings = append(readings, r)
			mu.Unlock()
		}()
	}

	wg.Wait()

	if len(readings) == 0 {
		return Snapshot{}, ErrNoReadings
	}
	return AggregateReadings(grid, readings), nil
}
