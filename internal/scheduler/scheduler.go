package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/minjae-kw/meal-recommendation/internal/geo"
	"github.com/minjae-kw/meal-recommendation/internal/weather"
)

// Scheduler periodically refreshes weather snapshots for the configured
// locations so that recommendation requests hit a warm cache.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	locations []geo.Coordinate
	interval  time.Duration
}

// New creates a new Scheduler.
func New(locations []geo.Coordinate, interval time.Duration, service *weather.Service) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		locations: locations,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		log.Println("scheduler: no locations configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: running weather refresh job")

		var wg sync.WaitGroup
		for _, loc := range s.locations {
			loc := loc
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := s.service.Refresh(ctx, loc); err != nil {
					log.Printf("scheduler: refresh failed for %.4f,%.4f: %v", loc.Lat, loc.Lng, err)
				}
			}()
		}
		wg.Wait()
		log.Println("scheduler: completed weather refresh job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
