package weather

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/minjae-kw/meal-recommendation/internal/geo"
)

type stubProvider struct {
	name    string
	reading Reading
	err     error
	calls   atomic.Int64
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Fetch(ctx context.Context, loc geo.Coordinate) (Reading, error) {
	p.calls.Add(1)
	if p.err != nil {
		return Reading{}, p.err
	}
	return p.reading, nil
}

var seoul = geo.Coordinate{Lat: 37.5663, Lng: 126.9779}

func TestCurrentConditionsAveragesProviders(t *testing.T) {
	now := time.Now().UTC()
	a := &stubProvider{name: "a", reading: Reading{ProviderName: "a", ObservedAt: now, TemperatureC: f(30), HumidityPct: f(80)}}
	b := &stubProvider{name: "b", reading: Reading{ProviderName: "b", ObservedAt: now, TemperatureC: f(34), HumidityPct: f(70)}}

	svc := NewService([]Provider{a, b}, time.Minute)
	cond := svc.CurrentConditions(context.Background(), seoul)

	if cond.Temperature != TemperatureHot {
		t.Fatalf("expected hot temperature class, got %s", cond.Temperature)
	}
	if cond.Humidity != HumidityHigh {
		t.Fatalf("expected high humidity class, got %s", cond.Humidity)
	}
	if cond.ActualTemperature == nil || *cond.ActualTemperature != 32 {
		t.Fatalf("expected averaged temperature 32, got %+v", cond.ActualTemperature)
	}
	if cond.ActualHumidity == nil || *cond.ActualHumidity != 75 {
		t.Fatalf("expected averaged humidity 75, got %+v", cond.ActualHumidity)
	}
}

func TestCurrentConditionsFallsBackToNeutral(t *testing.T) {
	failing := &stubProvider{name: "down", err: errors.New("boom")}
	svc := NewService([]Provider{failing}, time.Minute)

	cond := svc.CurrentConditions(context.Background(), seoul)
	if cond != Neutral() {
		t.Fatalf("expected neutral conditions, got %+v", cond)
	}

	// No providers at all degrades the same way.
	empty := NewService(nil, time.Minute)
	if cond := empty.CurrentConditions(context.Background(), seoul); cond != Neutral() {
		t.Fatalf("expected neutral conditions without providers, got %+v", cond)
	}
}

func TestSnapshotServedFromCacheWhileFresh(t *testing.T) {
	p := &stubProvider{name: "a", reading: Reading{ProviderName: "a", ObservedAt: time.Now().UTC(), TemperatureC: f(20)}}
	svc := NewService([]Provider{p}, time.Hour)

	if _, err := svc.Snapshot(context.Background(), seoul); err != nil {
		t.Fatalf("first snapshot: %v", err)
	}
	if _, err := svc.Snapshot(context.Background(), seoul); err != nil {
		t.Fatalf("second snapshot: %v", err)
	}

	if got := p.calls.Load(); got != 1 {
		t.Fatalf("expected a single provider fetch, got %d", got)
	}
}

func TestSnapshotRejectsOutOfDomainCoordinate(t *testing.T) {
	svc := NewService(nil, time.Minute)
	_, err := svc.Snapshot(context.Background(), geo.Coordinate{Lat: 50, Lng: 10})
	if !errors.Is(err, geo.ErrOutOfDomain) {
		t.Fatalf("expected ErrOutOfDomain, got %v", err)
	}
}
