package weather

import (
	"context"
	"time"

	"github.com/minjae-kw/meal-recommendation/internal/geo"
)

// Reading is a single provider's raw observation for a coordinate.
// Fields the provider could not report stay nil.
type Reading struct {
	ProviderName string
	ObservedAt   time.Time

	TemperatureC *float64
	HumidityPct  *float64
}

// Provider abstracts an external weather source (e.g. KMA, OpenWeatherMap).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, loc geo.Coordinate) (Reading, error)
}
