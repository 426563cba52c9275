package weather

import (
	"time"

	"github.com/minjae-kw/meal-recommendation/internal/geo"
)

// AggregateReadings combines provider readings for one grid cell into a
// Snapshot. Each numeric field is averaged over the providers that actually
// reported it; a field nobody reported stays nil. The snapshot timestamp is
// the newest observation time.
func AggregateReadings(grid geo.GridCoordinate, readings []Reading) Snapshot {
	if len(readings) == 0 {
		return Snapshot{Grid: grid, Timestamp: time.Now().UTC()}
	}

	var (
		sumTemp, sumHumidity float64
		nTemp, nHumidity     int
	)

	providers := make([]string, 0, len(readings))
	var newestTS time.Time

	for _, r := range readings {
		if r.TemperatureC != nil {
			sumTemp += *r.TemperatureC
			nTemp++
		}
		if r.HumidityPct != nil {
			sumHumidity += *r.HumidityPct
			nHumidity++
		}
		if r.ObservedAt.After(newestTS) {
			newestTS = r.ObservedAt
		}
		providers = append(providers, r.ProviderName)
	}

	if newestTS.IsZero() {
		newestTS = time.Now().UTC()
	}

	snap := Snapshot{
		Grid:      grid,
		Timestamp: newestTS,
		Providers: providers,
	}
	if nTemp > 0 {
		avg := sumTemp / float64(nTemp)
		snap.TemperatureC = &avg
	}
	if nHumidity > 0 {
		avg := sumHumidity / float64(nHumidity)
		snap.HumidityPct = &avg
	}
	return snap
}
