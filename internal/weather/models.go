package weather

import (
	"time"

	"github.com/minjae-kw/meal-recommendation/internal/geo"
)

// TemperatureClass is the three-level temperature bucket used by scoring.
type TemperatureClass string

const (
	TemperatureHot      TemperatureClass = "hot"
	TemperatureModerate TemperatureClass = "moderate"
	TemperatureCold     TemperatureClass = "cold"
)

// HumidityClass is the three-level humidity bucket used by scoring.
type HumidityClass string

const (
	HumidityHigh     HumidityClass = "high"
	HumidityModerate HumidityClass = "moderate"
	HumidityLow      HumidityClass = "low"
)

// Conditions is the classified weather view the scoring pipeline consumes.
// The actual readings are kept for reporting; nil means "unknown".
type Conditions struct {
	Temperature       TemperatureClass `json:"temperatureClass"`
	Humidity          HumidityClass    `json:"humidityClass"`
	ActualTemperature *float64         `json:"actualTemperature"`
	ActualHumidity    *float64         `json:"actualHumidity"`
}

// Neutral is the fallback used when no reading is available. Scoring must
// keep working with it.
func Neutral() Conditions {
	return Conditions{Temperature: TemperatureModerate, Humidity: HumidityModerate}
}

// Snapshot is the aggregated view of provider readings for one grid cell.
type Snapshot struct {
	Grid         geo.GridCoordinate `json:"grid"`
	Timestamp    time.Time          `json:"timestamp"` // always UTC
	TemperatureC *float64           `json:"temperatureC"`
	HumidityPct  *float64           `json:"humidityPercent"`

	// Providers contributing to this snapshot.
	Providers []string `json:"providers,omitempty"`
}
