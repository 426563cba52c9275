// Package recommend contains the deterministic scoring pipeline that turns
// weather, satiety and historical preference signals into a ranked list of
// food categories. Every function here is a pure computation over its
// inputs and safe for concurrent use.
package recommend

import (
	"fmt"
	"sort"

	"github.com/minjae-kw/meal-recommendation/internal/catalog"
	"github.com/minjae-kw/meal-recommendation/internal/weather"
)

// ScoredCategory is a catalog entry with its computed score, 1-based rank
// and a human-readable justification.
type ScoredCategory struct {
	catalog.Category
	Score  float64 `json:"score"`
	Rank   int     `json:"rank"`
	Reason string  `json:"reason"`
}

// humidityServeMatrix scores a serving temperature against the current
// humidity class. Rows: humidity; columns: serve temperature.
var humidityServeMatrix = map[weather.HumidityClass]map[catalog.ServeTemperature]float64{
	weather.HumidityHigh:     {catalog.ServeCold: 3, catalog.ServeWarm: 2, catalog.ServeHot: 1},
	weather.HumidityModerate: {catalog.ServeCold: 2, catalog.ServeWarm: 3, catalog.ServeHot: 2},
	weather.HumidityLow:      {catalog.ServeCold: 1, catalog.ServeWarm: 2, catalog.ServeHot: 3},
}

// ScoreByWeather ranks every catalog category by how well its serving
// temperature matches the current humidity alone.
func ScoreByWeather(cond weather.Conditions) []ScoredCategory {
	cats := catalog.All()
	scored := make([]ScoredCategory, 0, len(cats))
	for _, cat := range cats {
		score, reason := matrixScore(cond.Humidity, cat.Serve)
		scored = append(scored, ScoredCategory{Category: cat, Score: score, Reason: reason})
	}
	rank(scored)
	return scored
}

// matrixScore resolves one cell of the humidity matrix. A hot-or-cold
// category takes the better of its cold and warm servings, and the reason
// records which one was picked.
func matrixScore(h weather.HumidityClass, serve catalog.ServeTemperature) (float64, string) {
	row, ok := humidityServeMatrix[h]
	if !ok {
		row = humidityServeMatrix[weather.HumidityModerate]
	}

	if serve == catalog.ServeHotOrCold {
		cold, warm := row[catalog.ServeCold], row[catalog.ServeWarm]
		if warm > cold {
			return warm, fmt.Sprintf("served warm suits %s humidity (%.0f pts)", h, warm)
		}
		return cold, fmt.Sprintf("served cold suits %s humidity (%.0f pts)", h, cold)
	}

	score := row[serve]
	return score, fmt.Sprintf("served %s against %s humidity (%.0f pts)", serve, h, score)
}

// rank sorts by score descending, breaks ties by category id ascending,
// and assigns contiguous 1-based ranks.
func rank(scored []ScoredCategory) {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].ID < scored[j].ID
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}
}
