package recommend

import (
	"strings"
	"time"

	"github.com/minjae-kw/meal-recommendation/internal/catalog"
	"github.com/minjae-kw/meal-recommendation/internal/common"
	"github.com/minjae-kw/meal-recommendation/internal/history"
)

// maxAffinity is the ceiling preference scores are normalized to.
const maxAffinity = 10.0

// AnalyzePreferences derives a per-category affinity score (0-10) for the
// given weekday by counting category keyword hits in past free text.
// The category with the most hits always scores exactly maxAffinity;
// categories with no hits are absent from the map. The full log is
// rescanned on every call, keeping results fresh at the cost of speed.
func AnalyzePreferences(entries []history.Entry, weekday time.Weekday) map[string]float64 {
	hits := make(map[string]int)

	for _, e := range entries {
		if e.Weekday != weekday {
			continue
		}
		text := strings.ToLower(strings.TrimSpace(e.RawText))
		if text == "" {
			continue
		}

		for _, cat := range catalog.All() {
			if n := common.CountOccurrences(text, catalog.Keywords(cat.ID)...); n > 0 {
				hits[cat.Localized] += n
			}
		}
	}

	if len(hits) == 0 {
		return map[string]float64{}
	}

	maxHits := 0
	for _, n := range hits {
		if n > maxHits {
			maxHits = n
		}
	}

	affinity := make(map[string]float64, len(hits))
	for name, n := range hits {
		affinity[name] = float64(n) / float64(maxHits) * maxAffinity
	}
	return affinity
}
