package recommend

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/minjae-kw/meal-recommendation/internal/catalog"
	"github.com/minjae-kw/meal-recommendation/internal/history"
	"github.com/minjae-kw/meal-recommendation/internal/weather"
)

// Score composition constants. The caps are a soft upper bound, not a
// normalized percentage.
const (
	baseScore     = 10.0
	historyWeight = 50.0
	topCount      = 2
)

// Satiety levels. 3 means very hungry, 1 means full.
const (
	SatietyFull       = 1
	SatietyPeckish    = 2
	SatietyVeryHungry = 3
)

// heartyWhileFullPenalty is subtracted from hearty categories when the
// user reports being full.
const heartyWhileFullPenalty = 25.0

// ErrInsufficientCategories means the catalog cannot produce a top-2
// ranking. With the fixed catalog this indicates corruption and is fatal.
var ErrInsufficientCategories = errors.New("not enough categories to rank")

// Service combines weather, satiety and historical preferences into the
// final top-2 ranking. It is stateless apart from the history store handle.
type Service struct {
	store history.Store
}

func NewService(store history.Store) *Service {
	return &Service{store: store}
}

// TopCategories returns the two best categories for the given conditions,
// satiety level (1-3) and weekday. History lookup failures degrade to an
// empty preference map; scoring never fails for missing upstream data.
func (s *Service) TopCategories(cond weather.Conditions, satiety int, weekday time.Weekday) ([]ScoredCategory, error) {
	if satiety < SatietyFull || satiety > SatietyVeryHungry {
		return nil, fmt.Errorf("satiety level must be between 1 and 3, got %d", satiety)
	}

	scored := Score(cond, satiety, s.preferences(weekday))
	if len(scored) < topCount {
		return nil, fmt.Errorf("%w: have %d", ErrInsufficientCategories, len(scored))
	}
	return scored[:topCount], nil
}

func (s *Service) preferences(weekday time.Weekday) map[string]float64 {
	if s.store == nil {
		return nil
	}
	entries, err := s.store.ReadAll(&weekday)
	if err != nil {
		log.Printf("recommend: history read failed, scoring without preferences: %v", err)
		return nil
	}
	return AnalyzePreferences(entries, weekday)
}

// Score computes the full additive score for every catalog category and
// returns them ranked. Terms: base 10, weather up to 25, history up to 50,
// satiety up to 30 (with a penalty for hearty picks while full). The total
// is clamped at zero.
func Score(cond weather.Conditions, satiety int, prefs map[string]float64) []ScoredCategory {
	cats := catalog.All()
	scored := make([]ScoredCategory, 0, len(cats))

	for _, cat := range cats {
		total := baseScore
		reasons := []string{fmt.Sprintf("base (+%.0f)", baseScore)}

		pts, why := weatherTerm(cond, cat)
		total += pts
		reasons = append(reasons, why...)

		if aff := prefs[cat.Localized]; aff > 0 {
			hp := aff / maxAffinity * historyWeight
			total += hp
			reasons = append(reasons, fmt.Sprintf("often picked on this weekday (+%.1f)", hp))
		}

		if sp, swhy := satietyTerm(satiety, cat); sp != 0 {
			total += sp
			reasons = append(reasons, swhy)
		}

		if total < 0 {
			total = 0
		}

		scored = append(scored, ScoredCategory{
			Category: cat,
			Score:    total,
			Reason:   strings.Join(reasons, "; "),
		})
	}

	rank(scored)
	return scored
}

// weatherTerm scores how the category's serving temperature and the
// humidity affinity sets match current conditions.
func weatherTerm(cond weather.Conditions, cat catalog.Category) (float64, []string) {
	var pts float64
	var reasons []string

	switch cond.Temperature {
	case weather.TemperatureHot:
		switch cat.Serve {
		case catalog.ServeCold:
			pts += 15
			reasons = append(reasons, "cold dish for hot weather (+15)")
		case catalog.ServeHotOrCold:
			pts += 12
			reasons = append(reasons, "can be served cold in hot weather (+12)")
		}
	case weather.TemperatureCold:
		if cat.Serve == catalog.ServeHot {
			pts += 15
			reasons = append(reasons, "hot dish for cold weather (+15)")
			if bonus := catalog.ColdWeatherBonus(cat.Localized); bonus > 0 {
				pts += bonus
				reasons = append(reasons, fmt.Sprintf("extra warming on a cold day (+%.0f)", bonus))
			}
		}
	default:
		if cat.Serve == catalog.ServeWarm {
			pts += 9
			reasons = append(reasons, "warm dish for mild weather (+9)")
		}
	}

	switch cond.Humidity {
	case weather.HumidityHigh:
		if catalog.FreshOnHumid(cat.Localized) {
			pts += 10
			reasons = append(reasons, "refreshing when humid (+10)")
		}
	case weather.HumidityLow:
		if catalog.WarmingOnDry(cat.Localized) {
			pts += 10
			reasons = append(reasons, "soothing when the air is dry (+10)")
		}
	}

	return pts, reasons
}

// satietyTerm scores the category's satiety class against the reported
// hunger level. Unclassified categories take no term.
func satietyTerm(level int, cat catalog.Category) (float64, string) {
	class, ok := catalog.SatietyClassOf(cat.Localized)
	if !ok {
		return 0, ""
	}

	switch level {
	case SatietyVeryHungry:
		switch class {
		case catalog.SatietyHearty:
			return 30, "hearty pick for an empty stomach (+30)"
		case catalog.SatietyModerate:
			return 15, "filling enough when very hungry (+15)"
		}
	case SatietyPeckish:
		switch class {
		case catalog.SatietyModerate:
			return 25, "right portion for moderate hunger (+25)"
		case catalog.SatietyHearty:
			return 15, "still works for moderate hunger (+15)"
		case catalog.SatietyLight:
			return 10, "light option for moderate hunger (+10)"
		}
	case SatietyFull:
		switch class {
		case catalog.SatietyLight:
			return 30, "light pick on a full stomach (+30)"
		case catalog.SatietyModerate:
			return 10, "manageable on a full stomach (+10)"
		case catalog.SatietyHearty:
			return -heartyWhileFullPenalty, "too heavy on a full stomach (-25)"
		}
	}
	return 0, ""
}
