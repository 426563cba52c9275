package recommend

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/minjae-kw/meal-recommendation/internal/catalog"
	"github.com/minjae-kw/meal-recommendation/internal/history"
	"github.com/minjae-kw/meal-recommendation/internal/weather"
)

func f(v float64) *float64 { return &v }

func hotHumid() weather.Conditions {
	return weather.Conditions{
		Temperature:       weather.TemperatureHot,
		Humidity:          weather.HumidityHigh,
		ActualTemperature: f(32),
		ActualHumidity:    f(80),
	}
}

func scoreOf(scored []ScoredCategory, localized string) (float64, bool) {
	for _, sc := range scored {
		if sc.Localized == localized {
			return sc.Score, true
		}
	}
	return 0, false
}

func TestTopCategoriesHotHumidVeryHungry(t *testing.T) {
	svc := NewService(history.NewMemoryStore())

	top, err := svc.TopCategories(hotHumid(), SatietyVeryHungry, time.Friday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected exactly 2 recommendations, got %d", len(top))
	}

	for i, sc := range top {
		if sc.Rank != i+1 {
			t.Fatalf("expected rank %d, got %d", i+1, sc.Rank)
		}
		if sc.Score < baseScore {
			t.Fatalf("score must include at least the base: %+v", sc)
		}
		if sc.Reason == "" {
			t.Fatalf("expected a reason string: %+v", sc)
		}
	}
	if top[0].Score < top[1].Score {
		t.Fatalf("scores must be non-increasing: %f then %f", top[0].Score, top[1].Score)
	}
	// Equal totals resolve by category id ascending.
	if top[0].Score == top[1].Score && top[0].ID > top[1].ID {
		t.Fatalf("tie must resolve by id ascending: %d before %d", top[0].ID, top[1].ID)
	}
}

func TestTopCategoriesIsIdempotent(t *testing.T) {
	store := history.NewMemoryStore()
	if err := store.Append(history.Entry{Weekday: time.Friday, RawText: "치킨 먹자", Kind: history.KindQuery}); err != nil {
		t.Fatal(err)
	}
	svc := NewService(store)

	first, err := svc.TopCategories(hotHumid(), SatietyVeryHungry, time.Friday)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.TopCategories(hotHumid(), SatietyVeryHungry, time.Friday)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs must yield identical output:\n%+v\n%+v", first, second)
	}
}

func TestSatietyPenaltyDominates(t *testing.T) {
	cond := weather.Neutral()

	for _, cat := range catalog.All() {
		class, ok := catalog.SatietyClassOf(cat.Localized)
		if !ok || class != catalog.SatietyHearty {
			continue
		}

		full := Score(cond, SatietyFull, nil)
		peckish := Score(cond, SatietyPeckish, nil)

		sFull, _ := scoreOf(full, cat.Localized)
		sPeckish, _ := scoreOf(peckish, cat.Localized)

		if sFull > sPeckish-15 {
			t.Fatalf("%s: full score %f must trail peckish score %f by at least 15", cat.Localized, sFull, sPeckish)
		}
	}
}

func TestScoreClampedAtZero(t *testing.T) {
	// A hearty category with no weather help while full would go negative
	// without the clamp.
	scored := Score(weather.Conditions{
		Temperature: weather.TemperatureHot,
		Humidity:    weather.HumidityModerate,
	}, SatietyFull, nil)

	for _, sc := range scored {
		if sc.Score < 0 {
			t.Fatalf("scores must never be negative: %+v", sc)
		}
	}
	if s, ok := scoreOf(scored, "한식"); !ok || s != 0 {
		t.Fatalf("expected korean to clamp to 0 while full in hot weather, got %f", s)
	}
}

func TestHistoryTermLiftsPreferredCategory(t *testing.T) {
	store := history.NewMemoryStore()
	for i := 0; i < 3; i++ {
		if err := store.Append(history.Entry{Weekday: time.Friday, RawText: "피자 최고", Kind: history.KindSelection, Category: "피자"}); err != nil {
			t.Fatal(err)
		}
	}
	svc := NewService(store)

	cond := weather.Neutral()
	top, err := svc.TopCategories(cond, SatietyPeckish, time.Friday)
	if err != nil {
		t.Fatal(err)
	}
	// Pizza: base 10 + warm-in-mild 9 + history 50 + moderate-hunger 25.
	if top[0].Localized != "피자" {
		t.Fatalf("expected pizza on top, got %+v", top[0])
	}
	if top[0].Score != 94 {
		t.Fatalf("expected pizza score 94, got %f", top[0].Score)
	}

	// Same history contributes nothing on another weekday.
	monday, err := svc.TopCategories(cond, SatietyPeckish, time.Monday)
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := scoreOf(monday, "피자"); s != 44 {
		t.Fatalf("expected pizza score 44 without history, got %f", s)
	}
}

type failingStore struct{}

func (failingStore) Append(history.Entry) error { return errors.New("disk gone") }
func (failingStore) ReadAll(*time.Weekday) ([]history.Entry, error) {
	return nil, errors.New("disk gone")
}

func TestHistoryFailureDegradesSilently(t *testing.T) {
	svc := NewService(failingStore{})

	top, err := svc.TopCategories(hotHumid(), SatietyPeckish, time.Friday)
	if err != nil {
		t.Fatalf("history failure must not break scoring: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(top))
	}
}

func TestTopCategoriesValidatesSatiety(t *testing.T) {
	svc := NewService(history.NewMemoryStore())
	for _, level := range []int{0, 4, -1} {
		if _, err := svc.TopCategories(weather.Neutral(), level, time.Friday); err == nil {
			t.Fatalf("expected error for satiety %d", level)
		}
	}
}
