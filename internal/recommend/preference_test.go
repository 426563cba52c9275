package recommend

import (
	"testing"
	"time"

	"github.com/minjae-kw/meal-recommendation/internal/history"
)

func TestAnalyzePreferencesNormalization(t *testing.T) {
	entries := []history.Entry{
		{Weekday: time.Friday, RawText: "피자 먹고 싶다", Kind: history.KindQuery},
		{Weekday: time.Friday, RawText: "오늘도 피자 시키자", Kind: history.KindSelection},
		{Weekday: time.Friday, RawText: "김치볶음밥 어때", Kind: history.KindQuery},
	}

	prefs := AnalyzePreferences(entries, time.Friday)

	// Pizza has the most hits, so it must score exactly 10.
	if got := prefs["피자"]; got != 10 {
		t.Fatalf("expected pizza affinity 10, got %f", got)
	}
	// Korean had half the hits.
	if got := prefs["한식"]; got != 5 {
		t.Fatalf("expected korean affinity 5, got %f", got)
	}
	// Categories without hits are absent.
	if _, ok := prefs["샐러드"]; ok {
		t.Fatal("zero-hit categories must be absent from the map")
	}
}

func TestAnalyzePreferencesFiltersWeekday(t *testing.T) {
	entries := []history.Entry{
		{Weekday: time.Monday, RawText: "치킨 먹자", Kind: history.KindQuery},
	}
	if prefs := AnalyzePreferences(entries, time.Friday); len(prefs) != 0 {
		t.Fatalf("expected empty map for other weekdays, got %v", prefs)
	}
}

func TestAnalyzePreferencesSkipsBlankEntries(t *testing.T) {
	entries := []history.Entry{
		{Weekday: time.Friday, RawText: "   ", Kind: history.KindQuery},
		{Weekday: time.Friday, RawText: "", Kind: history.KindQuery},
	}
	if prefs := AnalyzePreferences(entries, time.Friday); len(prefs) != 0 {
		t.Fatalf("expected empty map, got %v", prefs)
	}
}

func TestAnalyzePreferencesEmptyLog(t *testing.T) {
	if prefs := AnalyzePreferences(nil, time.Friday); len(prefs) != 0 {
		t.Fatalf("expected empty map, got %v", prefs)
	}
}

func TestAnalyzePreferencesMatchesSynonyms(t *testing.T) {
	entries := []history.Entry{
		// No category name, only curated synonyms of korean food.
		{Weekday: time.Tuesday, RawText: "된장찌개랑 불고기 정식", Kind: history.KindSelection},
	}
	prefs := AnalyzePreferences(entries, time.Tuesday)
	if got := prefs["한식"]; got != 10 {
		t.Fatalf("expected korean affinity 10 via synonyms, got %f", got)
	}
}
