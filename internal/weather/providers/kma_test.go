package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/minjae-kw/meal-recommendation/internal/geo"
)

func TestObservationBase(t *testing.T) {
	cases := []struct {
		now      time.Time
		wantDate string
		wantTime string
	}{
		{time.Date(2024, 7, 12, 14, 45, 0, 0, time.UTC), "20240712", "1400"},
		{time.Date(2024, 7, 12, 14, 10, 0, 0, time.UTC), "20240712", "1300"},
		{time.Date(2024, 7, 12, 0, 5, 0, 0, time.UTC), "20240711", "2300"},
	}
	for _, tc := range cases {
		date, tm := observationBase(tc.now)
		if date != tc.wantDate || tm != tc.wantTime {
			t.Fatalf("observationBase(%v) = %s %s, want %s %s", tc.now, date, tm, tc.wantDate, tc.wantTime)
		}
	}
}

func TestKMAFetchParsesObservations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("nx"); got != "60" {
			t.Errorf("expected nx=60, got %s", got)
		}
		if got := r.URL.Query().Get("ny"); got != "127" {
			t.Errorf("expected ny=127, got %s", got)
		}
		w.Write([]byte(`{"response":{"header":{"resultCode":"00","resultMsg":"NORMAL_SERVICE"},` +
			`"body":{"items":{"item":[` +
			`{"category":"T1H","obsrValue":"29.5"},` +
			`{"category":"REH","obsrValue":"78"},` +
			`{"category":"RN1","obsrValue":"0"}]}}}}`))
	}))
	defer srv.Close()

	p := NewKMAProvider(srv.Client(), "test-key")
	p.baseURL = srv.URL

	reading, err := p.Fetch(context.Background(), geo.Coordinate{Lat: 37.579871128849334, Lng: 126.98935225645432})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.TemperatureC == nil || *reading.TemperatureC != 29.5 {
		t.Fatalf("temperature not parsed: %+v", reading.TemperatureC)
	}
	if reading.HumidityPct == nil || *reading.HumidityPct != 78 {
		t.Fatalf("humidity not parsed: %+v", reading.HumidityPct)
	}
}

func TestKMAFetchRequiresServiceKey(t *testing.T) {
	p := NewKMAProvider(http.DefaultClient, "")
	if _, err := p.Fetch(context.Background(), geo.Coordinate{Lat: 37.5, Lng: 127.0}); err == nil {
		t.Fatal("expected error without service key")
	}
}

func TestKMAFetchSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"header":{"resultCode":"03","resultMsg":"NO_DATA"}}}`))
	}))
	defer srv.Close()

	p := NewKMAProvider(srv.Client(), "test-key")
	p.baseURL = srv.URL

	if _, err := p.Fetch(context.Background(), geo.Coordinate{Lat: 37.5, Lng: 127.0}); err == nil {
		t.Fatal("expected error for non-zero result code")
	}
}
