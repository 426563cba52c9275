package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/minjae-kw/meal-recommendation/internal/geo"
	"github.com/minjae-kw/meal-recommendation/internal/weather"
)

// KMAProvider reads ultra short-term observations from the Korea
// Meteorological Administration village forecast service. The API is
// addressed by forecast grid cell, so the coordinate is projected first.
type KMAProvider struct {
	name       string
	serviceKey string
	baseURL    string
	client     *http.Client
	backoff    Backoff
	circuit    *gobreaker.CircuitBreaker
	now        func() time.Time
}

func NewKMAProvider(client *http.Client, serviceKey string) *KMAProvider {
	return &KMAProvider{
		name:       "kma",
		serviceKey: serviceKey,
		baseURL:    "https://apis.data.go.kr/1360000/VilageFcstInfoService_2.0/getUltraSrtNcst",
		client:     client,
		backoff:    defaultBackoff,
		circuit:    newBreaker("kma"),
		now:        time.Now,
	}
}

func (p *KMAProvider) Name() string {
	return p.name
}

func (p *KMAProvider) Fetch(ctx context.Context, loc geo.Coordinate) (weather.Reading, error) {
	if p.serviceKey == "" {
		return weather.Reading{}, fmt.Errorf("kma service key is not configured")
	}

	grid, err := geo.ToGrid(loc)
	if err != nil {
		return weather.Reading{}, err
	}

	baseDate, baseTime := observationBase(p.now())

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("serviceKey", p.serviceKey)
		values.Set("dataType", "JSON")
		values.Set("numOfRows", "10")
		values.Set("pageNo", "1")
		values.Set("base_date", baseDate)
		values.Set("base_time", baseTime)
		values.Set("nx", strconv.Itoa(grid.X))
		values.Set("ny", strconv.Itoa(grid.Y))

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doWithResilience(ctx, p.client, p.circuit, p.backoff, buildRequest)
	if err != nil {
		return weather.Reading{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Response struct {
			Header struct {
				ResultCode string `json:"resultCode"`
				ResultMsg  string `json:"resultMsg"`
			} `json:"header"`
			Body struct {
				Items struct {
					Item []struct {
						Category  string `json:"category"`
						ObsrValue string `json:"obsrValue"`
					} `json:"item"`
				} `json:"items"`
			} `json:"body"`
		} `json:"response"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Reading{}, err
	}

	if code := payload.Response.Header.ResultCode; code != "00" {
		return weather.Reading{}, fmt.Errorf("kma result %s: %s", code, payload.Response.Header.ResultMsg)
	}

	reading := weather.Reading{
		ProviderName: p.name,
		ObservedAt:   p.now().UTC(),
	}

	for _, item := range payload.Response.Body.Items.Item {
		v, err := strconv.ParseFloat(item.ObsrValue, 64)
		if err != nil {
			continue
		}
		switch item.Category {
		case "T1H": // air temperature
			t := v
			reading.TemperatureC = &t
		case "REH": // relative humidity
			h := v
			reading.HumidityPct = &h
		}
	}

	if reading.TemperatureC == nil && reading.HumidityPct == nil {
		return weather.Reading{}, fmt.Errorf("kma response carried no usable observations")
	}
	return reading, nil
}

// observationBase returns the newest published observation slot. Hourly
// observations appear roughly 40 minutes past the hour, so before that the
// previous hour is the latest complete one.
func observationBase(now time.Time) (baseDate, baseTime string) {
	if now.Minute() < 40 {
		now = now.Add(-time.Hour)
	}
	return now.Format("20060102"), now.Format("15") + "00"
}
