// Package location resolves configured city names into coordinates.
package location

import (
	"fmt"

	"github.com/kelvins/geocoder"

	"github.com/minjae-kw/meal-recommendation/internal/geo"
)

// Resolve turns city/country pairs into coordinates using the Google
// geocoding API. Geocoding requires an API key; without one callers should
// fall back to a fixed default coordinate.
func Resolve(apiKey string, cities, countries []string) ([]geo.Coordinate, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("geocoder api key is not configured")
	}
	if len(cities) != len(countries) {
		return nil, fmt.Errorf("number of cities and countries must be the same")
	}

	geocoder.ApiKey = apiKey

	var locs []geo.Coordinate
	for i := range cities {
		loc, err := geocoder.Geocoding(geocoder.Address{
			City:    cities[i],
			Country: countries[i],
		})
		if err != nil {
			return nil, fmt.Errorf("geocoding %s,%s: %w", cities[i], countries[i], err)
		}
		locs = append(locs, geo.Coordinate{Lat: loc.Latitude, Lng: loc.Longitude})
	}
	return locs, nil
}
