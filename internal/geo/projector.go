package geo

import (
	"errors"
	"fmt"
	"math"
)

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GridCoordinate addresses one cell of the KMA village forecast grid
// (roughly 5 km per cell).
type GridCoordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var (
	// ErrOutOfDomain is returned when a coordinate falls outside the supported
	// bounding box. Caller-correctable; surface it as a validation failure.
	ErrOutOfDomain = errors.New("coordinate outside supported area")

	// ErrProjectionRange is returned when a projected cell lands outside the
	// forecast grid. Should not happen for in-domain input.
	ErrProjectionRange = errors.New("projected grid cell out of range")
)

// Supported bounding box and grid extents.
const (
	MinLat = 33.0
	MaxLat = 38.9
	MinLng = 124.0
	MaxLng = 132.0

	GridMaxX = 149
	GridMaxY = 253
)

// Lambert Conformal Conic parameters used by the village forecast grid.
const (
	earthRadiusKm = 6371.00877
	gridSpacingKm = 5.0

	stdParallel1 = 30.0
	stdParallel2 = 60.0
	refLat       = 38.0
	refLng       = 126.0
	refGridX     = 43.0
	refGridY     = 136.0
)

const degToRad = math.Pi / 180.0

// projection holds the precomputed cone constants shared by both directions.
type projection struct {
	re   float64 // earth radius in grid units
	sn   float64 // cone constant
	sf   float64 // scale factor
	ro   float64 // radius at the reference latitude
	olon float64 // reference longitude in radians
}

var proj = newProjection()

func newProjection() projection {
	re := earthRadiusKm / gridSpacingKm
	slat1 := stdParallel1 * degToRad
	slat2 := stdParallel2 * degToRad
	olat := refLat * degToRad
	olon := refLng * degToRad

	sn := math.Tan(math.Pi*0.25+slat2*0.5) / math.Tan(math.Pi*0.25+slat1*0.5)
	sn = math.Log(math.Cos(slat1)/math.Cos(slat2)) / math.Log(sn)

	sf := math.Tan(math.Pi*0.25 + slat1*0.5)
	sf = math.Pow(sf, sn) * math.Cos(slat1) / sn

	ro := math.Tan(math.Pi*0.25 + olat*0.5)
	ro = re * sf / math.Pow(ro, sn)

	return projection{re: re, sn: sn, sf: sf, ro: ro, olon: olon}
}

// ToGrid projects a geographic coordinate onto the forecast grid.
// Pure and safe for concurrent use.
func ToGrid(c Coordinate) (GridCoordinate, error) {
	if c.Lat < MinLat || c.Lat > MaxLat || c.Lng < MinLng || c.Lng > MaxLng {
		return GridCoordinate{}, fmt.Errorf("%w: lat=%.4f lng=%.4f", ErrOutOfDomain, c.Lat, c.Lng)
	}

	ra := math.Tan(math.Pi*0.25 + c.Lat*degToRad*0.5)
	ra = proj.re * proj.sf / math.Pow(ra, proj.sn)

	theta := c.Lng*degToRad - proj.olon
	if theta > math.Pi {
		theta -= 2.0 * math.Pi
	}
	if theta < -math.Pi {
		theta += 2.0 * math.Pi
	}
	theta *= proj.sn

	g := GridCoordinate{
		X: int(math.Floor(ra*math.Sin(theta) + refGridX + 0.5)),
		Y: int(math.Floor(proj.ro - ra*math.Cos(theta) + refGridY + 0.5)),
	}
	if g.X < 1 || g.X > GridMaxX || g.Y < 1 || g.Y > GridMaxY {
		return GridCoordinate{}, fmt.Errorf("%w: x=%d y=%d", ErrProjectionRange, g.X, g.Y)
	}
	return g, nil
}

// ToCoordinate inverts ToGrid. It is not an exact inverse: a grid cell spans
// about 5 km, so a round trip may move by up to ~0.03 degrees on either axis.
func ToCoordinate(g GridCoordinate) (Coordinate, error) {
	if g.X < 1 || g.X > GridMaxX || g.Y < 1 || g.Y > GridMaxY {
		return Coordinate{}, fmt.Errorf("%w: x=%d y=%d", ErrProjectionRange, g.X, g.Y)
	}

	xn := float64(g.X) - refGridX
	yn := proj.ro - float64(g.Y) + refGridY
	ra := math.Sqrt(xn*xn + yn*yn)
	if proj.sn < 0 {
		ra = -ra
	}

	alat := math.Pow(proj.re*proj.sf/ra, 1.0/proj.sn)
	alat = 2.0*math.Atan(alat) - math.Pi*0.5

	var theta float64
	switch {
	case math.Abs(xn) <= 0.0:
		theta = 0.0
	case math.Abs(yn) <= 0.0:
		theta = math.Pi * 0.5
		if xn < 0 {
			theta = -theta
		}
	default:
		theta = math.Atan2(xn, yn)
	}
	alon := theta/proj.sn + proj.olon

	return Coordinate{Lat: alat / degToRad, Lng: alon / degToRad}, nil
}
