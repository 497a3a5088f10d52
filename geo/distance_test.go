package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mud-ali/DIHacks2025/schema"
)

var (
	newYork = schema.Location{Latitude: 40.7128, Longitude: -74.006}
	london  = schema.Location{Latitude: 51.5074, Longitude: -0.1278}
)

func TestDistanceMilesSymmetric(t *testing.T) {
	assert.Equal(t, DistanceMiles(newYork, london), DistanceMiles(london, newYork))
}

func TestDistanceMilesZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceMiles(newYork, newYork))
}

func TestDistanceMilesOneDegreeLatitudeAtEquator(t *testing.T) {
	a := schema.Location{Latitude: 0, Longitude: 0}
	b := schema.Location{Latitude: 1, Longitude: 0}

	assert.InDelta(t, 69.0, DistanceMiles(a, b), 0.5)
}

func TestDistanceMilesRoundedToFourDecimals(t *testing.T) {
	pairs := []struct {
		a, b schema.Location
	}{
		{newYork, london},
		{schema.Location{Latitude: 35.6762, Longitude: 139.6503}, newYork},
		{schema.Location{Latitude: -33.8688, Longitude: 151.2093}, london},
		{schema.Location{Latitude: 0.0001, Longitude: 0.0001}, schema.Location{Latitude: 0.0002, Longitude: 0.0002}},
	}

	for _, p := range pairs {
		d := DistanceMiles(p.a, p.b)
		scaled := d * 10000
		assert.InDelta(t, math.Round(scaled), scaled, 1e-6, "distance %v is not rounded to 4 decimals", d)
	}
}

func TestDistanceKmUsesKilometerRadius(t *testing.T) {
	a := schema.Location{Latitude: 0, Longitude: 0}
	b := schema.Location{Latitude: 1, Longitude: 0}

	// one degree of latitude is ~111 km
	assert.InDelta(t, 111.2, DistanceKm(a, b), 0.5)

	// the km variant is unrounded and must not be confused with the miles one
	assert.NotEqual(t, DistanceMiles(a, b), DistanceKm(a, b))
}
