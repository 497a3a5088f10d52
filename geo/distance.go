package geo

import (
	"math"

	"github.com/mud-ali/DIHacks2025/schema"
)

const (
	earthRadiusMiles = 3959
	earthRadiusKm    = 6371
)

func haversine(a, b schema.Location, radius float64) float64 {
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Latitude*math.Pi/180)*math.Cos(b.Latitude*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return radius * c
}

// DistanceMiles is the great-circle distance in miles, rounded to 4 decimal
// digits. The radius and rounding must stay exactly as they are: clients
// compare these values against previously displayed ones.
func DistanceMiles(a, b schema.Location) float64 {
	return math.Round(haversine(a, b, earthRadiusMiles)*10000) / 10000
}

// DistanceKm is the unrounded great-circle distance in kilometers, used by
// the nearby-listing display path. Not interchangeable with DistanceMiles.
func DistanceKm(a, b schema.Location) float64 {
	return haversine(a, b, earthRadiusKm)
}
