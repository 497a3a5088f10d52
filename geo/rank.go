package geo

import (
	"fmt"
	"math"

	"github.com/mud-ali/DIHacks2025/schema"
)

var (
	ErrInvalidOrigin = fmt.Errorf("user latitude and longitude are required as numbers")
	ErrEmptyBatch    = fmt.Errorf("masajid array is required and cannot be empty")
)

// MasjidStub is the coordinate stub a client submits for batch ranking.
// Pointer fields distinguish "absent" from zero.
type MasjidStub struct {
	ID        string   `json:"id"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// RankedMasjid pairs a stub id with its mile distance from the origin.
// Distance is nil when the stub's coordinates were unusable; Error then says
// why.
type RankedMasjid struct {
	ID       string   `json:"id"`
	Distance *float64 `json:"distance"`
	Error    string   `json:"error,omitempty"`
}

// RankDistances computes the mile distance from origin to every stub.
// A bad origin or empty batch rejects the whole call; a bad entity only
// yields a nil-distance entry for itself. Output order matches input order
// and no sorting is applied.
func RankDistances(origin schema.Location, stubs []MasjidStub) ([]RankedMasjid, error) {
	if math.IsNaN(origin.Latitude) || math.IsNaN(origin.Longitude) {
		return nil, ErrInvalidOrigin
	}

	if len(stubs) == 0 {
		return nil, ErrEmptyBatch
	}

	ranked := make([]RankedMasjid, 0, len(stubs))
	for _, stub := range stubs {
		if stub.ID == "" || stub.Latitude == nil || stub.Longitude == nil ||
			math.IsNaN(*stub.Latitude) || math.IsNaN(*stub.Longitude) {
			ranked = append(ranked, RankedMasjid{
				ID:    stub.ID,
				Error: "Invalid masjid coordinates",
			})
			continue
		}

		distance := DistanceMiles(origin, schema.Location{
			Latitude:  *stub.Latitude,
			Longitude: *stub.Longitude,
		})
		ranked = append(ranked, RankedMasjid{
			ID:       stub.ID,
			Distance: &distance,
		})
	}

	return ranked, nil
}
