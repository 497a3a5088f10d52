package geo

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mud-ali/DIHacks2025/schema"
)

// SortKey selects the field masajid listings are ordered by.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByAddress  SortKey = "address"
	SortByDistance SortKey = "distance"
)

// SortMasajid returns a sorted copy of items; the input is never mutated.
// String keys compare with locale-aware collation. A nil distance sorts as 0,
// i.e. unlocated entries group with the origin rather than last — that
// matches what clients already display, so it stays.
func SortMasajid(items []schema.Masjid, key SortKey) []schema.Masjid {
	sorted := make([]schema.Masjid, len(items))
	copy(sorted, items)

	coll := collate.New(language.English, collate.Loose)

	sort.SliceStable(sorted, func(i, j int) bool {
		switch key {
		case SortByName:
			return coll.CompareString(sorted[i].Name, sorted[j].Name) < 0
		case SortByAddress:
			return coll.CompareString(sorted[i].Address, sorted[j].Address) < 0
		case SortByDistance:
			return distanceOrZero(sorted[i].Distance) < distanceOrZero(sorted[j].Distance)
		default:
			return false
		}
	})

	return sorted
}

func distanceOrZero(d *float64) float64 {
	if d == nil {
		return 0
	}
	return *d
}
