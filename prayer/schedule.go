package prayer

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mud-ali/DIHacks2025/consts"
	"github.com/mud-ali/DIHacks2025/external/aladhan"
	"github.com/mud-ali/DIHacks2025/schema"
)

// TimingSource fetches daily prayer timings for a coordinate and date.
type TimingSource interface {
	GetTimings(ctx context.Context, lat, lng float64, date time.Time, methodIndex int) (*aladhan.Timings, error)
}

// Fetcher resolves a masjid's daily schedule from the timing service.
type Fetcher struct {
	source TimingSource
}

func NewFetcher(source TimingSource) *Fetcher {
	return &Fetcher{source: source}
}

// Fetch returns the schedule for the given coordinate, date and method name.
// The fetch is best-effort: any upstream failure is logged and an empty
// schedule comes back, so registration proceeds without prayer times rather
// than failing the whole operation. No retry.
func (f *Fetcher) Fetch(ctx context.Context, loc schema.Location, date time.Time, methodName string) schema.PrayerTimes {
	methodIndex := consts.CalculationMethodIndex(methodName)

	timings, err := f.source.GetTimings(ctx, loc.Latitude, loc.Longitude, date, methodIndex)
	if err != nil {
		log.WithField("prefix", "prayer").WithError(err).Error("fail to fetch prayer times")
		return schema.PrayerTimes{}
	}

	return schema.PrayerTimes{
		Fajr:    timings.Fajr,
		Dhuhr:   timings.Dhuhr,
		Asr:     timings.Asr,
		Maghrib: timings.Maghrib,
		Isha:    timings.Isha,
	}
}
