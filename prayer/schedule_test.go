package prayer

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mud-ali/DIHacks2025/external/aladhan"
	"github.com/mud-ali/DIHacks2025/schema"
)

type stubSource struct {
	timings *aladhan.Timings
	err     error

	gotMethodIndex int
	gotDate        time.Time
}

func (s *stubSource) GetTimings(ctx context.Context, lat, lng float64, date time.Time, methodIndex int) (*aladhan.Timings, error) {
	s.gotMethodIndex = methodIndex
	s.gotDate = date
	return s.timings, s.err
}

func TestFetchRemapsTimings(t *testing.T) {
	source := &stubSource{
		timings: &aladhan.Timings{
			Fajr:    "05:12",
			Dhuhr:   "12:45",
			Asr:     "16:10",
			Maghrib: "19:32",
			Isha:    "21:00",
		},
	}

	fetcher := NewFetcher(source)
	times := fetcher.Fetch(context.Background(), schema.Location{Latitude: 40.7, Longitude: -74.0},
		time.Now(), "Muslim World League")

	assert.Equal(t, "05:12", times.Fajr)
	assert.Equal(t, "12:45", times.Dhuhr)
	assert.Equal(t, "16:10", times.Asr)
	assert.Equal(t, "19:32", times.Maghrib)
	assert.Equal(t, "21:00", times.Isha)
	assert.Equal(t, 3, source.gotMethodIndex)
}

func TestFetchUnknownMethodDefaultsToISNA(t *testing.T) {
	source := &stubSource{timings: &aladhan.Timings{}}
	fetcher := NewFetcher(source)

	fetcher.Fetch(context.Background(), schema.Location{}, time.Now(), "not a real method")
	assert.Equal(t, 2, source.gotMethodIndex)

	fetcher.Fetch(context.Background(), schema.Location{}, time.Now(), "Islamic Society of North America")
	assert.Equal(t, 2, source.gotMethodIndex)
}

func TestFetchFailureYieldsEmptySchedule(t *testing.T) {
	source := &stubSource{err: fmt.Errorf("connection refused")}
	fetcher := NewFetcher(source)

	times := fetcher.Fetch(context.Background(), schema.Location{Latitude: 1, Longitude: 1},
		time.Now(), "Kuwait")

	assert.True(t, times.IsEmpty())
}

func TestFetchPartialTimingsKeepPresentFields(t *testing.T) {
	source := &stubSource{
		timings: &aladhan.Timings{Fajr: "05:12"},
	}
	fetcher := NewFetcher(source)

	times := fetcher.Fetch(context.Background(), schema.Location{}, time.Now(), "")
	assert.Equal(t, "05:12", times.Fajr)
	assert.Empty(t, times.Isha)
	assert.False(t, times.IsEmpty())
}

func TestFetchAgainstTimingService(t *testing.T) {
	date := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/timings/7-3-2025", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("method"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":200,"data":{"timings":{"Fajr":"05:30","Dhuhr":"12:10","Asr":"15:20","Maghrib":"18:01","Isha":"19:30","Sunrise":"06:45"}}}`))
	}))
	defer server.Close()

	fetcher := NewFetcher(aladhan.New(server.URL))
	times := fetcher.Fetch(context.Background(), schema.Location{Latitude: 40.7, Longitude: -74.0},
		date, "unrecognized method name")

	assert.Equal(t, "05:30", times.Fajr)
	assert.Equal(t, "19:30", times.Isha)
}
