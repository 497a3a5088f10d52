package geolocation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mud-ali/DIHacks2025/schema"
)

type scriptedProvider struct {
	results []func() (schema.Location, error)
	opts    []Options
}

func (p *scriptedProvider) CurrentPosition(ctx context.Context, opts Options) (schema.Location, error) {
	p.opts = append(p.opts, opts)
	step := p.results[0]
	p.results = p.results[1:]
	return step()
}

func timeoutErr() (schema.Location, error) {
	return schema.Location{}, &Error{Code: 3, Kind: Timeout, Message: "request timed out"}
}

func unavailableErr() (schema.Location, error) {
	return schema.Location{}, &Error{Code: 2, Kind: PositionUnavailable, Message: "position unavailable"}
}

func TestAcquireThirdTierSucceeds(t *testing.T) {
	provider := &scriptedProvider{
		results: []func() (schema.Location, error){
			timeoutErr,
			timeoutErr,
			func() (schema.Location, error) {
				return schema.Location{Latitude: 51.5, Longitude: -0.12}, nil
			},
		},
	}

	result, err := NewAcquirer(provider).Acquire(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 51.5, result.Location.Latitude)
	assert.Equal(t, -0.12, result.Location.Longitude)
	assert.Equal(t, 3, result.Tier)
}

func TestAcquireTierConfigurations(t *testing.T) {
	provider := &scriptedProvider{
		results: []func() (schema.Location, error){
			timeoutErr,
			unavailableErr,
			timeoutErr,
		},
	}

	_, err := NewAcquirer(provider).Acquire(context.Background())
	assert.Error(t, err)

	assert.Len(t, provider.opts, 3)
	assert.Equal(t, Options{EnableHighAccuracy: true, Timeout: 15 * time.Second, MaximumAge: 0}, provider.opts[0])
	assert.Equal(t, Options{EnableHighAccuracy: false, Timeout: 10 * time.Second, MaximumAge: 5 * time.Minute}, provider.opts[1])
	assert.Equal(t, Options{EnableHighAccuracy: false, Timeout: 5 * time.Second, MaximumAge: 10 * time.Minute}, provider.opts[2])
}

func TestAcquireExhaustionIsDistinctTimeout(t *testing.T) {
	provider := &scriptedProvider{
		results: []func() (schema.Location, error){
			timeoutErr, timeoutErr, timeoutErr,
		},
	}

	_, err := NewAcquirer(provider).Acquire(context.Background())
	gErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, Timeout, gErr.Kind)
	assert.Equal(t, 3, gErr.Code)
	// distinguishes "gave up after the ladder" from a single browser timeout
	assert.Equal(t, "failed to get location after multiple attempts", gErr.Message)
}

func TestAcquirePermissionDeniedStopsImmediately(t *testing.T) {
	provider := &scriptedProvider{
		results: []func() (schema.Location, error){
			func() (schema.Location, error) {
				return schema.Location{}, &Error{Code: 1, Kind: PermissionDenied, Message: "denied"}
			},
		},
	}

	_, err := NewAcquirer(provider).Acquire(context.Background())
	gErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, PermissionDenied, gErr.Kind)
	assert.Len(t, provider.opts, 1)
}

func TestAcquireUnknownErrorStopsImmediately(t *testing.T) {
	provider := &scriptedProvider{
		results: []func() (schema.Location, error){
			func() (schema.Location, error) {
				return schema.Location{}, assert.AnError
			},
		},
	}

	_, err := NewAcquirer(provider).Acquire(context.Background())
	gErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, Unknown, gErr.Kind)
	assert.Len(t, provider.opts, 1)
}

func TestAcquireDeadlineCountsAsTimeout(t *testing.T) {
	provider := &scriptedProvider{
		results: []func() (schema.Location, error){
			func() (schema.Location, error) {
				return schema.Location{}, context.DeadlineExceeded
			},
			func() (schema.Location, error) {
				return schema.Location{Latitude: 1, Longitude: 2}, nil
			},
		},
	}

	result, err := NewAcquirer(provider).Acquire(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Tier)
}
