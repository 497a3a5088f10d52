package geo

import (
	"context"
	"fmt"
	"math"

	"github.com/mud-ali/DIHacks2025/external/geocode"
	"github.com/mud-ali/DIHacks2025/schema"
)

var (
	ErrAddressRequired        = fmt.Errorf("address is required if coordinates are not provided")
	ErrLocationNotFound       = fmt.Errorf("unable to geocode address")
	ErrResolverNotInitialized = fmt.Errorf("location resolver is not initialized")
)

// LocationResolver turns a free-text address into a coordinate pair.
type LocationResolver interface {
	LookupCoordinate(ctx context.Context, query string) (float64, float64, error)
}

// GeocodeResolver resolves addresses through the forward-geocoding service.
type GeocodeResolver struct {
	client *geocode.Client
}

func NewGeocodeResolver(endpoint, apiKey string) *GeocodeResolver {
	return &GeocodeResolver{
		client: geocode.New(endpoint, apiKey),
	}
}

// LookupCoordinate takes the first candidate of the ordered result list. No
// retry and no ranking among candidates.
func (g *GeocodeResolver) LookupCoordinate(ctx context.Context, query string) (float64, float64, error) {
	results, err := g.client.Search(ctx, query)
	if err != nil {
		return 0, 0, err
	}

	if len(results) == 0 {
		return 0, 0, ErrLocationNotFound
	}

	return results[0].Latitude, results[0].Longitude, nil
}

var defaultResolver LocationResolver

func SetLocationResolver(resolver LocationResolver) {
	defaultResolver = resolver
}

// ResolveCoordinate produces the coordinate for a registration request.
// Explicit coordinates are trusted over derived ones: when both are present,
// numeric, and not the degenerate (0,0) pair, they are used as-is with no
// check against the address. The (0,0) pair is treated as "not provided"
// since zeroed client state would otherwise register in the Gulf of Guinea.
func ResolveCoordinate(ctx context.Context, lat, lng *float64, address string) (schema.Location, error) {
	if lat != nil && lng != nil &&
		!math.IsNaN(*lat) && !math.IsNaN(*lng) &&
		!(*lat == 0 && *lng == 0) {
		return schema.Location{Latitude: *lat, Longitude: *lng}, nil
	}

	if address == "" {
		return schema.Location{}, ErrAddressRequired
	}

	if defaultResolver == nil {
		return schema.Location{}, ErrResolverNotInitialized
	}

	resolvedLat, resolvedLng, err := defaultResolver.LookupCoordinate(ctx, address)
	if err != nil {
		return schema.Location{}, err
	}

	return schema.Location{Latitude: resolvedLat, Longitude: resolvedLng}, nil
}
