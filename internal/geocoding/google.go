package geocoding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/olegmenkov/access-finder/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider is a struct that holds the client for Google Maps API
// and a logger for logging purposes. It is used to interact with the
// Google Maps geocoding services.
type GoogleProvider struct {
	client GoogleAPIClient // client is the Google Maps API client
	log    *slog.Logger    // log is the logger for logging operations
}

// GoogleAPIClient is the subset of the Google Maps client used by the
// provider. Defined as an interface to allow mocking in tests.
type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
	ReverseGeocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// NewGoogleProvider initializes a new GoogleProvider with the given API client and logger.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Geocode resolves a free-text place description to coordinates using the
// Google Maps Geocoding API. An empty response maps to ErrNotFound.
func (gp *GoogleProvider) Geocode(ctx context.Context, query string) (*models.GeoPoint, error) {
	gp.log.DebugContext(ctx, "Geocoding using Google Maps", "query", query)

	req := maps.GeocodingRequest{Address: query}
	results, err := gp.client.Geocode(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode query: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrNotFound
	}
	coords := results[0].Geometry.Location

	return &models.GeoPoint{Latitude: coords.Lat, Longitude: coords.Lng}, nil
}

// ReverseGeocode resolves coordinates to an address using the Google Maps
// Geocoding API. Google returns a single formatted line rather than
// components, so it is carried in the Formatted field as-is.
func (gp *GoogleProvider) ReverseGeocode(ctx context.Context, point models.GeoPoint) (*Address, error) {
	gp.log.DebugContext(ctx, "Reverse geocoding using Google Maps", "lat", point.Latitude, "lon", point.Longitude)

	req := maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: point.Latitude, Lng: point.Longitude},
	}
	results, err := gp.client.ReverseGeocode(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to reverse geocode point: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrNotFound
	}

	return &Address{Formatted: results[0].FormattedAddress}, nil
}
