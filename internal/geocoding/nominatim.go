package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/olegmenkov/access-finder/internal/models"
	"golang.org/x/time/rate"
)

// Nominatim endpoints for forward and reverse geocoding.
const (
	nominatimSearchURL  = "https://nominatim.openstreetmap.org/search"
	nominatimReverseURL = "https://nominatim.openstreetmap.org/reverse"
)

// NominatimProvider implements the Provider interface using OpenStreetMap's
// Nominatim API. This is a free geocoding service with usage limits
// (1 request/second for fair use), enforced here with a rate limiter.
type NominatimProvider struct {
	client       HTTPClient    // HTTP client for making requests
	searchURL    string        // Endpoint for forward geocoding
	reverseURL   string        // Endpoint for reverse geocoding
	cityHint     string        // Suffix appended to queries to pin them to the target city
	countryCodes string        // Country restriction for forward searches
	limiter      *rate.Limiter // Rate limiter per Nominatim usage policy
	log          *slog.Logger  // Logger for logging operations
	// userAgent is required by Nominatim usage policy
	userAgent string
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// nominatimSearchResult represents one element of the JSON response from the
// Nominatim search endpoint.
type nominatimSearchResult struct {
	Lat string `json:"lat"` // Latitude as string
	Lon string `json:"lon"` // Longitude as string
}

// nominatimReverseResult represents the JSON response from the Nominatim
// reverse endpoint, reduced to the address components we render.
type nominatimReverseResult struct {
	Address struct {
		Road        string `json:"road"`
		HouseNumber string `json:"house_number"`
		Hamlet      string `json:"hamlet"`
	} `json:"address"`
}

// ErrNominatimInvalidCoords is returned when the API responds with
// coordinates that cannot be parsed as floats.
var ErrNominatimInvalidCoords = errors.New("nominatim API returned invalid coordinates")

// NominatimOptions configures a NominatimProvider.
type NominatimOptions struct {
	CityHint     string // Appended to every forward query, e.g. "Москва, Россия"
	CountryCodes string // Comma-separated country codes, e.g. "ru"
	RateLimit    int    // Requests per second; Nominatim fair use is 1
}

// NewNominatimProvider creates a new Nominatim geocoding provider.
// Uses the public Nominatim API endpoints by default.
func NewNominatimProvider(opts NominatimOptions, log *slog.Logger) *NominatimProvider {
	const timeout = 10
	return newNominatim(&http.Client{Timeout: timeout * time.Second}, opts, log)
}

// NewNominatimProviderWithClient creates a Nominatim provider with a custom
// HTTP client. Useful for testing with mocked HTTP clients.
func NewNominatimProviderWithClient(client HTTPClient, opts NominatimOptions, log *slog.Logger) *NominatimProvider {
	return newNominatim(client, opts, log)
}

func newNominatim(client HTTPClient, opts NominatimOptions, log *slog.Logger) *NominatimProvider {
	if opts.RateLimit <= 0 {
		opts.RateLimit = 1
	}

	return &NominatimProvider{
		client:       client,
		searchURL:    nominatimSearchURL,
		reverseURL:   nominatimReverseURL,
		cityHint:     opts.CityHint,
		countryCodes: opts.CountryCodes,
		limiter:      rate.NewLimiter(rate.Limit(opts.RateLimit), opts.RateLimit),
		log:          log,
		// User-Agent MUST include valid contact info per Nominatim usage policy:
		// https://operations.osmfoundation.org/policies/nominatim/
		userAgent: "AccessFinder/1.0 (https://github.com/olegmenkov/access-finder)",
	}
}

// Geocode resolves a free-text place description to coordinates using the
// Nominatim search API, restricted to the configured country and returning
// the single best match. An access denial from the upstream (HTTP 403) is
// reported as ErrNotFound, same as an empty candidate list.
func (np *NominatimProvider) Geocode(ctx context.Context, query string) (*models.GeoPoint, error) {
	if err := np.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	np.log.DebugContext(ctx, "Geocoding using Nominatim", "query", query)

	fullQuery := query
	if np.cityHint != "" {
		fullQuery = query + ", " + np.cityHint
	}

	reqURL, err := url.Parse(np.searchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search URL: %w", err)
	}

	params := reqURL.Query()
	params.Set("q", fullQuery)
	params.Set("format", "jsonv2")
	params.Set("limit", "1") // Only need the top result
	if np.countryCodes != "" {
		params.Set("countrycodes", np.countryCodes)
	}
	reqURL.RawQuery = params.Encode()

	body, err := np.get(ctx, reqURL.String())
	if err != nil {
		return nil, err
	}

	var results []nominatimSearchResult
	if err = json.Unmarshal(body, &results); err != nil {
		np.log.ErrorContext(ctx, "Failed to parse Nominatim response", "error", err, "body", string(body))
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid latitude: %s", ErrNominatimInvalidCoords, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid longitude: %s", ErrNominatimInvalidCoords, results[0].Lon)
	}

	np.log.DebugContext(ctx, "Nominatim found result", "query", fullQuery, "lat", lat, "lon", lon)

	return &models.GeoPoint{Latitude: lat, Longitude: lon}, nil
}

// ReverseGeocode resolves coordinates to street-level address components
// using the Nominatim reverse API. Denial or absence of a usable address is
// reported as ErrNotFound; the caller substitutes the fallback text.
func (np *NominatimProvider) ReverseGeocode(ctx context.Context, point models.GeoPoint) (*Address, error) {
	if err := np.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	np.log.DebugContext(ctx, "Reverse geocoding using Nominatim", "lat", point.Latitude, "lon", point.Longitude)

	reqURL, err := url.Parse(np.reverseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse reverse URL: %w", err)
	}

	params := reqURL.Query()
	params.Set("lat", strconv.FormatFloat(point.Latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(point.Longitude, 'f', -1, 64))
	params.Set("format", "jsonv2")
	params.Set("zoom", "18")          // Street-level detail
	params.Set("addressdetails", "1") // Include the address component breakdown
	reqURL.RawQuery = params.Encode()

	body, err := np.get(ctx, reqURL.String())
	if err != nil {
		return nil, err
	}

	var result nominatimReverseResult
	if err = json.Unmarshal(body, &result); err != nil {
		np.log.ErrorContext(ctx, "Failed to parse Nominatim reverse response", "error", err, "body", string(body))
		return nil, fmt.Errorf("failed to decode nominatim reverse response: %w", err)
	}

	return &Address{
		Road:        result.Address.Road,
		HouseNumber: result.Address.HouseNumber,
		Hamlet:      result.Address.Hamlet,
	}, nil
}

// get executes a single GET request with the mandatory headers and returns
// the response body. HTTP 403 maps to ErrNotFound per the degradation policy.
func (np *NominatimProvider) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set required headers per Nominatim usage policy
	req.Header.Set("User-Agent", np.userAgent)

	resp, err := np.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute geocoding request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue
	case http.StatusForbidden:
		np.log.WarnContext(ctx, "Nominatim denied access, degrading to not-found", "url", rawURL)
		return nil, ErrNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		np.log.ErrorContext(ctx, "Nominatim API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("nominatim API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
