package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/olegmenkov/access-finder/internal/models"
)

// overpassBaseURL is the public Overpass query-interpreter endpoint.
const overpassBaseURL = "https://overpass-api.de/api/interpreter"

// Searcher executes a category search around an origin point and returns the
// raw matches. Implemented by Client; defined as an interface so the pipeline
// can be tested without the network.
type Searcher interface {
	Search(ctx context.Context, category models.Category, origin models.GeoPoint, radiusMeters int) ([]models.RawVenue, error)
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client queries a tag-based geodata backend through the Overpass API.
type Client struct {
	client    HTTPClient   // HTTP client for making requests
	baseURL   string       // Base URL for the Overpass interpreter
	log       *slog.Logger // Logger for logging operations
	userAgent string       // Client-identifying header required by the upstream usage policy
}

// overpassResponse represents the JSON response from the Overpass API,
// reduced to the element fields we consume.
type overpassResponse struct {
	Elements []struct {
		Lat  float64           `json:"lat"`
		Lon  float64           `json:"lon"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// NewClient creates a new Overpass client against the public interpreter endpoint.
func NewClient(log *slog.Logger) *Client {
	const timeout = 10
	return NewClientWithHTTP(&http.Client{Timeout: timeout * time.Second}, log)
}

// NewClientWithHTTP creates an Overpass client with a custom HTTP client.
// Useful for testing with mocked HTTP clients.
func NewClientWithHTTP(client HTTPClient, log *slog.Logger) *Client {
	return &Client{
		client:    client,
		baseURL:   overpassBaseURL,
		log:       log,
		userAgent: "AccessFinder/1.0 (https://github.com/olegmenkov/access-finder)",
	}
}

// Search executes the category filter against the backend within the given
// radius and returns the named matches. A single request is made per search.
//
// Degradation rules:
//   - unsupported category: empty result, no request is made
//   - upstream access denial (HTTP 403): empty result
//   - matched elements without a name tag: silently excluded
//
// Other transport and decoding failures are returned as errors for the caller
// to degrade at its own boundary.
func (c *Client) Search(
	ctx context.Context,
	category models.Category,
	origin models.GeoPoint,
	radiusMeters int,
) ([]models.RawVenue, error) {
	query, ok := BuildQuery(category, origin, radiusMeters)
	if !ok {
		c.log.DebugContext(ctx, "Unsupported category, skipping search", "category", string(category))
		return nil, nil
	}

	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	params := reqURL.Query()
	params.Set("data", query)
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute venue search request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// continue
	case http.StatusForbidden:
		c.log.WarnContext(ctx, "Overpass denied access, degrading to empty result", "category", string(category))
		return nil, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.ErrorContext(ctx, "Overpass API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("overpass API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result overpassResponse
	if err = json.Unmarshal(body, &result); err != nil {
		c.log.ErrorContext(ctx, "Failed to parse Overpass response", "error", err)
		return nil, fmt.Errorf("failed to decode overpass response: %w", err)
	}

	venues := make([]models.RawVenue, 0, len(result.Elements))
	for _, element := range result.Elements {
		name := element.Tags["name"]
		if name == "" {
			// Unnamed venues cannot be meaningfully presented to a user.
			continue
		}
		venues = append(venues, models.RawVenue{
			Name:  name,
			Point: models.GeoPoint{Latitude: element.Lat, Longitude: element.Lon},
		})
	}

	c.log.DebugContext(ctx, "Overpass search finished",
		"category", string(category),
		"matched", len(result.Elements),
		"named", len(venues),
	)

	return venues, nil
}
