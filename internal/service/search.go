package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegmenkov/access-finder/internal/geocoding"
	"github.com/olegmenkov/access-finder/internal/metrics"
	"github.com/olegmenkov/access-finder/internal/models"
	"github.com/olegmenkov/access-finder/internal/overpass"
	"github.com/olegmenkov/access-finder/internal/ranking"
	"github.com/olegmenkov/access-finder/internal/session"
	"golang.org/x/sync/errgroup"
)

// Errors the conversation layer maps to user-facing re-prompts.
var (
	// ErrLocationNotFound means the free-text location resolved to nothing;
	// the user should be asked for a location again.
	ErrLocationNotFound = errors.New("location not found")
	// ErrNoOrigin means a category was picked before a location was resolved.
	ErrNoOrigin = errors.New("no origin stored for this chat")
)

// SearchService drives the venue-discovery pipeline: geocode the user's
// location, query the geodata backend for accessible venues of the chosen
// category, rank them, and enrich each with a street address and a map link.
type SearchService struct {
	log           *slog.Logger       // Logger for logging service activities
	provider      geocoding.Provider // Forward and reverse geocoding provider
	venues        overpass.Searcher  // Venue search client
	sessions      session.Interface  // Per-chat conversation state and origin coordinate
	providerName  string             // Name of the geocoding provider for metrics labeling
	metrics       *metrics.Metrics   // Metrics for tracking pipeline performance
	radiusMeters  int                // Search radius around the origin point
	resultLimit   int                // Maximum number of venues returned per search
	enrichWorkers int                // Concurrency bound for address enrichment
}

// NewSearchService creates a new instance of SearchService.
func NewSearchService(
	log *slog.Logger,
	provider geocoding.Provider,
	venues overpass.Searcher,
	sessions session.Interface,
	providerName string,
	appMetrics *metrics.Metrics,
	radiusMeters int,
	resultLimit int,
	enrichWorkers int,
) *SearchService {
	if enrichWorkers <= 0 {
		enrichWorkers = 1
	}

	return &SearchService{
		log:           log,
		provider:      provider,
		venues:        venues,
		sessions:      sessions,
		providerName:  providerName,
		metrics:       appMetrics,
		radiusMeters:  radiusMeters,
		resultLimit:   resultLimit,
		enrichWorkers: enrichWorkers,
	}
}

// StartSearch begins a search conversation for the chat: the next expected
// turn is a free-text location.
func (ss *SearchService) StartSearch(ctx context.Context, chatID int64) error {
	if err := ss.sessions.SetState(ctx, chatID, session.StateAwaitingLocation); err != nil {
		return fmt.Errorf("failed to start search conversation: %w", err)
	}

	return nil
}

// ResolveLocation geocodes the user's free-text location and stores it as the
// chat's origin. Any provider failure, including upstream denial, is reported
// as ErrLocationNotFound so the conversation re-prompts instead of failing;
// the chat stays in the awaiting-location state in that case.
func (ss *SearchService) ResolveLocation(ctx context.Context, chatID int64, query string) (*models.GeoPoint, error) {
	startTime := time.Now()
	point, err := ss.provider.Geocode(ctx, query)
	ss.metrics.UpstreamSeconds.WithLabelValues(ss.providerName, "geocode").Observe(time.Since(startTime).Seconds())

	if err != nil {
		if !errors.Is(err, geocoding.ErrNotFound) {
			ss.log.WarnContext(ctx, "Geocoding failed, degrading to not-found",
				"chat", chatID, "query", query, "error", err)
		}
		return nil, ErrLocationNotFound
	}

	if err = ss.sessions.SaveOrigin(ctx, chatID, *point); err != nil {
		return nil, fmt.Errorf("failed to store origin: %w", err)
	}

	if err = ss.sessions.SetState(ctx, chatID, session.StateAwaitingCategory); err != nil {
		return nil, fmt.Errorf("failed to advance conversation state: %w", err)
	}

	ss.log.DebugContext(ctx, "Location resolved",
		"chat", chatID, "query", query, "lat", point.Latitude, "lon", point.Longitude)

	return point, nil
}

// Search runs the pipeline for the chat's stored origin and the chosen
// category, returning at most the configured number of venues, nearest first.
// Backend failures degrade to an empty list; an empty list is a valid result,
// not an error. ErrNoOrigin is returned when no location was resolved for the
// chat yet.
func (ss *SearchService) Search(
	ctx context.Context,
	chatID int64,
	category models.Category,
) ([]models.DisplayVenue, error) {
	origin, err := ss.sessions.Origin(ctx, chatID)
	if errors.Is(err, session.ErrNoSession) {
		return nil, ErrNoOrigin
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read origin: %w", err)
	}

	status := "ok"
	startTime := time.Now()
	raw, err := ss.venues.Search(ctx, category, *origin, ss.radiusMeters)
	ss.metrics.UpstreamSeconds.WithLabelValues("overpass", "search").Observe(time.Since(startTime).Seconds())

	if err != nil {
		// No stage error crosses the pipeline boundary: a failed venue search
		// reads as "no data for this category".
		ss.log.ErrorContext(ctx, "Venue search failed, degrading to empty result",
			"chat", chatID, "category", string(category), "error", err)
		raw = nil
		status = "degraded"
	}

	ranked := ranking.Rank(*origin, raw, ss.resultLimit)
	display := ss.enrich(ctx, ranked)

	if err = ss.sessions.SetState(ctx, chatID, session.StateIdle); err != nil {
		ss.log.ErrorContext(ctx, "Failed to reset conversation state", "chat", chatID, "error", err)
	}

	ss.metrics.Searches.WithLabelValues(string(category), status).Inc()
	ss.metrics.VenuesReturned.Observe(float64(len(display)))

	return display, nil
}

// enrich resolves a street address for every ranked venue. Lookups run
// concurrently up to the configured bound; results are written by index so the
// rank order is preserved regardless of completion order. A failed lookup
// yields the fallback address for that venue only.
func (ss *SearchService) enrich(ctx context.Context, ranked []models.RankedVenue) []models.DisplayVenue {
	if len(ranked) == 0 {
		return nil
	}

	display := make([]models.DisplayVenue, len(ranked))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(ss.enrichWorkers)

	for idx, venue := range ranked {
		group.Go(func() error {
			ss.metrics.ActiveEnrichers.Inc()
			defer ss.metrics.ActiveEnrichers.Dec()

			address := geocoding.FallbackAddress

			startTime := time.Now()
			resolved, err := ss.provider.ReverseGeocode(groupCtx, venue.Point)
			ss.metrics.UpstreamSeconds.WithLabelValues(ss.providerName, "reverse").
				Observe(time.Since(startTime).Seconds())

			if err != nil {
				ss.log.WarnContext(groupCtx, "Address lookup failed, using fallback",
					"venue", venue.Name, "error", err)
			} else {
				address = resolved.Display()
			}

			display[idx] = models.DisplayVenue{
				RankedVenue: venue,
				Address:     address,
				MapLink:     models.MapLink(venue.Point),
			}
			return nil
		})
	}

	// Workers never return errors; Wait is only a join point.
	_ = group.Wait()

	return display
}
