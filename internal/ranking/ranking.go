// Package ranking turns raw backend matches into the bounded, nearest-first
// venue list shown to the user.
package ranking

import (
	"sort"

	"github.com/olegmenkov/access-finder/internal/models"
)

// Rank deduplicates venues by exact name, computes the geodesic distance of
// each from the origin, sorts ascending by distance and truncates to limit.
//
// The first-seen venue wins a name collision regardless of distance; later
// duplicates are dropped before sorting. Ties in distance keep the backend's
// return order (stable sort). An empty or nil input yields an empty output.
func Rank(origin models.GeoPoint, raw []models.RawVenue, limit int) []models.RankedVenue {
	if len(raw) == 0 || limit <= 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(raw))
	ranked := make([]models.RankedVenue, 0, len(raw))

	for _, venue := range raw {
		if _, ok := seen[venue.Name]; ok {
			continue
		}
		seen[venue.Name] = struct{}{}

		ranked = append(ranked, models.RankedVenue{
			RawVenue:       venue,
			DistanceMeters: Distance(origin, venue.Point),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceMeters < ranked[j].DistanceMeters
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
