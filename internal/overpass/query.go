package overpass

import (
	"fmt"
	"strconv"

	"github.com/olegmenkov/access-finder/internal/models"
)

// categoryFilters maps each supported category to the tag predicate selecting
// its venue class in the geodata backend.
var categoryFilters = map[models.Category]string{
	models.CategoryCafe:      `node["amenity"="cafe"]`,
	models.CategoryShop:      `node["shop"]`,
	models.CategoryTransport: `node["public_transport"]`,
	models.CategoryMuseum:    `node["tourism"="museum"]`,
	models.CategoryHospital:  `node["amenity"="hospital"]`,
}

// wheelchairPredicate is appended to every category filter. Venues without an
// explicit wheelchair=yes tag are never returned: absence of the tag is not
// treated as accessible.
const wheelchairPredicate = `["wheelchair"="yes"]`

// BuildQuery maps a category to a structured Overpass QL query constrained to
// a radius around the origin point. It is a pure function: identical inputs
// produce identical queries. The second return value is false for categories
// outside the closed set, which the caller must treat as "zero results",
// not as an error.
func BuildQuery(category models.Category, origin models.GeoPoint, radiusMeters int) (string, bool) {
	filter, ok := categoryFilters[category]
	if !ok {
		return "", false
	}

	lat := strconv.FormatFloat(origin.Latitude, 'f', -1, 64)
	lon := strconv.FormatFloat(origin.Longitude, 'f', -1, 64)

	query := fmt.Sprintf(`[out:json];
(
  %s%s(around:%d,%s,%s);
);
out body;`, filter, wheelchairPredicate, radiusMeters, lat, lon)

	return query, true
}
