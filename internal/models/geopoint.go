package models

import (
	"strconv"
	"strings"
)

// GeoPoint represents a geographical point defined by its latitude and longitude.
// It is produced by geocoding and never mutated afterwards.
type GeoPoint struct {
	Latitude  float64 // Latitude of the geographical point.
	Longitude float64 // Longitude of the geographical point.
}

// yandexMapsTemplate is the deep link format for a single pinned point,
// parameterized by longitude first, with the pm2blm marker style.
const yandexMapsTemplate = "https://yandex.ru/maps/?ll={lon},{lat}&pt={lon},{lat},pm2blm&z=16"

// MapLink returns a map viewer deep link centered and pinned on the point.
func MapLink(p GeoPoint) string {
	lat := strconv.FormatFloat(p.Latitude, 'f', -1, 64)
	lon := strconv.FormatFloat(p.Longitude, 'f', -1, 64)

	link := strings.ReplaceAll(yandexMapsTemplate, "{lat}", lat)
	return strings.ReplaceAll(link, "{lon}", lon)
}
