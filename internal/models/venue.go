package models

// RawVenue is a venue as returned by the geodata backend.
// Venues without a name are dropped before they reach this type.
type RawVenue struct {
	Name  string   // Name is the venue name from the backend tags.
	Point GeoPoint // Point is the venue location.
}

// RankedVenue is a RawVenue with its distance from the search origin.
type RankedVenue struct {
	RawVenue
	DistanceMeters float64 // DistanceMeters is the geodesic distance from the origin.
}

// DisplayVenue is a RankedVenue enriched with a street address and a map link,
// ready to be rendered by the conversational front-end.
type DisplayVenue struct {
	RankedVenue
	Address string // Address is the reverse-geocoded street address, best effort.
	MapLink string // MapLink is a map viewer deep link pinned on the venue.
}
