package geocoding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/olegmenkov/access-finder/internal/models"
)

// Provider is an interface that defines forward and reverse geocoding.
// Geocode resolves a free-text place description to coordinates;
// ReverseGeocode resolves coordinates back to a street-level address.
type Provider interface {
	Geocode(ctx context.Context, query string) (*models.GeoPoint, error)
	ReverseGeocode(ctx context.Context, point models.GeoPoint) (*Address, error)
}

// ErrNotFound is returned when the upstream index has no candidate for the
// query, or when it denies access. The two are deliberately indistinguishable:
// the caller re-prompts either way instead of failing the conversation.
var ErrNotFound = errors.New("no location found")

// FallbackAddress is shown when reverse geocoding fails entirely.
const FallbackAddress = "Адрес не найден"

// Placeholder labels for address components missing from the upstream data.
const (
	unknownStreet  = "Неизвестная улица"
	unknownHouseNo = "№ не указан"
)

// Address is a street-level address broken into the components the upstream
// returns. Any component may be empty. Providers that only return a single
// pre-formatted line set Formatted instead of the components.
type Address struct {
	Formatted   string // Formatted is a ready-to-display address line, if the provider supplies one.
	Road        string // Road is the street name.
	HouseNumber string // HouseNumber is the house number on the street.
	Hamlet      string // Hamlet is an auxiliary locality component, sometimes used upstream for unit numbers.
}

// Display renders the address as a single human-readable line, substituting
// explicit placeholder text for missing components.
func (a Address) Display() string {
	if a.Formatted != "" {
		return a.Formatted
	}

	road := a.Road
	if road == "" {
		road = unknownStreet
	}

	houseNumber := a.HouseNumber
	if houseNumber == "" {
		houseNumber = unknownHouseNo
	}

	return strings.TrimSpace(fmt.Sprintf("%s, %s %s", road, houseNumber, a.Hamlet))
}
