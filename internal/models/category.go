package models

// Category identifies a venue class the user can search for.
// The identifier is the opaque token carried between the category keyboard
// and the search handler; display labels are resolved separately via Label.
type Category string

// The closed set of searchable venue categories.
const (
	CategoryCafe      Category = "cafe"
	CategoryShop      Category = "shop"
	CategoryTransport Category = "transport"
	CategoryMuseum    Category = "museum"
	CategoryHospital  Category = "hospital"
)

// categoryLabels maps category identifiers to their user-facing labels.
var categoryLabels = map[Category]string{
	CategoryCafe:      "Кафе",
	CategoryShop:      "Магазины",
	CategoryTransport: "Транспорт",
	CategoryMuseum:    "Музеи",
	CategoryHospital:  "Больницы",
}

// Categories returns the closed category set in stable presentation order.
func Categories() []Category {
	return []Category{
		CategoryCafe,
		CategoryShop,
		CategoryTransport,
		CategoryMuseum,
		CategoryHospital,
	}
}

// Label returns the localized display label for the category,
// or the raw identifier if the category is outside the known set.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Valid reports whether the category belongs to the closed set.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}
