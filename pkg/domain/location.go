package domain

import "strings"

// Municipalities of the province of Catanduanes.
var Municipalities = []string{ //nolint: gochecknoglobals
	"Bagamanoc",
	"Baras",
	"Bato",
	"Caramoran",
	"Gigmoto",
	"Pandan",
	"Panganiban",
	"San Andres",
	"San Miguel",
	"Viga",
	"Virac",
}

// CanonicalMunicipality returns the canonical spelling of name, or false when
// name is not a Catanduanes municipality.
func CanonicalMunicipality(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, m := range Municipalities {
		if strings.EqualFold(m, name) {
			return m, true
		}
	}

	return "", false
}

// Place is a geocoded location.
type Place struct {
	DisplayName string      `json:"displayName"`
	Point       Coordinates `json:"point"`
}

// LocationSuggestion is returned by location autocomplete.
type LocationSuggestion struct {
	Label  string       `json:"label"`
	Source string       `json:"source"`
	Point  *Coordinates `json:"point,omitempty"`
}
