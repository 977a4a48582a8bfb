// Package locate resolves free-form location strings into coordinates and
// an IANA timezone name.
//
// The usual chain consults the user's saved places first, then an on-disk
// cache of past lookups, and finally OSM Nominatim with an offline
// timezone lookup over the result.
package locate

import "strings"

// Place is a resolved location.
type Place struct {
	Query       string  `yaml:"query"`
	DisplayName string  `yaml:"display_name,omitempty"`
	Latitude    float64 `yaml:"latitude"`
	Longitude   float64 `yaml:"longitude"`
	Timezone    string  `yaml:"timezone"`
}

// Resolver turns a location query into a Place.
type Resolver interface {
	Resolve(query string) (*Place, error)
}

// TimezoneFinder maps coordinates to an IANA timezone name.
type TimezoneFinder interface {
	NameAt(lat, lng float64) (string, error)
}

// NormalizeQuery canonicalizes a query for use as a cache or alias key:
// lower-cased, with runs of whitespace collapsed to single spaces.
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}
