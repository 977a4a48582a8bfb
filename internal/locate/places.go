package locate

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// placesFile is the user's saved-places document. Each alias either pins
// coordinates outright or redirects to another query:
//
//	places:
//	  home:
//	    query: "Las Vegas, NV"
//	  cabin:
//	    latitude: 39.0968
//	    longitude: -120.0324
type placesFile struct {
	Places map[string]savedPlace `yaml:"places"`
}

type savedPlace struct {
	Query     string   `yaml:"query,omitempty"`
	Latitude  *float64 `yaml:"latitude,omitempty"`
	Longitude *float64 `yaml:"longitude,omitempty"`
	Timezone  string   `yaml:"timezone,omitempty"`
}

type placesResolver struct {
	fs   afero.Fs
	path string
	tz   TimezoneFinder
	next Resolver
}

var _ Resolver = (*placesResolver)(nil)

// NewPlacesResolver consults the saved-places file at path before falling
// through to next. An empty path or missing file disables aliases.
func NewPlacesResolver(fs afero.Fs, path string, tz TimezoneFinder, next Resolver) *placesResolver {
	return &placesResolver{fs: fs, path: path, tz: tz, next: next}
}

func (p *placesResolver) Resolve(query string) (*Place, error) {
	saved, ok := p.lookup(NormalizeQuery(query))
	if !ok {
		return p.next.Resolve(query)
	}

	if saved.Query != "" {
		log.WithFields(log.Fields{"alias": query, "query": saved.Query}).Debug("saved place redirects")
		return p.next.Resolve(saved.Query)
	}

	if saved.Latitude == nil || saved.Longitude == nil {
		return nil, fmt.Errorf("saved place %q needs either a query or a latitude and longitude", query)
	}

	place := &Place{
		Query:     query,
		Latitude:  *saved.Latitude,
		Longitude: *saved.Longitude,
		Timezone:  saved.Timezone,
	}
	if place.Timezone == "" {
		name, err := p.tz.NameAt(place.Latitude, place.Longitude)
		if err != nil {
			return nil, err
		}
		place.Timezone = name
	}
	return place, nil
}

func (p *placesResolver) lookup(key string) (savedPlace, bool) {
	if p.path == "" {
		return savedPlace{}, false
	}
	data, err := afero.ReadFile(p.fs, p.path)
	if err != nil {
		return savedPlace{}, false
	}
	var f placesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		log.WithError(err).Warnf("ignoring unreadable places file %s", p.path)
		return savedPlace{}, false
	}
	for alias, saved := range f.Places {
		if NormalizeQuery(alias) == key {
			return saved, true
		}
	}
	return savedPlace{}, false
}
