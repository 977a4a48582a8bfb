package locate

import (
	"fmt"

	geo "github.com/codingsince1985/geo-golang"
	"github.com/codingsince1985/geo-golang/openstreetmap"
	log "github.com/sirupsen/logrus"
)

type osm struct {
	geocoder geo.Geocoder
	tz       TimezoneFinder
}

var _ Resolver = (*osm)(nil)

// NewOpenstreetmapResolver geocodes queries through OSM Nominatim and
// derives the timezone from the returned coordinates. An empty
// nominatimURL uses the public instance.
func NewOpenstreetmapResolver(tz TimezoneFinder, nominatimURL string) *osm {
	geocoder := openstreetmap.Geocoder()
	if nominatimURL != "" {
		geocoder = openstreetmap.GeocoderWithURL(nominatimURL)
	}
	return &osm{geocoder: geocoder, tz: tz}
}

func (o *osm) Resolve(query string) (*Place, error) {
	location, err := o.geocoder.Geocode(query)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", query, err)
	}
	// Nominatim reports no matches as an empty result, not an error.
	if location == nil {
		return nil, fmt.Errorf("location not found: %q", query)
	}

	name, err := o.tz.NameAt(location.Lat, location.Lng)
	if err != nil {
		return nil, err
	}

	place := &Place{
		Query:     query,
		Latitude:  location.Lat,
		Longitude: location.Lng,
		Timezone:  name,
	}

	// A failed reverse lookup only costs the pretty name.
	if address, err := o.geocoder.ReverseGeocode(location.Lat, location.Lng); err == nil && address != nil {
		place.DisplayName = address.FormattedAddress
	}

	log.WithFields(log.Fields{
		"query":    query,
		"lat":      place.Latitude,
		"lng":      place.Longitude,
		"timezone": place.Timezone,
	}).Debug("geocoded location")

	return place, nil
}
