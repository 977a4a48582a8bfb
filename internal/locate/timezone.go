package locate

import (
	"fmt"

	"github.com/ringsaturn/tzf"
)

type tzfFinder struct {
	finder tzf.F
}

var _ TimezoneFinder = (*tzfFinder)(nil)

// NewTimezoneFinder builds an offline timezone finder backed by tzf's
// embedded polygon data, so no network round trip is needed to go from
// coordinates to a zone name.
func NewTimezoneFinder() (*tzfFinder, error) {
	f, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("load timezone data: %w", err)
	}
	return &tzfFinder{finder: f}, nil
}

func (t *tzfFinder) NameAt(lat, lng float64) (string, error) {
	name := t.finder.GetTimezoneName(lng, lat)
	if name == "" {
		return "", fmt.Errorf("no timezone found at %.4f,%.4f", lat, lng)
	}
	return name, nil
}
