// Package app implements the operations behind the tdate commands.
package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/toozej/tdate/internal/locate"
	"github.com/toozej/tdate/pkg/config"
)

// NewResolver builds the standard resolution chain: the user's saved
// places first, then the on-disk lookup cache unless noCache is set, then
// OSM Nominatim with an offline timezone lookup over the result.
func NewResolver(fs afero.Fs, conf config.Config, noCache bool) (locate.Resolver, error) {
	tz, err := locate.NewTimezoneFinder()
	if err != nil {
		return nil, err
	}

	var resolver locate.Resolver = locate.NewOpenstreetmapResolver(tz, conf.NominatimURL)
	if !noCache {
		resolver = locate.NewCachedResolver(fs, cachePath(conf), resolver)
	}
	return locate.NewPlacesResolver(fs, placesPath(conf), tz, resolver), nil
}

func cachePath(conf config.Config) string {
	dir := conf.CacheDir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			base = "."
		}
		dir = filepath.Join(base, "tdate")
	}
	return filepath.Join(dir, "geocache.yaml")
}

func placesPath(conf config.Config) string {
	if conf.PlacesFile != "" {
		return conf.PlacesFile
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "tdate", "places.yaml")
}
