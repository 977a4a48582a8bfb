package locate

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// cacheFile is the YAML document persisted between runs, keyed by
// normalized query.
type cacheFile struct {
	Places map[string]*Place `yaml:"places"`
}

type cachedResolver struct {
	fs   afero.Fs
	path string
	next Resolver
}

var _ Resolver = (*cachedResolver)(nil)

// NewCachedResolver wraps next with a read-through cache persisted at
// path. A missing or unreadable cache file behaves as an empty one, and
// write failures are logged rather than surfaced, so the cache can never
// make a resolvable query fail.
func NewCachedResolver(fs afero.Fs, path string, next Resolver) *cachedResolver {
	return &cachedResolver{fs: fs, path: path, next: next}
}

func (c *cachedResolver) Resolve(query string) (*Place, error) {
	key := NormalizeQuery(query)

	entries := c.load()
	if place, ok := entries[key]; ok {
		log.WithField("query", query).Debug("place cache hit")
		return place, nil
	}

	place, err := c.next.Resolve(query)
	if err != nil {
		return nil, err
	}

	entries[key] = place
	c.store(entries)
	return place, nil
}

func (c *cachedResolver) load() map[string]*Place {
	data, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		return map[string]*Place{}
	}
	var f cacheFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		log.WithError(err).Warnf("ignoring unreadable place cache %s", c.path)
		return map[string]*Place{}
	}
	if f.Places == nil {
		return map[string]*Place{}
	}
	return f.Places
}

func (c *cachedResolver) store(entries map[string]*Place) {
	data, err := yaml.Marshal(cacheFile{Places: entries})
	if err != nil {
		log.WithError(err).Warn("marshalling place cache")
		return
	}
	if err := c.fs.MkdirAll(filepath.Dir(c.path), 0750); err != nil {
		log.WithError(err).Warnf("creating cache directory for %s", c.path)
		return
	}
	if err := afero.WriteFile(c.fs, c.path, data, 0644); err != nil {
		log.WithError(err).Warnf("writing place cache %s", c.path)
	}
}
