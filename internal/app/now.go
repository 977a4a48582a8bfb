package app

import (
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/toozej/tdate/internal/locate"
	"github.com/toozej/tdate/internal/thelema"
)

// Clock supplies the current instant. Tests substitute a fixed one.
type Clock func() time.Time

// Now writes the Thelemic date line for the present moment at the
// location named by query.
func Now(out io.Writer, resolver locate.Resolver, clock Clock, query string) error {
	place, err := resolver.Resolve(query)
	if err != nil {
		return err
	}

	loc, err := time.LoadLocation(place.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", place.Timezone, err)
	}

	local := clock().In(loc)
	log.WithFields(log.Fields{
		"query":    place.Query,
		"timezone": place.Timezone,
		"local":    local.Format(time.RFC3339),
	}).Debug("composing date")

	date, err := thelema.FromTime(local)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, date)
	return nil
}
