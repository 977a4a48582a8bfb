package app

import (
	"fmt"
	"io"
	"time"

	"github.com/toozej/tdate/internal/locate"
	"github.com/toozej/tdate/internal/thelema"
)

// At writes the Thelemic date line for a specific civil date and
// wall-clock time at the location named by query.
func At(out io.Writer, resolver locate.Resolver, year, month, day, hour, minute int, query string) error {
	if err := validateFields(year, month, day, hour, minute); err != nil {
		return err
	}

	place, err := resolver.Resolve(query)
	if err != nil {
		return err
	}

	loc, err := time.LoadLocation(place.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", place.Timezone, err)
	}

	// time.Date silently normalizes impossible wall-clock times, both
	// calendar overflow like February 30 and spring-forward gaps, so an
	// exact round trip is required.
	local := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	if local.Year() != year || local.Month() != time.Month(month) || local.Day() != day ||
		local.Hour() != hour || local.Minute() != minute {
		return fmt.Errorf("%04d-%02d-%02d %02d:%02d is not a valid local time in %s",
			year, month, day, hour, minute, place.Timezone)
	}

	date, err := thelema.FromTime(local)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, date)
	return nil
}

func validateFields(year, month, day, hour, minute int) error {
	switch {
	case year < 1904:
		return fmt.Errorf("year %d precedes the era, which begins in 1904", year)
	case month < 1 || month > 12:
		return fmt.Errorf("month %d out of range 1-12", month)
	case day < 1 || day > 31:
		return fmt.Errorf("day %d out of range 1-31", day)
	case hour < 0 || hour > 23:
		return fmt.Errorf("hour %d out of range 0-23", hour)
	case minute < 0 || minute > 59:
		return fmt.Errorf("minute %d out of range 0-59", minute)
	}
	return nil
}
