package app

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/toozej/tdate/internal/locate"
	"github.com/toozej/tdate/internal/thelema"
)

// Almanac renders one Thelemic date row per day of the given month,
// computed at local noon for the location named by query. When outputFile
// is set the table is written there instead of out.
func Almanac(fs afero.Fs, out io.Writer, resolver locate.Resolver, year int, month time.Month, query string, outputFile string) error {
	place, err := resolver.Resolve(query)
	if err != nil {
		return err
	}

	loc, err := time.LoadLocation(place.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", place.Timezone, err)
	}

	name := place.DisplayName
	if name == "" {
		name = place.Query
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Almanac for %s, %s %d\n", name, month, year)

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Date", "Sol", "Luna", "Dies", "Anno"})
	table.SetAutoFormatHeaders(false)

	days := daysIn(year, month, loc)
	for day := 1; day <= days; day++ {
		noon := time.Date(year, month, day, 12, 0, 0, 0, loc)
		date, err := thelema.FromTime(noon)
		if err != nil {
			// Days outside the era, possible only in boundary months,
			// get no row.
			log.WithField("date", noon.Format("2006-01-02")).Debug("skipping almanac day")
			continue
		}
		table.Append([]string{
			noon.Format("2006-01-02 Mon"),
			fmt.Sprintf("%s %s", date.Sun.Sign.Symbol(), date.Sun),
			fmt.Sprintf("%s %s", date.Moon.Sign.Symbol(), date.Moon),
			date.Weekday.String(),
			date.Year.String(),
		})
	}
	table.Render()

	if outputFile != "" {
		if err := afero.WriteFile(fs, outputFile, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("write almanac to %s: %w", outputFile, err)
		}
		fmt.Fprintf(out, "Almanac written to %s\n", outputFile)
		return nil
	}

	_, err = io.Copy(out, &buf)
	return err
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 12, 0, 0, 0, loc).Day()
}
