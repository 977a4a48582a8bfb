package thelema

import (
	"fmt"
	"time"

	"github.com/toozej/tdate/internal/ephemeris"
	"github.com/toozej/tdate/internal/zodiac"
)

// Date is the fully composed Thelemic date for one civil instant.
type Date struct {
	Sun     zodiac.Position
	Moon    zodiac.Position
	Weekday Weekday
	Year    Year
}

// FromTime composes the date for a localized instant. The location of t
// matters twice over: the weekday and era year come from t's wall-clock
// date, while the solar and lunar longitudes come from the absolute
// instant it names.
func FromTime(t time.Time) (Date, error) {
	y, m, d := t.Date()
	year, err := YearForDate(y, m, d)
	if err != nil {
		return Date{}, err
	}

	pos := ephemeris.At(t)
	return Date{
		Sun:     zodiac.PositionFromLongitude(pos.SunLongitude),
		Moon:    zodiac.PositionFromLongitude(pos.MoonLongitude),
		Weekday: WeekdayOf(t),
		Year:    year,
	}, nil
}

// String renders the canonical date line, e.g.
//
//	☉ in 22º Capricorn : ☽ in 8º Pisces : dies Martis : Anno IIIv æræ legis
func (d Date) String() string {
	return fmt.Sprintf("☉ in %s : ☽ in %s : dies %s : Anno %s æræ legis",
		d.Sun, d.Moon, d.Weekday, d.Year)
}
