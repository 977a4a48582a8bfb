package thelema

import (
	"strings"
	"testing"
	"time"

	"github.com/toozej/tdate/internal/zodiac"
)

func TestDateString(t *testing.T) {
	d := Date{
		Sun:     zodiac.Position{Sign: zodiac.Capricorn, Degree: 22},
		Moon:    zodiac.Position{Sign: zodiac.Pisces, Degree: 8},
		Weekday: Martis,
		Year:    Year{Cycle: 3, YearOfCycle: 5},
	}
	want := "☉ in 22º Capricorn : ☽ in 8º Pisces : dies Martis : Anno IIIv æræ legis"
	if got := d.String(); got != want {
		t.Errorf("Date.String() = %q, want %q", got, want)
	}
}

func TestFromTime(t *testing.T) {
	// 1976-01-13 08:25 Pacific, the docosade example date.
	instant := time.Date(1976, time.January, 13, 16, 25, 0, 0, time.UTC)
	d, err := FromTime(instant)
	if err != nil {
		t.Fatalf("FromTime returned error: %v", err)
	}
	if d.Weekday != Martis {
		t.Errorf("Weekday = %v, want Martis", d.Weekday)
	}
	if d.Year.String() != "IIIv" {
		t.Errorf("Year = %q, want IIIv", d.Year.String())
	}
	if d.Sun.Sign != zodiac.Capricorn {
		t.Errorf("Sun sign = %v, want Capricorn", d.Sun.Sign)
	}
	line := d.String()
	for _, fragment := range []string{"☉ in ", "☽ in ", "dies Martis", "Anno IIIv æræ legis"} {
		if !strings.Contains(line, fragment) {
			t.Errorf("date line %q missing %q", line, fragment)
		}
	}
}

func TestFromTimeBeforeEra(t *testing.T) {
	instant := time.Date(1904, time.February, 1, 0, 0, 0, 0, time.UTC)
	if _, err := FromTime(instant); err == nil {
		t.Error("FromTime before the era succeeded, want error")
	}
}
