// Package thelema composes the Thelemic date: zodiacal positions of the
// Sun and Moon, the Latin day name, and the Anno year of the era begun at
// the vernal equinox of 1904.
package thelema

import (
	"fmt"
	"strings"
	"time"
)

const (
	epochYear     = 1904
	yearsPerCycle = 22

	// Civil-date approximation of the vernal equinox. Era years roll
	// over on March 20 regardless of the equinox's exact instant.
	boundaryMonth = time.March
	boundaryDay   = 20
)

// numerals covers 0 through 22, the full range of both halves of a
// docosade pair.
var numerals = [23]string{
	"0", "i", "ii", "iii", "iv", "v", "vi", "vii", "viii", "ix",
	"x", "xi", "xii", "xiii", "xiv", "xv", "xvi", "xvii", "xviii", "xix",
	"xx", "xxi", "xxii",
}

// Year is an era year expressed as a docosade pair: completed 22-year
// cycles since the epoch, and the year within the current cycle.
type Year struct {
	Cycle       int
	YearOfCycle int
}

// String renders the pair as the customary numeral couple, upper case for
// the cycle and lower case for the year within it: Cycle 3, YearOfCycle 5
// renders as "IIIv". The first year of the era renders as "00".
func (y Year) String() string {
	return strings.ToUpper(numerals[y.Cycle]) + numerals[y.YearOfCycle]
}

// YearForDate computes the era year for a civil date. Dates before
// March 20 belong to the era year begun the previous spring.
//
// Dates before March 20, 1904 precede the era and error, as do dates from
// March 20, 2410 on, where the cycle count outgrows the numeral table.
func YearForDate(year int, month time.Month, day int) (Year, error) {
	n := year - epochYear
	if month < boundaryMonth || (month == boundaryMonth && day < boundaryDay) {
		n--
	}
	if n < 0 {
		return Year{}, fmt.Errorf("date precedes the era, which begins March 20, %d", epochYear)
	}
	cycle := n / yearsPerCycle
	if cycle >= len(numerals) {
		return Year{}, fmt.Errorf("era year %d exceeds the numeral table, which ends with cycle %s", n, numerals[len(numerals)-1])
	}
	return Year{Cycle: cycle, YearOfCycle: n % yearsPerCycle}, nil
}
