package thelema

import "time"

// Weekday names the days after their planetary rulers, Monday first.
type Weekday int

const (
	Lunae Weekday = iota
	Martis
	Mercurii
	Jovis
	Veneris
	Saturnii
	Solis
)

var weekdayNames = [7]string{
	"Lunae", "Martis", "Mercurii", "Jovis", "Veneris", "Saturnii", "Solis",
}

func (w Weekday) String() string {
	if w < 0 || w > Solis {
		return "Ignotus"
	}
	return weekdayNames[w]
}

// WeekdayOf shifts Go's Sunday-first weekday onto the Monday-first table.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}
