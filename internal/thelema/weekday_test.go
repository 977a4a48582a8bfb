package thelema

import (
	"testing"
	"time"
)

func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want Weekday
	}{
		{"Monday", time.Date(2026, time.August, 17, 12, 0, 0, 0, time.UTC), Lunae},
		{"Tuesday", time.Date(1976, time.January, 13, 8, 25, 0, 0, time.UTC), Martis},
		{"Thursday leap day", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), Jovis},
		{"Friday", time.Date(2026, time.August, 21, 23, 59, 0, 0, time.UTC), Veneris},
		{"Saturday", time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), Saturnii},
		{"Sunday epoch day", time.Date(1904, time.March, 20, 6, 0, 0, 0, time.UTC), Solis},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekdayOf(tt.date); got != tt.want {
				t.Errorf("WeekdayOf(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestWeekdayString(t *testing.T) {
	tests := []struct {
		weekday Weekday
		want    string
	}{
		{Lunae, "Lunae"},
		{Mercurii, "Mercurii"},
		{Saturnii, "Saturnii"},
		{Solis, "Solis"},
		{Weekday(7), "Ignotus"},
	}
	for _, tt := range tests {
		if got := tt.weekday.String(); got != tt.want {
			t.Errorf("Weekday(%d).String() = %q, want %q", int(tt.weekday), got, tt.want)
		}
	}
}
