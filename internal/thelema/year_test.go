package thelema

import (
	"testing"
	"time"
)

func TestYearForDate(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		want  string
	}{
		{"first day of the era", 1904, time.March, 20, "00"},
		{"last day of the first year", 1905, time.March, 19, "00"},
		{"second year", 1905, time.March, 20, "0i"},
		{"first year of second cycle", 1926, time.March, 20, "I0"},
		{"early in civil year belongs to prior era year", 1976, time.January, 13, "IIIv"},
		{"after spring rollover", 1976, time.April, 1, "IIIvi"},
		{"modern date", 2026, time.August, 21, "Vxii"},
		{"day before modern rollover", 2026, time.March, 19, "Vxi"},
		{"day of modern rollover", 2026, time.March, 20, "Vxii"},
		{"last representable day", 2410, time.March, 19, "XXIIxxi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := YearForDate(tt.year, tt.month, tt.day)
			if err != nil {
				t.Fatalf("YearForDate(%d, %v, %d) returned error: %v", tt.year, tt.month, tt.day, err)
			}
			if got.String() != tt.want {
				t.Errorf("YearForDate(%d, %v, %d) = %q, want %q", tt.year, tt.month, tt.day, got.String(), tt.want)
			}
		})
	}
}

func TestYearForDateErrors(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
	}{
		{"day before the era", 1904, time.March, 19},
		{"well before the era", 1830, time.June, 1},
		{"cycle count overflows the numerals", 2410, time.March, 20},
		{"far future", 3000, time.January, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := YearForDate(tt.year, tt.month, tt.day); err == nil {
				t.Errorf("YearForDate(%d, %v, %d) succeeded, want error", tt.year, tt.month, tt.day)
			}
		})
	}
}

func TestYearString(t *testing.T) {
	tests := []struct {
		year Year
		want string
	}{
		{Year{0, 0}, "00"},
		{Year{0, 4}, "0iv"},
		{Year{3, 5}, "IIIv"},
		{Year{5, 12}, "Vxii"},
		{Year{22, 22}, "XXIIxxii"},
	}
	for _, tt := range tests {
		if got := tt.year.String(); got != tt.want {
			t.Errorf("Year%+v.String() = %q, want %q", tt.year, got, tt.want)
		}
	}
}
