package locate

import (
	"errors"
	"testing"
)

// stubResolver hands back a copy of its place for any query and counts
// how often it is consulted.
type stubResolver struct {
	place Place
	err   error
	calls int
}

func (s *stubResolver) Resolve(query string) (*Place, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	place := s.place
	place.Query = query
	return &place, nil
}

type stubFinder struct {
	name string
	err  error
}

func (s *stubFinder) NameAt(lat, lng float64) (string, error) {
	return s.name, s.err
}

var errResolve = errors.New("resolve failed")

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"already normal", "las vegas, nv", "las vegas, nv"},
		{"mixed case", "Las Vegas, NV", "las vegas, nv"},
		{"extra whitespace", "  Las   Vegas,\tNV ", "las vegas, nv"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeQuery(tt.query); got != tt.want {
				t.Errorf("NormalizeQuery(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}
