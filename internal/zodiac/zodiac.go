// Package zodiac maps ecliptic longitudes onto the twelve signs.
package zodiac

import (
	"fmt"

	"github.com/soniakeys/unit"
)

// Sign is one of the twelve signs in ecliptic order, starting at the
// vernal equinox.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signSymbols = [12]string{
	"♈", "♉", "♊", "♋", "♌", "♍",
	"♎", "♏", "♐", "♑", "♒", "♓",
}

func (s Sign) String() string {
	if s < 0 || s > Pisces {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// Symbol returns the astrological glyph for the sign.
func (s Sign) Symbol() string {
	if s < 0 || s > Pisces {
		return "?"
	}
	return signSymbols[s]
}

// Position locates a body within a sign.
type Position struct {
	Sign   Sign
	Degree int // whole degrees into the sign, 0 through 29
}

// String renders the position as it appears in the date line,
// e.g. "22º Capricorn". The degree marker is the masculine ordinal
// indicator, not the degree symbol.
func (p Position) String() string {
	return fmt.Sprintf("%dº %s", p.Degree, p.Sign)
}

// PositionFromLongitude maps an ecliptic longitude in degrees to the sign
// containing it and the whole-degree offset into that sign. Longitudes
// outside [0,360) are wrapped first, so any finite value is acceptable.
func PositionFromLongitude(deg float64) Position {
	norm := unit.PMod(deg, 360)
	return Position{
		Sign:   Sign(int(norm/30) % 12),
		Degree: int(unit.PMod(norm, 30)),
	}
}
