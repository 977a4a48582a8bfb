package zodiac

import "testing"

func TestPositionFromLongitude(t *testing.T) {
	tests := []struct {
		name      string
		longitude float64
		want      Position
	}{
		{"start of Aries", 0, Position{Aries, 0}},
		{"just inside Aries", 0.9, Position{Aries, 0}},
		{"end of Aries", 29.99, Position{Aries, 29}},
		{"start of Taurus", 30, Position{Taurus, 0}},
		{"mid Cancer", 95.5, Position{Cancer, 5}},
		{"late Capricorn", 292.4, Position{Capricorn, 22}},
		{"end of Pisces", 359.999, Position{Pisces, 29}},
		{"full circle wraps", 360, Position{Aries, 0}},
		{"beyond full circle", 390.5, Position{Taurus, 0}},
		{"negative wraps backwards", -10, Position{Pisces, 20}},
		{"deep negative", -370, Position{Pisces, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PositionFromLongitude(tt.longitude)
			if got != tt.want {
				t.Errorf("PositionFromLongitude(%v) = %v, want %v", tt.longitude, got, tt.want)
			}
		})
	}
}

func TestPositionString(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want string
	}{
		{"late Capricorn", Position{Capricorn, 22}, "22º Capricorn"},
		{"zero degrees", Position{Aries, 0}, "0º Aries"},
		{"last degree", Position{Pisces, 29}, "29º Pisces"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.want {
				t.Errorf("Position.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSignSymbol(t *testing.T) {
	tests := []struct {
		sign Sign
		want string
	}{
		{Aries, "♈"},
		{Leo, "♌"},
		{Pisces, "♓"},
	}
	for _, tt := range tests {
		if got := tt.sign.Symbol(); got != tt.want {
			t.Errorf("Symbol(%v) = %q, want %q", tt.sign, got, tt.want)
		}
	}
	if got := Sign(12).Symbol(); got != "?" {
		t.Errorf("Symbol out of range = %q, want %q", got, "?")
	}
}

func TestSignString(t *testing.T) {
	if got := Sagittarius.String(); got != "Sagittarius" {
		t.Errorf("Sagittarius.String() = %q", got)
	}
	if got := Sign(-1).String(); got != "Sign(-1)" {
		t.Errorf("out of range String() = %q", got)
	}
}
