package utils

import "testing"

func TestRoundTempHalvesToEven(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{12.4, 12},
		{12.6, 13},
		{2.5, 2},
		{3.5, 4},
		{-0.5, 0},
		{-1.5, -2},
		{0, 0},
	}
	for _, tt := range tests {
		if got := RoundTemp(tt.in); got != tt.want {
			t.Errorf("RoundTemp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12.5, "12.5"},
		{10, "10.0"},
		{0, "0.0"},
		{3.14159, "3.14159"},
	}
	for _, tt := range tests {
		if got := FormatDecimal(tt.in); got != tt.want {
			t.Errorf("FormatDecimal(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatWhole(t *testing.T) {
	if got := FormatWhole(72); got != "72" {
		t.Fatalf("FormatWhole(72) = %q", got)
	}
	if got := FormatWhole(72.5); got != "72.5" {
		t.Fatalf("FormatWhole(72.5) = %q", got)
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(0, 1, 10); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := ClampInt(50, 1, 10); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := ClampInt(5, 1, 10); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestRoundTo(t *testing.T) {
	if got := RoundTo(51.50853, 2); got != 51.51 {
		t.Fatalf("expected 51.51, got %v", got)
	}
}
