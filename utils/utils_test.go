package utils

import (
	"math"
	"testing"
)

func TestFiniteXY(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"zero", 0, 0, true},
		{"negative", -12.5, 3, true},
		{"nan x", math.NaN(), 1, false},
		{"inf y", 1, math.Inf(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FiniteXY(tt.x, tt.y); got != tt.want {
				t.Errorf("FiniteXY(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SKIRMISH_TEST_INT", "42")
	if got := GetEnvInt("SKIRMISH_TEST_INT", 7); got != 42 {
		t.Errorf("GetEnvInt = %d, want 42", got)
	}
	t.Setenv("SKIRMISH_TEST_INT", "abc")
	if got := GetEnvInt("SKIRMISH_TEST_INT", 7); got != 7 {
		t.Errorf("GetEnvInt with invalid value = %d, want 7", got)
	}
	if got := GetEnvDefault("SKIRMISH_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnvDefault = %q, want fallback", got)
	}
}
