package domain

import (
	"math"
	"testing"
)

func TestVec2Dist(t *testing.T) {
	got := Vec2{X: 0, Y: 0}.Dist(Vec2{X: 3, Y: 4})
	if math.Abs(got-5) > 1e-9 {
		t.Errorf("Dist = %f, want 5", got)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("Intersects (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectClampInside(t *testing.T) {
	bounds := Rect{W: 800, H: 600}
	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"inside", Rect{X: 100, Y: 100, W: 40, H: 40}, Rect{X: 100, Y: 100, W: 40, H: 40}},
		{"left top", Rect{X: -5, Y: -3, W: 40, H: 40}, Rect{X: 0, Y: 0, W: 40, H: 40}},
		{"right bottom", Rect{X: 790, Y: 599, W: 40, H: 40}, Rect{X: 760, Y: 560, W: 40, H: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.ClampInside(bounds); got != tt.want {
				t.Errorf("ClampInside = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectOutside(t *testing.T) {
	bounds := Rect{W: 800, H: 600}
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", Rect{X: 10, Y: 10, W: 5, H: 5}, false},
		{"straddling left", Rect{X: -3, Y: 10, W: 5, H: 5}, false},
		{"fully left", Rect{X: -6, Y: 10, W: 5, H: 5}, true},
		{"fully right", Rect{X: 801, Y: 10, W: 5, H: 5}, true},
		{"fully above", Rect{X: 10, Y: -6, W: 5, H: 5}, true},
		{"fully below", Rect{X: 10, Y: 601, W: 5, H: 5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Outside(bounds); got != tt.want {
				t.Errorf("Outside = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectCenteredAt(t *testing.T) {
	r := Rect{W: 10, H: 20}.CenteredAt(Vec2{X: 50, Y: 50})
	if r.Center() != (Vec2{X: 50, Y: 50}) {
		t.Errorf("Center = %+v, want {50 50}", r.Center())
	}
	if r.X != 45 || r.Y != 40 {
		t.Errorf("origin = (%f,%f), want (45,40)", r.X, r.Y)
	}
}
