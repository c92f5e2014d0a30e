package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestNormalizeAngleRange(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"inside", 1.5, 1.5},
		{"full turn", TwoPi, 0},
		{"just past a turn", TwoPi + 0.25, 0.25},
		{"negative", -0.5, TwoPi - 0.5},
		{"negative half turn", -math.Pi, math.Pi},
		{"tiny negative", -1e-18, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.in)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if got < 0 || got >= TwoPi {
				t.Errorf("Expected result in [0, 2π), got %v", got)
			}
		})
	}
}

func TestNormalizeAngleIdempotent(t *testing.T) {
	for i := 0; i < 3600; i++ {
		a := float64(i) * TwoPi / 3600
		once := NormalizeAngle(a)
		twice := NormalizeAngle(once)
		if once != twice {
			t.Fatalf("Expected idempotent result for %v, got %v then %v", a, once, twice)
		}
		if once < 0 || once >= TwoPi {
			t.Fatalf("Expected %v in [0, 2π), got %v", a, once)
		}
	}
}

func TestDistance(t *testing.T) {
	d := Distance(Point{X: 1, Y: 2}, Point{X: 4, Y: 6})
	if math.Abs(d-5) > epsilon {
		t.Errorf("Expected distance 5, got %v", d)
	}

	if d := Distance(Point{X: 3, Y: 3}, Point{X: 3, Y: 3}); d != 0 {
		t.Errorf("Expected distance 0 for identical points, got %v", d)
	}
}

func TestSnapToGridFloor(t *testing.T) {
	tests := []struct {
		v, size, want float64
	}{
		{300, 64, 256},
		{256, 64, 256},
		{255.999, 64, 192},
		{0, 64, 0},
		{10, 64, 0},
		{-1, 64, -64},
	}

	for _, tt := range tests {
		if got := SnapToGridFloor(tt.v, tt.size); got != tt.want {
			t.Errorf("SnapToGridFloor(%v, %v): expected %v, got %v", tt.v, tt.size, tt.want, got)
		}
	}
}

func TestTileIndex(t *testing.T) {
	if got := TileIndex(300, 64); got != 4 {
		t.Errorf("Expected tile 4, got %d", got)
	}
	if got := TileIndex(255.9999, 64); got != 3 {
		t.Errorf("Expected tile 3, got %d", got)
	}
	if got := TileIndex(-0.0001, 64); got != -1 {
		t.Errorf("Expected tile -1, got %d", got)
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); math.Abs(got-math.Pi) > epsilon {
		t.Errorf("Expected π, got %v", got)
	}
	if got := Radians(60); math.Abs(got-math.Pi/3) > epsilon {
		t.Errorf("Expected π/3, got %v", got)
	}
}
