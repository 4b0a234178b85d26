package render

import (
	"testing"

	"github.com/dcorey28/raytrace/pkg/math3d"
)

func TestGradient(t *testing.T) {
	origin := math3d.Zero3[float64]()

	tests := []struct {
		name     string
		dir      math3d.Vec3[float64]
		expected Color
	}{
		{"straight down is white", math3d.V3(0.0, -1.0, 0.0), ColorWhite},
		{"straight up is blue", math3d.V3(0.0, 1.0, 0.0), ColorSky},
		{"horizontal is the average", math3d.V3(0.0, 0.0, -1.0), RGB(0.75, 0.85, 1.0)},
		{"length does not matter", math3d.V3(0.0, -7.5, 0.0), ColorWhite},
		{"x does not matter", math3d.V3(3.0, 0.0, 0.0), RGB(0.75, 0.85, 1.0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Gradient(math3d.NewRay(origin, tc.dir))
			if !vecNear(got, tc.expected, 1e-12) {
				t.Errorf("Gradient(%v) = %v, want %v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestGradientIgnoresOrigin(t *testing.T) {
	dir := math3d.V3(0.2, 0.4, -1.0)
	a := Gradient(math3d.NewRay(math3d.Zero3[float64](), dir))
	b := Gradient(math3d.NewRay(math3d.V3(10.0, -20.0, 5.0), dir))
	if a != b {
		t.Errorf("gradient depends on origin: %v != %v", a, b)
	}
}

func TestGradientMonotonic(t *testing.T) {
	// Red falls from 1 to 0.5 as the ray tilts upward.
	prev := 2.0
	for y := -1.0; y <= 1.0; y += 0.25 {
		c := Gradient(math3d.NewRay(math3d.Zero3[float64](), math3d.V3(0.0, y, -1.0)))
		if c.X >= prev {
			t.Errorf("red at y=%v is %v, not below %v", y, c.X, prev)
		}
		prev = c.X
	}
}
