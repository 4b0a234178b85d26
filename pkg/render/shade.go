package render

import (
	"github.com/dcorey28/raytrace/pkg/math3d"
)

// Shader resolves a camera ray to a color.
type Shader func(r math3d.Ray[float64]) Color

// Gradient shades by the vertical component of the ray direction: straight
// down is white, straight up is sky blue, blended linearly in between.
// The ray direction must be non-zero.
func Gradient(r math3d.Ray[float64]) Color {
	unit := r.Direction().Unit()
	a := (unit.Y + 1) * 0.5
	return ColorWhite.Scale(1 - a).Add(ColorSky.Scale(a))
}
