package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/dcorey28/raytrace/pkg/math3d"
)

// Color is a linear RGB intensity with channels nominally in [0, 1].
// Nothing enforces the range.
type Color = math3d.Vec3[float64]

// RGB creates a color from channel intensities.
func RGB(r, g, b float64) Color {
	return math3d.V3(r, g, b)
}

// Colors for convenience
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(1, 1, 1)
	ColorSky   = RGB(0.5, 0.7, 1.0)
)

// WriteColor writes c as a single "R G B" line. Each channel is scaled by
// MaxChannel and truncated toward zero. Channels outside [0, 1] are not
// clamped and produce out-of-range integers.
func WriteColor(w io.Writer, c Color) error {
	p := c.Scale(MaxChannel)
	_, err := fmt.Fprintf(w, "%d %d %d\n", int64(p.X), int64(p.Y), int64(p.Z))
	return err
}

// ToRGBA converts c to an opaque 8-bit color for display, clamping each
// channel to [0, 1] first.
func ToRGBA(c Color) color.RGBA {
	return color.RGBA{channel8(c.X), channel8(c.Y), channel8(c.Z), 255}
}

func channel8(v float64) uint8 {
	return uint8(min(max(v, 0), 1) * MaxChannel)
}
