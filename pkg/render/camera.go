package render

import (
	"github.com/dcorey28/raytrace/pkg/math3d"
)

const (
	// FocalLength is the distance from the camera center to the viewport.
	FocalLength = 1.0

	// ViewportHeight is the world-space height of the viewport.
	ViewportHeight = 2.0
)

// Image holds the output dimensions in pixels.
type Image struct {
	Width  int
	Height int
}

// Pixels returns the total number of pixels.
func (i Image) Pixels() int {
	return i.Width * i.Height
}

// Viewport describes the image plane in world space.
type Viewport struct {
	// Pixel00 is the center of the top-left pixel.
	Pixel00 math3d.Point[float64]

	// Offsets between the centers of adjacent pixels.
	DeltaHorizontal math3d.Vec3[float64] // one column to the right
	DeltaVertical   math3d.Vec3[float64] // one row down
}

// PixelCenter returns the world position of the center of pixel (row, col).
// Indices outside the image extrapolate past the viewport edges.
func (v Viewport) PixelCenter(row, col int) math3d.Point[float64] {
	return v.Pixel00.
		Add(v.DeltaHorizontal.Scale(float64(col))).
		Add(v.DeltaVertical.Scale(float64(row)))
}

// Camera is a fixed pinhole camera at the origin looking down -Z.
// It is immutable once built.
type Camera struct {
	center   math3d.Point[float64]
	image    Image
	viewport Viewport
}

// ImageHeight returns the pixel height for an image of the given width and
// ideal aspect ratio (width / height). The result is never less than 1.
func ImageHeight(aspectRatio float64, imageWidth int) int {
	return max(int(float64(imageWidth)/aspectRatio), 1)
}

// NewCamera creates a camera for an image imageWidth pixels wide.
func NewCamera(aspectRatio float64, imageWidth int) *Camera {
	image := Image{
		Width:  imageWidth,
		Height: ImageHeight(aspectRatio, imageWidth),
	}
	center := math3d.Zero3[float64]()

	// The viewport width follows the realized pixel ratio, not aspectRatio,
	// so that pixels stay square after height is rounded.
	viewportWidth := ViewportHeight * float64(image.Width) / float64(image.Height)

	// Image rows grow downward while world Y grows upward.
	horizontal := math3d.V3(viewportWidth, 0, 0)
	vertical := math3d.V3(0, -ViewportHeight, 0)

	deltaH := horizontal.Div(float64(image.Width))
	deltaV := vertical.Div(float64(image.Height))

	upperLeft := center.
		Sub(math3d.V3(0, 0, FocalLength)).
		Sub(horizontal.Div(2)).
		Sub(vertical.Div(2))

	return &Camera{
		center: center,
		image:  image,
		viewport: Viewport{
			Pixel00:         upperLeft.Add(deltaH.Add(deltaV).Scale(0.5)),
			DeltaHorizontal: deltaH,
			DeltaVertical:   deltaV,
		},
	}
}

// Center returns the eye point.
func (c *Camera) Center() math3d.Point[float64] {
	return c.center
}

// Image returns the output dimensions.
func (c *Camera) Image() Image {
	return c.image
}

// Viewport returns the image plane geometry.
func (c *Camera) Viewport() Viewport {
	return c.viewport
}

// Ray returns the ray from the camera center through the center of pixel
// (row, col).
func (c *Camera) Ray(row, col int) math3d.Ray[float64] {
	target := c.viewport.PixelCenter(row, col)
	return math3d.NewRay(c.center, target.Sub(c.center))
}
