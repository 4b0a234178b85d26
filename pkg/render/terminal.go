package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Preview draws a Framebuffer into a terminal area using half-block cells.
// Each cell shows two vertically stacked pixels: ▀ with the top pixel as
// foreground and the bottom pixel as background. The image is scaled with
// nearest-neighbor sampling to fit the area and centered horizontally.
type Preview struct {
	fb *Framebuffer
}

var _ uv.Drawable = (*Preview)(nil)

// NewPreview creates a preview of fb.
func NewPreview(fb *Framebuffer) *Preview {
	return &Preview{fb: fb}
}

// Fit returns the size in pixels the framebuffer is scaled to when drawn in
// an area of cols x rows cells. Rows hold two pixels each.
func (p *Preview) Fit(cols, rows int) (width, height int) {
	if p.fb.Width == 0 || p.fb.Height == 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	scale := min(float64(cols)/float64(p.fb.Width), float64(rows*2)/float64(p.fb.Height))
	width = max(int(float64(p.fb.Width)*scale), 1)
	height = max(int(float64(p.fb.Height)*scale), 1)
	return width, height
}

// Draw implements uv.Drawable.
func (p *Preview) Draw(scr uv.Screen, area uv.Rectangle) {
	width, height := p.Fit(area.Dx(), area.Dy())
	if width == 0 {
		return
	}
	offsetX := area.Min.X + (area.Dx()-width)/2

	for row := 0; row*2 < height; row++ {
		topY := row * 2
		botY := topY + 1

		for col := 0; col < width; col++ {
			var bottom color.Color
			if botY < height {
				bottom = p.sample(col, botY, width, height)
			}

			scr.SetCell(offsetX+col, area.Min.Y+row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: p.sample(col, topY, width, height),
					Bg: bottom,
				},
			})
		}
	}
}

// sample maps (x, y) in a width x height grid back to a framebuffer pixel.
func (p *Preview) sample(x, y, width, height int) color.Color {
	return p.fb.GetPixel(x*p.fb.Width/width, y*p.fb.Height/height)
}
