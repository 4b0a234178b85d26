package render

import (
	"fmt"
	"io"
)

// Progress receives one increment per rendered pixel and a final Finish.
type Progress interface {
	Increment(n int)
	Finish()
}

// ProgressFunc creates a Progress for a render of total pixels.
type ProgressFunc func(total int) Progress

type nopProgress struct{}

func (nopProgress) Increment(int) {}
func (nopProgress) Finish()       {}

// Renderer casts one ray per pixel and writes the result as a PPM stream.
type Renderer struct {
	Camera *Camera
	Shader Shader // Gradient when nil

	// Progress is optional.
	Progress ProgressFunc

	// Framebuffer, when set, receives a display copy of every pixel. It must
	// be at least as large as the camera image.
	Framebuffer *Framebuffer
}

// NewRenderer creates a renderer for camera using the Gradient shader.
func NewRenderer(camera *Camera) *Renderer {
	return &Renderer{
		Camera: camera,
		Shader: Gradient,
	}
}

// Render writes the header and then every pixel in row-major order, top row
// first. The first write error stops the render and is returned.
// Render does not buffer; wrap w in a bufio.Writer and flush it afterwards
// for file output.
func (r *Renderer) Render(w io.Writer) error {
	img := r.Camera.Image()

	shader := r.Shader
	if shader == nil {
		shader = Gradient
	}

	var progress Progress = nopProgress{}
	if r.Progress != nil {
		progress = r.Progress(img.Pixels())
	}

	if err := WriteHeader(w, img); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			c := shader(r.Camera.Ray(row, col))
			if err := WriteColor(w, c); err != nil {
				return fmt.Errorf("write pixel (%d, %d): %w", row, col, err)
			}
			if r.Framebuffer != nil {
				r.Framebuffer.SetPixel(col, row, ToRGBA(c))
			}
			progress.Increment(1)
		}
	}

	progress.Finish()
	return nil
}
