// raytrace - render a camera's view of the sky to a PPM image.
//
// The image is written as plain-text PPM (P3) to stdout or to the file
// named by -o. Progress is reported on stderr.
//
// Preview controls:
//
//	q/Esc/Enter - Quit
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/dcorey28/raytrace/pkg/models"
	"github.com/dcorey28/raytrace/pkg/progress"
	"github.com/dcorey28/raytrace/pkg/render"
)

var (
	aspectRatio  = flag.Float64("aspect", 16.0/9.0, "Ideal aspect ratio (width / height)")
	imageWidth   = flag.Int("width", 400, "Image width in pixels")
	outputPath   = flag.String("o", "-", "Output PPM file (- for stdout)")
	pngPath      = flag.String("png", "", "Also save the image as PNG")
	cameraPath   = flag.String("camera", "", "Take the aspect ratio from the first perspective camera in a .gltf/.glb file")
	showPreview  = flag.Bool("preview", false, "Show the finished image in the terminal")
	showProgress = flag.Bool("progress", true, "Show a progress bar on stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "raytrace - PPM ray tracer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: raytrace [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  raytrace > image.ppm\n")
		fmt.Fprintf(os.Stderr, "  raytrace -width 800 -o image.ppm -png image.png -preview\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ratio := *aspectRatio
	if *cameraPath != "" {
		info, err := models.LoadCamera(*cameraPath)
		if err != nil {
			return fmt.Errorf("load camera: %w", err)
		}
		ratio = info.AspectRatio
		fmt.Fprintf(os.Stderr, "Using camera %q (aspect ratio %.4f)\n", info.Name, ratio)
	}

	// The renderer trusts its inputs, so reject bad ones here.
	if ratio <= 0 {
		return fmt.Errorf("aspect ratio must be positive, got %v", ratio)
	}
	if *imageWidth < 1 {
		return fmt.Errorf("image width must be at least 1, got %d", *imageWidth)
	}
	if *showPreview && *outputPath == "-" {
		return fmt.Errorf("-preview needs -o: the terminal cannot show the preview and the PPM stream")
	}

	camera := render.NewCamera(ratio, *imageWidth)
	renderer := render.NewRenderer(camera)
	if *showProgress {
		renderer.Progress = func(total int) render.Progress {
			return progress.New(os.Stderr, total)
		}
	}

	var fb *render.Framebuffer
	if *pngPath != "" || *showPreview {
		fb = render.NewFramebufferFor(camera.Image())
		renderer.Framebuffer = fb
	}

	if err := writeImage(renderer, *outputPath); err != nil {
		return err
	}

	img := camera.Image()
	if *outputPath != "-" {
		fmt.Fprintf(os.Stderr, "Saved %s (%dx%d)\n", *outputPath, img.Width, img.Height)
	}

	if *pngPath != "" {
		if err := fb.SavePNG(*pngPath); err != nil {
			return fmt.Errorf("save png: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved %s\n", *pngPath)
	}

	if *showPreview {
		return preview(fb)
	}
	return nil
}

// writeImage renders into path through a buffered writer and flushes it
// before the file is closed.
func writeImage(renderer *render.Renderer, path string) error {
	var out io.Writer = os.Stdout
	var f *os.File
	if path != "-" {
		var err error
		f, err = os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	if err := renderer.Render(w); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	if f != nil {
		if err := f.Close(); err != nil {
			return fmt.Errorf("close output: %w", err)
		}
	}
	return nil
}

// preview shows fb in the alternate screen until a quit key or signal.
func preview(fb *render.Framebuffer) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	drawable := render.NewPreview(fb)
	draw := func() error {
		term.Draw(drawable)
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}
		return nil
	}
	if err := draw(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-term.Events():
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				term.Erase()
				term.Resize(ev.Width, ev.Height)
				if err := draw(); err != nil {
					return err
				}
			case uv.KeyPressEvent:
				if ev.MatchString("q", "escape", "enter", "ctrl+c") {
					return nil
				}
			}
		}
	}
}
