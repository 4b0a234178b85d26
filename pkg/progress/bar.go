// Package progress draws a single-line progress bar on a terminal.
package progress

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	defaultWidth = 40
	redrawFPS    = 30
)

// Bar is a single-line progress bar redrawn in place with a carriage return.
// The filled part follows the real fraction through a critically damped
// spring, so it glides instead of stepping. The percentage and ETA are exact.
//
// A Bar is not safe for concurrent use.
type Bar struct {
	w             io.Writer
	total         int
	current       int
	width         int
	message       string
	finishMessage string

	spring   harmonica.Spring
	shown    float64
	velocity float64

	now      func() time.Time
	start    time.Time
	lastDraw time.Time
	interval time.Duration
	finished bool
}

// New creates a bar counting up to total and draws it once.
func New(w io.Writer, total int) *Bar {
	return newBar(w, total, time.Now)
}

func newBar(w io.Writer, total int, now func() time.Time) *Bar {
	b := &Bar{
		w:             w,
		total:         total,
		width:         defaultWidth,
		message:       "rendering",
		finishMessage: "rendering finished",
		// Frequency 6.0 = quick follow, damping 1.0 = critically damped (never overshoots)
		spring:   harmonica.NewSpring(harmonica.FPS(redrawFPS), 6.0, 1.0),
		now:      now,
		interval: time.Second / redrawFPS,
	}
	b.start = b.now()
	b.draw()
	return b
}

// SetWidth sets the number of cells used by the bar itself.
func (b *Bar) SetWidth(width int) {
	b.width = max(width, 1)
}

// SetMessage sets the text shown before the bar while running and after
// Finish.
func (b *Bar) SetMessage(running, finished string) {
	b.message = running
	b.finishMessage = finished
}

// Fraction returns the completed fraction in [0, 1].
func (b *Bar) Fraction() float64 {
	if b.total <= 0 {
		return 1
	}
	return min(float64(b.current)/float64(b.total), 1)
}

// Increment adds n completed units. Redraws are throttled.
func (b *Bar) Increment(n int) {
	b.current += n
	if b.now().Sub(b.lastDraw) >= b.interval {
		b.draw()
	}
}

// Finish draws the bar full with the finish message and ends the line.
// Calls after the first are ignored.
func (b *Bar) Finish() {
	if b.finished {
		return
	}
	b.finished = true
	b.shown, b.velocity = 1, 0
	b.render(b.finishMessage, 1, b.now().Sub(b.start).Round(time.Millisecond).String())
	fmt.Fprintln(b.w)
}

func (b *Bar) draw() {
	b.lastDraw = b.now()
	frac := b.Fraction()
	b.shown, b.velocity = b.spring.Update(b.shown, b.velocity, frac)
	b.shown = min(max(b.shown, 0), 1)
	b.render(b.message, frac, "eta "+b.eta())
}

func (b *Bar) render(message string, frac float64, suffix string) {
	filled := min(int(b.shown*float64(b.width)), b.width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", b.width-filled)
	fmt.Fprintf(b.w, "\r%s %s %3d%% %s\x1b[K", message, bar, int(frac*100), suffix)
}

func (b *Bar) eta() string {
	if b.current <= 0 {
		return "--"
	}
	elapsed := b.now().Sub(b.start)
	remaining := time.Duration(float64(elapsed) * float64(b.total-b.current) / float64(b.current))
	return max(remaining, 0).Round(time.Second).String()
}
