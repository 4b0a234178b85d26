package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBar(total int) (*Bar, *bytes.Buffer, *fakeClock) {
	var buf bytes.Buffer
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return newBar(&buf, total, clock.now), &buf, clock
}

func lastFrame(buf *bytes.Buffer) string {
	frames := strings.Split(buf.String(), "\r")
	return frames[len(frames)-1]
}

func TestBarFraction(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		done     int
		expected float64
	}{
		{"empty", 10, 0, 0},
		{"half", 10, 5, 0.5},
		{"full", 10, 10, 1},
		{"overshoot caps", 10, 15, 1},
		{"zero total", 0, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, _, _ := newTestBar(tc.total)
			b.Increment(tc.done)
			if got := b.Fraction(); got != tc.expected {
				t.Errorf("Fraction() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestBarInitialDraw(t *testing.T) {
	b, buf, _ := newTestBar(100)
	b.SetWidth(10)

	frame := lastFrame(buf)
	if !strings.HasPrefix(frame, "rendering ") {
		t.Errorf("frame %q should start with the message", frame)
	}
	if !strings.Contains(frame, "  0%") || !strings.Contains(frame, "eta --") {
		t.Errorf("frame %q should show 0%% and unknown eta", frame)
	}
}

func TestBarThrottlesRedraws(t *testing.T) {
	b, buf, clock := newTestBar(1000)
	before := strings.Count(buf.String(), "\r")

	for range 100 {
		b.Increment(1)
	}
	if got := strings.Count(buf.String(), "\r"); got != before {
		t.Errorf("redrew %d times without the clock moving", got-before)
	}

	clock.advance(time.Second)
	b.Increment(1)
	if got := strings.Count(buf.String(), "\r"); got != before+1 {
		t.Errorf("got %d redraws after the interval, want 1", got-before)
	}
	if frame := lastFrame(buf); !strings.Contains(frame, " 10%") {
		t.Errorf("frame %q should show 10%%", frame)
	}
}

func TestBarSpringApproachesFraction(t *testing.T) {
	b, _, clock := newTestBar(10)
	b.Increment(10)

	prev := b.shown
	for range 120 {
		clock.advance(time.Second)
		b.Increment(0)
		if b.shown < prev {
			t.Fatalf("shown fraction went backwards: %v after %v", b.shown, prev)
		}
		if b.shown > 1 {
			t.Fatalf("shown fraction %v overshot", b.shown)
		}
		prev = b.shown
	}
	if b.shown < 0.99 {
		t.Errorf("shown fraction = %v, want close to 1", b.shown)
	}
}

func TestBarETA(t *testing.T) {
	b, buf, clock := newTestBar(4)
	clock.advance(10 * time.Second)
	b.Increment(1)

	// 1 of 4 took 10s, so 3 remain at 10s each.
	if frame := lastFrame(buf); !strings.Contains(frame, "eta 30s") {
		t.Errorf("frame %q should show eta 30s", frame)
	}
}

func TestBarFinish(t *testing.T) {
	b, buf, clock := newTestBar(3)
	b.SetWidth(6)
	b.SetMessage("working", "done")
	b.Increment(3)
	clock.advance(1500 * time.Millisecond)
	b.Finish()

	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("output %q should end with a newline", out)
	}

	frame := strings.TrimSuffix(lastFrame(buf), "\n")
	if !strings.HasPrefix(frame, "done ██████ 100% 1.5s") {
		t.Errorf("final frame = %q", frame)
	}

	b.Finish()
	if buf.String() != out {
		t.Error("second Finish should not draw")
	}
}

func TestBarWidthFloor(t *testing.T) {
	b, _, _ := newTestBar(1)
	b.SetWidth(0)
	if b.width != 1 {
		t.Errorf("width = %d, want 1", b.width)
	}
}
