package x11

import (
	"testing"

	"github.com/1broseidon/snaptile/internal/geometry"
)

func TestCartesianRoundTrip(t *testing.T) {
	c := &Connection{RootWidth: 1920, RootHeight: 1080}

	r := c.ToCartesian(100, 50, 800, 600)
	want := geometry.Rect{X: 100, Y: 430, Width: 800, Height: 600}
	if r != want {
		t.Fatalf("ToCartesian = %+v, want %+v", r, want)
	}

	x, y, w, h := c.FromCartesian(r)
	if x != 100 || y != 50 || w != 800 || h != 600 {
		t.Fatalf("FromCartesian = %d,%d %dx%d, want the original geometry", x, y, w, h)
	}
}

func TestApplyStrutsOnlyAffectsOverlappingMonitor(t *testing.T) {
	// Two 1920x1080 monitors side by side; a 40px panel along the top of
	// the left one.
	struts := []strutRect{{x1: 0, y1: 0, x2: 1920, y2: 40, edge: strutTop, size: 40}}

	x, y, w, h := applyStruts(0, 0, 1920, 1080, 3840, 1080, struts)
	if x != 0 || y != 40 || w != 1920 || h != 1040 {
		t.Fatalf("left monitor = %d,%d %dx%d, want the panel subtracted", x, y, w, h)
	}

	x, y, w, h = applyStruts(1920, 0, 1920, 1080, 3840, 1080, struts)
	if x != 1920 || y != 0 || w != 1920 || h != 1080 {
		t.Fatalf("right monitor = %d,%d %dx%d, want untouched", x, y, w, h)
	}
}

func TestApplyStrutsNeverCollapsesMonitor(t *testing.T) {
	struts := []strutRect{{x1: 0, y1: 0, x2: 100, y2: 2000, edge: strutTop, size: 2000}}
	_, _, w, h := applyStruts(0, 0, 100, 100, 100, 100, struts)
	if w < 1 || h < 1 {
		t.Fatalf("monitor collapsed to %dx%d", w, h)
	}
}

func TestMonitorIndexFor(t *testing.T) {
	frames := []geometry.Rect{
		{X: 0, Y: 0, Width: 1000, Height: 600},
		{X: 1000, Y: 0, Width: 1000, Height: 600},
	}

	if idx := MonitorIndexFor(frames, geometry.Rect{X: 1200, Y: 100, Width: 300, Height: 200}); idx != 1 {
		t.Fatalf("center on the second monitor: idx = %d, want 1", idx)
	}
	// Straddling: the larger overlap wins.
	if idx := MonitorIndexFor(frames, geometry.Rect{X: 900, Y: 100, Width: 400, Height: 200}); idx != 1 {
		t.Fatalf("straddling window: idx = %d, want 1", idx)
	}
	// Fully off screen still resolves to something.
	if idx := MonitorIndexFor(frames, geometry.Rect{X: 5000, Y: 5000, Width: 10, Height: 10}); idx != 0 {
		t.Fatalf("off-screen window: idx = %d, want fallback 0", idx)
	}
}
