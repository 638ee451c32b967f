package snap

import (
	"testing"

	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/geometry"
)

// runSequence resolves a chain of actions against one screen, feeding each
// result back as the next invocation's history and window rect.
func runSequence(t *testing.T, screen geometry.Rect, actions []action.Action) []Result {
	t.Helper()
	win := geometry.Rect{X: 7, Y: 7, Width: 60, Height: 60}
	var hist *History
	var out []Result
	for i, a := range actions {
		res := Resolve(singleScreenRequest(a, screen, win, hist))
		if !res.Handled {
			t.Fatalf("step %d (%v) unexpectedly not handled", i, a)
		}
		out = append(out, res)
		hist = &History{Action: res.Action, SubAction: res.SubAction, Rect: res.Rect, Count: res.Count}
		win = res.Rect
	}
	return out
}

func TestFirstThirdWalksForward(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1200, Height: 600}
	res := runSequence(t, screen, []action.Action{
		action.FirstThird, action.FirstThird, action.FirstThird, action.FirstThird,
	})

	want := []geometry.Rect{
		{X: 0, Y: 0, Width: 400, Height: 600},
		{X: 400, Y: 0, Width: 400, Height: 600},
		{X: 800, Y: 0, Width: 400, Height: 600},
		{X: 0, Y: 0, Width: 400, Height: 600},
	}
	for i, r := range res {
		if r.Rect != want[i] {
			t.Fatalf("step %d = %+v, want %+v", i, r.Rect, want[i])
		}
	}
}

func TestLastThirdWalksBackward(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1200, Height: 600}
	res := runSequence(t, screen, []action.Action{action.LastThird, action.LastThird})

	if res[0].Rect.X != 800 {
		t.Fatalf("fresh last-third x = %d, want 800", res[0].Rect.X)
	}
	if res[1].Rect.X != 400 {
		t.Fatalf("repeated last-third x = %d, want center 400", res[1].Rect.X)
	}
	if res[1].SubAction != action.SubCenterVerticalThird {
		t.Fatalf("sub = %v, want center-vertical-third", res[1].SubAction)
	}
}

func TestCenterThirdDoesNotCycle(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1200, Height: 600}
	res := runSequence(t, screen, []action.Action{action.CenterThird, action.CenterThird})

	want := geometry.Rect{X: 400, Y: 0, Width: 400, Height: 600}
	for i, r := range res {
		if r.Rect != want {
			t.Fatalf("step %d = %+v, want stationary %+v", i, r.Rect, want)
		}
	}
	if res[1].Count != 1 {
		t.Fatalf("count = %d, want 1 for a non-cycling action", res[1].Count)
	}
}

func TestTwoThirdsPlacementAndCycle(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1200, Height: 600}
	res := runSequence(t, screen, []action.Action{action.FirstTwoThirds, action.FirstTwoThirds})

	if want := (geometry.Rect{X: 0, Y: 0, Width: 800, Height: 600}); res[0].Rect != want {
		t.Fatalf("fresh first-two-thirds = %+v, want %+v", res[0].Rect, want)
	}
	// Centered: the 400px remainder splits evenly.
	if want := (geometry.Rect{X: 200, Y: 0, Width: 800, Height: 600}); res[1].Rect != want {
		t.Fatalf("repeated first-two-thirds = %+v, want %+v", res[1].Rect, want)
	}
}

func TestThirdsPortraitUsesRows(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 600, Height: 1200}
	res := runSequence(t, screen, []action.Action{action.LastThird})

	// Position 2 in portrait is the bottom row.
	want := geometry.Rect{X: 0, Y: 0, Width: 600, Height: 400}
	if res[0].Rect != want {
		t.Fatalf("portrait last-third = %+v, want %+v", res[0].Rect, want)
	}
	if res[0].SubAction != action.SubBottomThird {
		t.Fatalf("sub = %v, want bottom-third", res[0].SubAction)
	}
}
