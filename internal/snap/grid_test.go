package snap

import (
	"testing"

	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/geometry"
)

func TestNinthsCoverScreenWithinFlooring(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1000, Height: 700}

	if w := GridNinths.CellWidth(screen.Width, true); w != 333 {
		t.Fatalf("ninth cell width = %d, want 333", w)
	}
	if h := GridNinths.CellHeight(screen.Height, true); h != 233 {
		t.Fatalf("ninth cell height = %d, want 233", h)
	}

	// Cells tile without overlap; only the flooring remainder is uncovered.
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			c := GridNinths.CellRect(screen, col, row)
			if c.X < screen.X || c.MaxX() > screen.MaxX() || c.Y < screen.Y || c.MaxY() > screen.MaxY() {
				t.Fatalf("cell (%d,%d) = %+v escapes the screen", col, row, c)
			}
		}
	}
	if gap := screen.Width - 3*333; gap >= 3 {
		t.Fatalf("horizontal remainder %d should be under one pixel per cell", gap)
	}
}

func TestNinthsOrientationInvariant(t *testing.T) {
	landscape := geometry.Rect{X: 0, Y: 0, Width: 900, Height: 600}
	portrait := geometry.Rect{X: 0, Y: 0, Width: 600, Height: 900}

	l := Resolve(singleScreenRequest(action.TopRightNinth, landscape, geometry.Rect{}, nil))
	p := Resolve(singleScreenRequest(action.TopRightNinth, portrait, geometry.Rect{}, nil))

	// Same cell identity in both orientations: rightmost column, top row.
	if l.Rect.X != 600 || l.Rect.Y != 400 {
		t.Fatalf("landscape top-right-ninth = %+v", l.Rect)
	}
	if p.Rect.X != 400 || p.Rect.Y != 600 {
		t.Fatalf("portrait top-right-ninth = %+v", p.Rect)
	}
}

func TestNinthsCycleReadingOrder(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 900, Height: 900}
	res := runSequence(t, screen, []action.Action{
		action.TopLeftNinth, action.TopLeftNinth, action.TopLeftNinth,
	})

	wantSubs := []action.SubAction{
		action.SubTopLeftNinth, action.SubTopCenterNinth, action.SubTopRightNinth,
	}
	for i, r := range res {
		if r.SubAction != wantSubs[i] {
			t.Fatalf("step %d sub = %v, want %v", i, r.SubAction, wantSubs[i])
		}
	}
	if res[1].Rect.X != 300 || res[2].Rect.X != 600 {
		t.Fatalf("cycle positions = %d, %d, want 300, 600", res[1].Rect.X, res[2].Rect.X)
	}
}

func TestNinthsCycleWrapsToFirstCell(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 900, Height: 900}
	win := geometry.Rect{X: 600, Y: 0, Width: 300, Height: 300}
	hist := &History{
		Action: action.BottomRightNinth, SubAction: action.SubBottomRightNinth,
		Rect: win, Count: 1,
	}

	res := Resolve(singleScreenRequest(action.BottomRightNinth, screen, win, hist))
	if res.SubAction != action.SubTopLeftNinth {
		t.Fatalf("wrap = %v, want top-left-ninth", res.SubAction)
	}
}

func TestEighthsLandscape(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1600, Height: 800}
	res := Resolve(singleScreenRequest(action.TopCenterRightEighth, screen, geometry.Rect{}, nil))

	want := geometry.Rect{X: 800, Y: 400, Width: 400, Height: 400}
	if res.Rect != want {
		t.Fatalf("top-center-right-eighth = %+v, want %+v", res.Rect, want)
	}
}

func TestEighthsTransposeInPortrait(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 800, Height: 1600}
	res := Resolve(singleScreenRequest(action.TopCenterLeftEighth, screen, geometry.Rect{}, nil))

	// Landscape cell (1,0) becomes portrait cell (0,1): left column,
	// second row from the top.
	want := geometry.Rect{X: 0, Y: 800, Width: 400, Height: 400}
	if res.Rect != want {
		t.Fatalf("portrait top-center-left-eighth = %+v, want %+v", res.Rect, want)
	}
}

func TestCornerThirdsPortraitSwapsAxes(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 600, Height: 900}
	res := Resolve(singleScreenRequest(action.TopLeftThird, screen, geometry.Rect{}, nil))

	// Portrait: half width, two-thirds height, still anchored top-left.
	want := geometry.Rect{X: 0, Y: 300, Width: 300, Height: 600}
	if res.Rect != want {
		t.Fatalf("portrait top-left-third = %+v, want %+v", res.Rect, want)
	}
}

func TestCornerThirdsCycle(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 900, Height: 600}
	res := runSequence(t, screen, []action.Action{action.TopLeftThird, action.TopLeftThird})

	if res[1].SubAction != action.SubTopRightThird {
		t.Fatalf("cycle = %v, want top-right-third", res[1].SubAction)
	}
	if want := (geometry.Rect{X: 300, Y: 300, Width: 600, Height: 300}); res[1].Rect != want {
		t.Fatalf("top-right-third = %+v, want %+v", res[1].Rect, want)
	}
}
