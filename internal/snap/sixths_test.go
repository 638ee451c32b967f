package snap

import (
	"testing"

	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/geometry"
)

func TestSixthCellsLandscape(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1200, Height: 600}

	cases := []struct {
		action action.Action
		want   geometry.Rect
	}{
		{action.TopLeftSixth, geometry.Rect{X: 0, Y: 300, Width: 400, Height: 300}},
		{action.TopCenterSixth, geometry.Rect{X: 400, Y: 300, Width: 400, Height: 300}},
		{action.TopRightSixth, geometry.Rect{X: 800, Y: 300, Width: 400, Height: 300}},
		{action.BottomLeftSixth, geometry.Rect{X: 0, Y: 0, Width: 400, Height: 300}},
		{action.BottomCenterSixth, geometry.Rect{X: 400, Y: 0, Width: 400, Height: 300}},
		{action.BottomRightSixth, geometry.Rect{X: 800, Y: 0, Width: 400, Height: 300}},
	}
	for _, tc := range cases {
		res := Resolve(singleScreenRequest(tc.action, screen, geometry.Rect{}, nil))
		if res.Rect != tc.want {
			t.Errorf("%v = %+v, want %+v", tc.action, res.Rect, tc.want)
		}
	}
}

func TestBottomCenterSixthChain(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1200, Height: 600}
	res := runSequence(t, screen, []action.Action{
		action.BottomCenterSixth, action.BottomCenterSixth,
		action.BottomCenterSixth, action.BottomCenterSixth,
	})

	// Cell, then the right-hand two-cell span, then the left-hand one,
	// then back to the cell.
	want := []geometry.Rect{
		{X: 400, Y: 0, Width: 400, Height: 300},
		{X: 400, Y: 0, Width: 800, Height: 300},
		{X: 0, Y: 0, Width: 800, Height: 300},
		{X: 400, Y: 0, Width: 400, Height: 300},
	}
	for i, r := range res {
		if r.Rect != want[i] {
			t.Fatalf("chain step %d = %+v, want %+v", i, r.Rect, want[i])
		}
	}
	if res[1].SubAction != action.SubBottomRightTwoSixths {
		t.Fatalf("step 1 sub = %v, want bottom-right-two-sixths", res[1].SubAction)
	}
}

func TestCornerSixthChainHasPeriodTwo(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1200, Height: 600}
	res := runSequence(t, screen, []action.Action{
		action.TopLeftSixth, action.TopLeftSixth, action.TopLeftSixth,
	})

	want := []geometry.Rect{
		{X: 0, Y: 300, Width: 400, Height: 300},
		{X: 0, Y: 300, Width: 800, Height: 300},
		{X: 0, Y: 300, Width: 400, Height: 300},
	}
	for i, r := range res {
		if r.Rect != want[i] {
			t.Fatalf("chain step %d = %+v, want %+v", i, r.Rect, want[i])
		}
	}
}

func TestSixthSpanPortraitShape(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 600, Height: 1200}
	res := runSequence(t, screen, []action.Action{action.TopLeftSixth, action.TopLeftSixth})

	// Portrait transposes the grid: the top-left cell lands in the left
	// column's top row, and the span becomes half wide and two thirds tall.
	if want := (geometry.Rect{X: 0, Y: 800, Width: 300, Height: 400}); res[0].Rect != want {
		t.Fatalf("portrait top-left-sixth = %+v, want %+v", res[0].Rect, want)
	}
	if want := (geometry.Rect{X: 0, Y: 400, Width: 300, Height: 800}); res[1].Rect != want {
		t.Fatalf("portrait span = %+v, want %+v", res[1].Rect, want)
	}
}

func TestSixthChainResetsAcrossActions(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, Width: 1200, Height: 600}
	res := runSequence(t, screen, []action.Action{
		action.TopLeftSixth, action.TopLeftSixth, action.TopRightSixth,
	})

	// Switching to a different sixth starts that action's chain at its cell.
	if want := (geometry.Rect{X: 800, Y: 300, Width: 400, Height: 300}); res[2].Rect != want {
		t.Fatalf("top-right-sixth after a foreign chain = %+v, want %+v", res[2].Rect, want)
	}
	if res[2].Count != 1 {
		t.Fatalf("count = %d, want reset to 1", res[2].Count)
	}
}
