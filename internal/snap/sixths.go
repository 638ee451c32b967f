package snap

import (
	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/geometry"
)

// Sixths cycle through an adjacency graph rather than the plain reading
// order: repeating a sixth action visits the two-cell spans that contain
// the cell before returning to it. Center cells have two containing spans
// and cycle with period three (cell, right span, left span); corner cells
// have one and cycle with period two. The example chain for the bottom
// center cell is bottom-center, bottom-right-two-sixths,
// bottom-left-two-sixths, back to bottom-center.
//
// Span names follow the landscape arrangement. In portrait the grid
// transposes: a top-row span becomes a left-column span of 1/2 by 2/3.

var sixthCycleChains = map[action.Action][]action.SubAction{
	action.TopLeftSixth: {
		action.SubTopLeftSixth, action.SubTopLeftTwoSixths,
	},
	action.TopCenterSixth: {
		action.SubTopCenterSixth, action.SubTopRightTwoSixths, action.SubTopLeftTwoSixths,
	},
	action.TopRightSixth: {
		action.SubTopRightSixth, action.SubTopRightTwoSixths,
	},
	action.BottomLeftSixth: {
		action.SubBottomLeftSixth, action.SubBottomLeftTwoSixths,
	},
	action.BottomCenterSixth: {
		action.SubBottomCenterSixth, action.SubBottomRightTwoSixths, action.SubBottomLeftTwoSixths,
	},
	action.BottomRightSixth: {
		action.SubBottomRightSixth, action.SubBottomRightTwoSixths,
	},
}

func resolveSixth(req Request, screen geometry.Rect, hist *History) Result {
	chain := sixthCycleChains[req.Action]
	if chain == nil {
		return unhandled
	}

	idx, count := 0, 1
	if hist != nil && hist.Action == req.Action {
		for i, sub := range chain {
			if sub == hist.SubAction {
				idx = (i + 1) % len(chain)
				count = hist.Count + 1
				break
			}
		}
	}

	sub := chain[idx]
	return handledResult(req, sixthRect(screen, sub), sub, count)
}

// sixthRect resolves a sixth cell or span sub-action to its rectangle.
func sixthRect(screen geometry.Rect, sub action.SubAction) geometry.Rect {
	if k := sixthsSpec.subOrdinal(sub); k >= 0 {
		return sixthsSpec.cellPlacement(screen, k).rect
	}
	return sixthSpanRect(screen, sub)
}

// sixthSpanRect places the two-cell spans. Landscape spans are 2/3 by 1/2:
// the left span covers columns 0-1 of its row, the right span columns 1-2.
// Portrait spans are the transposed 1/2 by 2/3 column runs: "top" selects
// the left column, "left" the upper pair of rows.
func sixthSpanRect(screen geometry.Rect, sub action.SubAction) geometry.Rect {
	return byOrientation(screen,
		func(s geometry.Rect) placement {
			w := geometry.FloorFrac(s.Width, 2.0/3.0)
			h := geometry.FloorFrac(s.Height, 0.5)
			x, y := s.X, s.Y
			switch sub {
			case action.SubTopLeftTwoSixths:
				y = s.MaxY() - h
			case action.SubTopRightTwoSixths:
				x, y = s.MaxX()-w, s.MaxY()-h
			case action.SubBottomLeftTwoSixths:
				// bottom-left anchor
			case action.SubBottomRightTwoSixths:
				x = s.MaxX() - w
			}
			return placement{geometry.Rect{X: x, Y: y, Width: w, Height: h}, sub}
		},
		func(s geometry.Rect) placement {
			w := geometry.FloorFrac(s.Width, 0.5)
			h := geometry.FloorFrac(s.Height, 2.0/3.0)
			x, y := s.X, s.Y
			switch sub {
			case action.SubTopLeftTwoSixths:
				y = s.MaxY() - h
			case action.SubTopRightTwoSixths:
				// left column, lower pair
			case action.SubBottomLeftTwoSixths:
				x, y = s.MaxX()-w, s.MaxY()-h
			case action.SubBottomRightTwoSixths:
				x = s.MaxX() - w
			}
			return placement{geometry.Rect{X: x, Y: y, Width: w, Height: h}, sub}
		}).rect
}
