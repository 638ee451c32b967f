package snap

import (
	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/geometry"
)

// GridType parametrizes the four grid families. Cell geometry is derived
// from the screen, never stored.
type GridType int

const (
	// GridNinths is a 3x3 grid, orientation invariant.
	GridNinths GridType = iota
	// GridEighths is 4x2 in landscape and rotates to 2x4 in portrait.
	GridEighths
	// GridCornerThirds is a 2x2 grid of overlapping cells: the major axis
	// spans two thirds, the minor axis one half, so each corner covers
	// more than a quarter of the screen.
	GridCornerThirds
	// GridSixths is 3x2 in landscape, 2x3 in portrait.
	GridSixths
)

// dims returns columns and rows for the orientation.
func (g GridType) dims(landscape bool) (cols, rows int) {
	switch g {
	case GridNinths:
		return 3, 3
	case GridEighths:
		if landscape {
			return 4, 2
		}
		return 2, 4
	case GridCornerThirds:
		return 2, 2
	case GridSixths:
		if landscape {
			return 3, 2
		}
		return 2, 3
	}
	return 0, 0
}

// CellWidth returns the floored cell width for a screen width.
func (g GridType) CellWidth(screenWidth int, landscape bool) int {
	if g == GridCornerThirds {
		if landscape {
			return geometry.FloorFrac(screenWidth, 2.0/3.0)
		}
		return geometry.FloorFrac(screenWidth, 0.5)
	}
	cols, _ := g.dims(landscape)
	return geometry.FloorFrac(screenWidth, 1.0/float64(cols))
}

// CellHeight returns the floored cell height for a screen height.
func (g GridType) CellHeight(screenHeight int, landscape bool) int {
	if g == GridCornerThirds {
		if landscape {
			return geometry.FloorFrac(screenHeight, 0.5)
		}
		return geometry.FloorFrac(screenHeight, 2.0/3.0)
	}
	_, rows := g.dims(landscape)
	return geometry.FloorFrac(screenHeight, 1.0/float64(rows))
}

// CellRect returns the rectangle of the cell at (col, row). Column 0 is
// leftmost, row 0 is topmost; rows count down from the screen's top edge.
// Corner-third cells are anchored to their corner so the overlap lands in
// the middle of the screen rather than past its right edge.
func (g GridType) CellRect(screen geometry.Rect, col, row int) geometry.Rect {
	landscape := screen.IsLandscape()
	w := g.CellWidth(screen.Width, landscape)
	h := g.CellHeight(screen.Height, landscape)

	if g == GridCornerThirds {
		x := screen.X
		if col == 1 {
			x = screen.MaxX() - w
		}
		y := screen.Y
		if row == 0 {
			y = screen.MaxY() - h
		}
		return geometry.Rect{X: x, Y: y, Width: w, Height: h}
	}

	return geometry.Rect{
		X:      screen.X + w*col,
		Y:      screen.MaxY() - h*(row+1),
		Width:  w,
		Height: h,
	}
}

// gridSpec ties a grid family's actions to cells and to the reading-order
// cycling sequence. Cell coordinates are given for landscape; sixths and
// eighths transpose in portrait so each cell keeps its identity while the
// grid rotates. Ninths are orientation invariant and corner thirds stay
// anchored to their named corner.
type gridSpec struct {
	grid      GridType
	actions   []action.Action    // reading order
	subs      []action.SubAction // parallel to actions
	cells     [][2]int           // landscape (col, row), parallel to actions
	transpose bool
}

var ninthsSpec = gridSpec{
	grid: GridNinths,
	actions: []action.Action{
		action.TopLeftNinth, action.TopCenterNinth, action.TopRightNinth,
		action.MiddleLeftNinth, action.MiddleCenterNinth, action.MiddleRightNinth,
		action.BottomLeftNinth, action.BottomCenterNinth, action.BottomRightNinth,
	},
	subs: []action.SubAction{
		action.SubTopLeftNinth, action.SubTopCenterNinth, action.SubTopRightNinth,
		action.SubMiddleLeftNinth, action.SubMiddleCenterNinth, action.SubMiddleRightNinth,
		action.SubBottomLeftNinth, action.SubBottomCenterNinth, action.SubBottomRightNinth,
	},
	cells: [][2]int{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
		{0, 2}, {1, 2}, {2, 2},
	},
}

var eighthsSpec = gridSpec{
	grid: GridEighths,
	actions: []action.Action{
		action.TopLeftEighth, action.TopCenterLeftEighth, action.TopCenterRightEighth, action.TopRightEighth,
		action.BottomLeftEighth, action.BottomCenterLeftEighth, action.BottomCenterRightEighth, action.BottomRightEighth,
	},
	subs: []action.SubAction{
		action.SubTopLeftEighth, action.SubTopCenterLeftEighth, action.SubTopCenterRightEighth, action.SubTopRightEighth,
		action.SubBottomLeftEighth, action.SubBottomCenterLeftEighth, action.SubBottomCenterRightEighth, action.SubBottomRightEighth,
	},
	cells: [][2]int{
		{0, 0}, {1, 0}, {2, 0}, {3, 0},
		{0, 1}, {1, 1}, {2, 1}, {3, 1},
	},
	transpose: true,
}

var cornerThirdsSpec = gridSpec{
	grid: GridCornerThirds,
	actions: []action.Action{
		action.TopLeftThird, action.TopRightThird,
		action.BottomLeftThird, action.BottomRightThird,
	},
	subs: []action.SubAction{
		action.SubTopLeftThird, action.SubTopRightThird,
		action.SubBottomLeftThird, action.SubBottomRightThird,
	},
	cells: [][2]int{
		{0, 0}, {1, 0},
		{0, 1}, {1, 1},
	},
}

var sixthsSpec = gridSpec{
	grid: GridSixths,
	actions: []action.Action{
		action.TopLeftSixth, action.TopCenterSixth, action.TopRightSixth,
		action.BottomLeftSixth, action.BottomCenterSixth, action.BottomRightSixth,
	},
	subs: []action.SubAction{
		action.SubTopLeftSixth, action.SubTopCenterSixth, action.SubTopRightSixth,
		action.SubBottomLeftSixth, action.SubBottomCenterSixth, action.SubBottomRightSixth,
	},
	cells: [][2]int{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
	},
	transpose: true,
}

func gridSpecFor(fam action.Family) *gridSpec {
	switch fam {
	case action.FamilyNinths:
		return &ninthsSpec
	case action.FamilyEighths:
		return &eighthsSpec
	case action.FamilyCornerThirds:
		return &cornerThirdsSpec
	case action.FamilySixths:
		return &sixthsSpec
	}
	return nil
}

// ordinal returns the reading-order index of an action, or -1.
func (g *gridSpec) ordinal(a action.Action) int {
	for i, act := range g.actions {
		if act == a {
			return i
		}
	}
	return -1
}

// subOrdinal returns the reading-order index of a sub-action, or -1.
func (g *gridSpec) subOrdinal(s action.SubAction) int {
	for i, sub := range g.subs {
		if sub == s {
			return i
		}
	}
	return -1
}

// cellPlacement resolves ordinal k to its rectangle on the screen.
func (g *gridSpec) cellPlacement(screen geometry.Rect, k int) placement {
	col, row := g.cells[k][0], g.cells[k][1]
	if g.transpose && !screen.IsLandscape() {
		col, row = row, col
	}
	return placement{g.grid.CellRect(screen, col, row), g.subs[k]}
}

// resolveGrid handles ninths, eighths, and corner thirds: reading-order
// traversal with wraparound on repeat, falling back to the action's own
// cell when the previous sub-action belongs to a different grid.
func resolveGrid(req Request, screen geometry.Rect, hist *History) Result {
	spec := gridSpecFor(req.Action.Family())
	if spec == nil {
		return unhandled
	}
	def := spec.ordinal(req.Action)
	if def < 0 {
		return unhandled
	}

	k, count := def, 1
	if hist != nil && hist.Action == req.Action {
		if prev := spec.subOrdinal(hist.SubAction); prev >= 0 {
			n := len(spec.actions)
			k = ((prev+gridCycleDirection)%n + n) % n
			count = hist.Count + 1
		}
	}
	p := spec.cellPlacement(screen, k)
	return handledResult(req, p.rect, p.sub, count)
}

// gridCycleDirection is the traversal step for repeated grid actions:
// forward through reading order. The sixths family has its own adjacency
// cycling and does not use this.
const gridCycleDirection = 1
