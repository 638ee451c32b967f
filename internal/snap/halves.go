package snap

import (
	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/geometry"
)

// resolveHalf handles the half-screen family. The anchor edge is fixed per
// action; repeats cycle only the size along the free axis.
func resolveHalf(req Request, screen geometry.Rect, hist *History) Result {
	frac, count := cycleFraction(req, hist)

	var p placement
	switch req.Action {
	case action.LeftHalf:
		p = placement{leftColumn(screen, frac), action.SubLeftHalf}
	case action.RightHalf:
		p = placement{rightColumn(screen, frac), action.SubRightHalf}
	case action.TopHalf:
		p = placement{topRow(screen, frac), action.SubTopHalf}
	case action.BottomHalf:
		p = placement{bottomRow(screen, frac), action.SubBottomHalf}
	case action.CenterHalf:
		p = byOrientation(screen,
			func(s geometry.Rect) placement {
				return placement{centerColumn(s, frac), action.SubCenterHalfVertical}
			},
			func(s geometry.Rect) placement {
				return placement{centerRow(s, frac), action.SubCenterHalfHorizontal}
			})
	default:
		return unhandled
	}
	return handledResult(req, p.rect, p.sub, count)
}

// resolveCorner handles the quarter family: always half the screen height,
// anchored to the corner, with only the width cycling.
func resolveCorner(req Request, screen geometry.Rect, hist *History) Result {
	frac, count := cycleFraction(req, hist)

	w := geometry.FloorFrac(screen.Width, frac)
	h := geometry.FloorFrac(screen.Height, 0.5)

	var p placement
	switch req.Action {
	case action.TopLeft:
		p = placement{geometry.Rect{X: screen.X, Y: screen.MaxY() - h, Width: w, Height: h}, action.SubTopLeftQuarter}
	case action.TopRight:
		p = placement{geometry.Rect{X: screen.MaxX() - w, Y: screen.MaxY() - h, Width: w, Height: h}, action.SubTopRightQuarter}
	case action.BottomLeft:
		p = placement{geometry.Rect{X: screen.X, Y: screen.Y, Width: w, Height: h}, action.SubBottomLeftQuarter}
	case action.BottomRight:
		p = placement{geometry.Rect{X: screen.MaxX() - w, Y: screen.Y, Width: w, Height: h}, action.SubBottomRightQuarter}
	default:
		return unhandled
	}
	return handledResult(req, p.rect, p.sub, count)
}

// Column and row helpers shared across the fractional families. Widths and
// heights are floored; centering offsets round.

func leftColumn(s geometry.Rect, frac float64) geometry.Rect {
	return geometry.Rect{X: s.X, Y: s.Y, Width: geometry.FloorFrac(s.Width, frac), Height: s.Height}
}

func rightColumn(s geometry.Rect, frac float64) geometry.Rect {
	w := geometry.FloorFrac(s.Width, frac)
	return geometry.Rect{X: s.MaxX() - w, Y: s.Y, Width: w, Height: s.Height}
}

func centerColumn(s geometry.Rect, frac float64) geometry.Rect {
	w := geometry.FloorFrac(s.Width, frac)
	return geometry.Rect{X: s.X + geometry.RoundHalf(s.Width-w), Y: s.Y, Width: w, Height: s.Height}
}

func topRow(s geometry.Rect, frac float64) geometry.Rect {
	h := geometry.FloorFrac(s.Height, frac)
	return geometry.Rect{X: s.X, Y: s.MaxY() - h, Width: s.Width, Height: h}
}

func bottomRow(s geometry.Rect, frac float64) geometry.Rect {
	return geometry.Rect{X: s.X, Y: s.Y, Width: s.Width, Height: geometry.FloorFrac(s.Height, frac)}
}

func centerRow(s geometry.Rect, frac float64) geometry.Rect {
	h := geometry.FloorFrac(s.Height, frac)
	return geometry.Rect{X: s.X, Y: s.Y + geometry.RoundHalf(s.Height-h), Width: s.Width, Height: h}
}
