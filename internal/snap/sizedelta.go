package snap

import (
	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/geometry"
)

// edgeFlush records which window edges sit on the screen edge, within the
// configured gap tolerance. Captured before a resize so curtain mode can
// re-pin those edges afterward.
type edgeFlush struct {
	left, right, top, bottom bool
}

func detectFlush(win, screen geometry.Rect, tolerance int) edgeFlush {
	return edgeFlush{
		left:   intAbs(win.X-screen.X) <= tolerance,
		right:  intAbs(win.MaxX()-screen.MaxX()) <= tolerance,
		top:    intAbs(win.MaxY()-screen.MaxY()) <= tolerance,
		bottom: intAbs(win.Y-screen.Y) <= tolerance,
	}
}

// pin re-snaps the flush edges of r to the screen, keeping its size.
func (f edgeFlush) pin(r, screen geometry.Rect) geometry.Rect {
	if f.left {
		r.X = screen.X
	}
	if f.right {
		r.X = screen.MaxX() - r.Width
	}
	if f.bottom {
		r.Y = screen.Y
	}
	if f.top {
		r.Y = screen.MaxY() - r.Height
	}
	return r
}

// resolveSizeDelta grows or shrinks the window around its center by a fixed
// pixel step. Shrinks that would drop below the minimum screen fraction on
// the affected axis return the window unchanged.
func resolveSizeDelta(req Request, screen geometry.Rect) Result {
	win := req.Window
	s := req.Settings

	var dw, dh int
	switch req.Action {
	case action.Larger:
		dw, dh = s.SizeStep, s.SizeStep
	case action.Smaller:
		dw, dh = -s.SizeStep, -s.SizeStep
	case action.LargerWidth:
		dw = s.WidthStep
	case action.SmallerWidth:
		dw = -s.WidthStep
	case action.LargerHeight:
		dh = s.HeightStep
	case action.SmallerHeight:
		dh = -s.HeightStep
	default:
		return unhandled
	}

	newW, newH := win.Width+dw, win.Height+dh

	// Reject shrinks below the per-axis floor; the whole operation reverts.
	minW := geometry.FloorFrac(screen.Width, s.MinimumFraction)
	minH := geometry.FloorFrac(screen.Height, s.MinimumFraction)
	if (dw < 0 && newW < minW) || (dh < 0 && newH < minH) {
		return handledResult(req, win, action.SubNone, 1)
	}

	if newW > screen.Width {
		newW = screen.Width
	}
	if newH > screen.Height {
		newH = screen.Height
	}

	// Apply half the delta to each edge.
	r := geometry.Rect{
		X:      win.X - geometry.RoundHalf(newW-win.Width),
		Y:      win.Y - geometry.RoundHalf(newH-win.Height),
		Width:  newW,
		Height: newH,
	}
	r = clampInto(r, screen)

	if s.CurtainResize {
		r = detectFlush(win, screen, s.GapTolerance).pin(r, screen)
	}
	return handledResult(req, r, action.SubNone, 1)
}

// resolveHalveDouble halves or doubles one axis, keeping the edge opposite
// the named direction fixed: the moving edge travels in that direction.
func resolveHalveDouble(req Request, screen geometry.Rect) Result {
	win := req.Window
	r := win

	switch req.Action {
	case action.HalveHeightUp:
		// Bottom edge moves up; top edge stays.
		r.Height = win.Height / 2
		r.Y = win.MaxY() - r.Height
	case action.HalveHeightDown:
		r.Height = win.Height / 2
	case action.HalveWidthLeft:
		// Right edge moves left; left edge stays.
		r.Width = win.Width / 2
	case action.HalveWidthRight:
		r.Width = win.Width / 2
		r.X = win.MaxX() - r.Width
	case action.DoubleHeightUp:
		// Top edge moves up; bottom edge stays.
		r.Height = win.Height * 2
	case action.DoubleHeightDown:
		r.Height = win.Height * 2
		r.Y = win.MaxY() - r.Height
	case action.DoubleWidthLeft:
		r.Width = win.Width * 2
		r.X = win.MaxX() - r.Width
	case action.DoubleWidthRight:
		r.Width = win.Width * 2
	default:
		return unhandled
	}

	r = clampInto(r, screen)
	return handledResult(req, r, action.SubNone, 1)
}

// clampInto caps r's size to the screen and shifts it fully on-screen.
func clampInto(r, screen geometry.Rect) geometry.Rect {
	if r.Width > screen.Width {
		r.Width = screen.Width
	}
	if r.Height > screen.Height {
		r.Height = screen.Height
	}
	if r.X < screen.X {
		r.X = screen.X
	}
	if r.MaxX() > screen.MaxX() {
		r.X = screen.MaxX() - r.Width
	}
	if r.Y < screen.Y {
		r.Y = screen.Y
	}
	if r.MaxY() > screen.MaxY() {
		r.Y = screen.MaxY() - r.Height
	}
	return r
}

func intAbs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
