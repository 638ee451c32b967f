package snap

import (
	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/geometry"
)

// moveDir describes a directional move: the axis of motion and the sign of
// travel along it (Cartesian, so up is +1 on the y axis).
type moveDir struct {
	horizontal bool
	sign       int
}

func directionOf(a action.Action) (moveDir, bool) {
	switch a {
	case action.MoveLeft:
		return moveDir{horizontal: true, sign: -1}, true
	case action.MoveRight:
		return moveDir{horizontal: true, sign: 1}, true
	case action.MoveUp:
		return moveDir{horizontal: false, sign: 1}, true
	case action.MoveDown:
		return moveDir{horizontal: false, sign: -1}, true
	}
	return moveDir{}, false
}

// moveCycleFractions is the moving-axis resize cycle for MoveResize and
// MoveAcrossAndResize: one third, one half, two thirds, wrap.
var moveCycleFractions = [...]float64{1.0 / 3.0, 1.0 / 2.0, 2.0 / 3.0}

func moveCycleFraction(req Request, hist *History) (float64, int) {
	if hist == nil || hist.Action != req.Action {
		return moveCycleFractions[0], 1
	}
	pos := hist.Count % len(moveCycleFractions)
	return moveCycleFractions[pos], hist.Count + 1
}

func resolveMove(req Request, screen geometry.Rect, hist *History) Result {
	d, ok := directionOf(req.Action)
	if !ok {
		return unhandled
	}
	win := req.Window
	s := req.Settings
	target := screen
	count := 1

	var r geometry.Rect
	switch s.MoveMode {
	case MoveResize:
		var frac float64
		frac, count = moveCycleFraction(req, hist)
		r = snapEdge(resizeAxis(win, screen, d, frac), screen, d)

	case MoveAcrossMonitor:
		if len(req.Screens) > 1 && flushAtEdge(win, screen, d, s.GapTolerance) {
			idx, _ := adjacentScreen(req, d)
			target = req.Screens[idx]
			r = snapOppositeEdge(win, target, d)
		} else {
			r = snapEdge(win, screen, d)
		}

	case MoveAcrossAndResize:
		if len(req.Screens) < 2 {
			var frac float64
			frac, count = moveCycleFraction(req, hist)
			r = snapEdge(resizeAxis(win, screen, d, frac), screen, d)
			break
		}
		if flushAtEdge(win, screen, d, s.GapTolerance) {
			idx, wrapped := adjacentScreen(req, d)
			target = req.Screens[idx]
			if wrapped {
				// Full lap around the monitor ring; start resize cycling.
				var frac float64
				frac, count = moveCycleFraction(req, hist)
				r = snapOppositeEdge(resizeAxis(win, target, d, frac), target, d)
			} else {
				r = snapOppositeEdge(win, target, d)
			}
		} else {
			r = snapEdge(win, screen, d)
		}

	case MoveCycleMonitor:
		if len(req.Screens) > 1 && hist != nil && hist.Action == req.Action {
			idx, _ := adjacentScreen(req, d)
			target = req.Screens[idx]
			count = hist.Count + 1
		}
		r = snapEdge(win, target, d)

	default: // MoveSnap
		r = snapEdge(win, screen, d)
	}

	if s.CenterOnMove {
		r = centerCrossAxis(r, target, d)
	}
	r = clampInto(r, target)
	return handledResult(req, r, action.SubNone, count)
}

// snapEdge moves the rect flush with the screen edge in the direction of
// travel, leaving the cross axis alone.
func snapEdge(r, screen geometry.Rect, d moveDir) geometry.Rect {
	if d.horizontal {
		if d.sign < 0 {
			r.X = screen.X
		} else {
			r.X = screen.MaxX() - r.Width
		}
	} else {
		if d.sign > 0 {
			r.Y = screen.MaxY() - r.Height
		} else {
			r.Y = screen.Y
		}
	}
	return r
}

// snapOppositeEdge places the rect at the edge it would arrive at after
// crossing a monitor boundary in the direction of travel.
func snapOppositeEdge(r, screen geometry.Rect, d moveDir) geometry.Rect {
	return snapEdge(r, screen, moveDir{horizontal: d.horizontal, sign: -d.sign})
}

// resizeAxis resizes the moving axis to a fraction of the screen.
func resizeAxis(r, screen geometry.Rect, d moveDir, frac float64) geometry.Rect {
	if d.horizontal {
		r.Width = geometry.FloorFrac(screen.Width, frac)
	} else {
		r.Height = geometry.FloorFrac(screen.Height, frac)
	}
	return r
}

func flushAtEdge(r, screen geometry.Rect, d moveDir, tolerance int) bool {
	if d.horizontal {
		if d.sign < 0 {
			return intAbs(r.X-screen.X) <= tolerance
		}
		return intAbs(r.MaxX()-screen.MaxX()) <= tolerance
	}
	if d.sign > 0 {
		return intAbs(r.MaxY()-screen.MaxY()) <= tolerance
	}
	return intAbs(r.Y-screen.Y) <= tolerance
}

func centerCrossAxis(r, screen geometry.Rect, d moveDir) geometry.Rect {
	if d.horizontal {
		r.Y = screen.Y + geometry.RoundHalf(screen.Height-r.Height)
	} else {
		r.X = screen.X + geometry.RoundHalf(screen.Width-r.Width)
	}
	return r
}

// adjacentScreen returns the index of the next screen in the caller's ring
// order for the direction, and whether the step wrapped around the ring.
// Left and up walk backward; right and down walk forward.
func adjacentScreen(req Request, d moveDir) (int, bool) {
	n := len(req.Screens)
	step := 1
	if (d.horizontal && d.sign < 0) || (!d.horizontal && d.sign > 0) {
		step = -1
	}
	idx := (req.Screen + step + n) % n
	wrapped := (step == 1 && idx <= req.Screen) || (step == -1 && idx >= req.Screen)
	return idx, wrapped
}

// resolveDisplay handles next/previous-display. The window keeps its size
// and centers on the target screen unless a flag substitutes a richer
// behavior: keep-maximized re-maximizes a maximized window, and replay
// re-runs the window's last action against the new screen geometry with
// cleared history.
func resolveDisplay(req Request, screen geometry.Rect, hist *History) Result {
	n := len(req.Screens)
	if n < 2 {
		return handledResult(req, req.Window, action.SubNone, 1)
	}

	step := 1
	if req.Action == action.PreviousDisplay {
		step = -1
	}
	target := (req.Screen + step + n) % n
	ts := req.Screens[target]

	if req.Settings.KeepMaximizedOnDisplayChange && hist != nil && hist.SubAction == action.SubMaximize {
		return Result{
			Rect:      ts,
			Action:    action.Maximize,
			SubAction: action.SubMaximize,
			Count:     1,
			Handled:   true,
		}
	}

	if req.Settings.ReplayOnDisplayChange && hist != nil && replayable(hist.Action) {
		replay := req
		replay.Action = hist.Action
		replay.Screen = target
		replay.History = nil
		if res := Resolve(replay); res.Handled {
			return res
		}
	}

	r := clampInto(req.Window.CenteredIn(ts), ts)
	return handledResult(req, r, action.SubNone, 1)
}

// replayable excludes actions whose replay would recurse or depends on
// daemon state.
func replayable(a action.Action) bool {
	switch a.Family() {
	case action.FamilyDisplay, action.FamilyMeta, action.FamilyNone:
		return false
	}
	return true
}
