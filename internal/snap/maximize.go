package snap

import (
	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/geometry"
)

func resolveMaximize(req Request, screen geometry.Rect) Result {
	switch req.Action {
	case action.Maximize:
		return handledResult(req, screen, action.SubMaximize, 1)
	case action.AlmostMaximize:
		frac := req.Settings.AlmostMaximizeFraction
		r := geometry.Rect{
			Width:  geometry.FloorFrac(screen.Width, frac),
			Height: geometry.FloorFrac(screen.Height, frac),
		}
		return handledResult(req, r.CenteredIn(screen), action.SubAlmostMaximize, 1)
	case action.MaximizeHeight:
		r := geometry.Rect{
			X:      req.Window.X,
			Y:      screen.Y,
			Width:  req.Window.Width,
			Height: screen.Height,
		}
		return handledResult(req, r, action.SubMaximizeHeight, 1)
	default:
		return unhandled
	}
}

// resolveTodo pins the window into a fixed-width sidebar column.
func resolveTodo(req Request, screen geometry.Rect) Result {
	w := req.Settings.TodoWidth
	if w > screen.Width {
		w = screen.Width
	}
	switch req.Action {
	case action.LeftTodo:
		r := geometry.Rect{X: screen.X, Y: screen.Y, Width: w, Height: screen.Height}
		return handledResult(req, r, action.SubLeftTodo, 1)
	case action.RightTodo:
		r := geometry.Rect{X: screen.MaxX() - w, Y: screen.Y, Width: w, Height: screen.Height}
		return handledResult(req, r, action.SubRightTodo, 1)
	default:
		return unhandled
	}
}

// resolveSpecified centers the window at the configured fixed size. With no
// size configured the action is not handled.
func resolveSpecified(req Request, screen geometry.Rect) Result {
	w, h := req.Settings.SpecifiedWidth, req.Settings.SpecifiedHeight
	if w <= 0 || h <= 0 {
		return unhandled
	}
	if w > screen.Width {
		w = screen.Width
	}
	if h > screen.Height {
		h = screen.Height
	}
	r := geometry.Rect{Width: w, Height: h}.CenteredIn(screen)
	return handledResult(req, r, action.SubSpecified, 1)
}
