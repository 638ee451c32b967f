// Package snap computes target window rectangles for snaptile's positioning
// actions. It is the layout engine: given an action, the usable screen
// frames, the window's current rectangle, and the history record of the
// previous action applied to that window, Resolve returns the exact
// rectangle the window should occupy.
//
// The engine is a pure function. All cycling state flows in through the
// History parameter and back out through the Result; there is no hidden
// cache, so two windows mid-cycle can never corrupt each other.
//
// Coordinates are Cartesian (origin bottom-left, Y up); see internal/geometry.
package snap

import (
	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/geometry"
)

// History records the previous engine invocation for a window. It is owned
// and persisted by the caller, keyed by window id.
type History struct {
	Action    action.Action
	SubAction action.SubAction
	// Rect is the rectangle the engine produced last time, in the same
	// coordinates the caller passes the window rect in. History only
	// applies while the window still occupies it; a window the user moved
	// by hand starts fresh.
	Rect  geometry.Rect
	Count int
}

// Request carries everything one resolution needs.
type Request struct {
	Action action.Action
	// Window is the window's current rectangle.
	Window geometry.Rect
	// Screens are the usable frames of all displays (menu bars and docks
	// already excluded), in the caller's ring order. Screen indexes the
	// display the window currently occupies.
	Screens []geometry.Rect
	Screen  int
	History *History
	Settings Settings
}

// Result is the engine's only output.
type Result struct {
	// Rect is the target rectangle. Meaningless unless Handled.
	Rect geometry.Rect
	// Action and SubAction are what the caller should persist as the new
	// history entry. Action is normally the requested action; display
	// navigation with replay substitutes the replayed one.
	Action    action.Action
	SubAction action.SubAction
	// Count is the repeat count to persist.
	Count int
	// Handled is false for actions this engine does not compute (restore,
	// multi-window operations); the caller must delegate those.
	Handled bool
}

var unhandled = Result{}

// Resolve computes the target rectangle for a request. It is total: every
// input yields either a rectangle or an explicit not-handled result.
func Resolve(req Request) Result {
	req.Settings = req.Settings.normalized()

	screen, ok := req.screen()
	if !ok || !req.Action.Valid() {
		return unhandled
	}
	hist := req.validHistory()
	// The cycling toggle only silences repeat-press size cycling; display
	// navigation still reads history for its replay and keep-maximized
	// flags.
	cyc := hist
	if !req.Settings.CyclingEnabled {
		cyc = nil
	}

	switch req.Action.Family() {
	case action.FamilyHalves:
		return resolveHalf(req, screen, cyc)
	case action.FamilyCorners:
		return resolveCorner(req, screen, cyc)
	case action.FamilyThirds:
		return resolveThird(req, screen, cyc)
	case action.FamilyFourths:
		return resolveFourth(req, screen, cyc)
	case action.FamilyMaximize:
		return resolveMaximize(req, screen)
	case action.FamilySizeDelta:
		return resolveSizeDelta(req, screen)
	case action.FamilyHalveDouble:
		return resolveHalveDouble(req, screen)
	case action.FamilyMove:
		return resolveMove(req, screen, cyc)
	case action.FamilyDisplay:
		return resolveDisplay(req, screen, hist)
	case action.FamilyCenter:
		return handledResult(req, req.Window.CenteredIn(screen), action.SubCenter, 1)
	case action.FamilySixths:
		return resolveSixth(req, screen, cyc)
	case action.FamilyNinths, action.FamilyEighths, action.FamilyCornerThirds:
		return resolveGrid(req, screen, cyc)
	case action.FamilyTodo:
		return resolveTodo(req, screen)
	case action.FamilySpecified:
		return resolveSpecified(req, screen)
	default:
		// Restore and multi-window operations belong to the caller.
		return unhandled
	}
}

// screen returns the window's current usable frame.
func (r Request) screen() (geometry.Rect, bool) {
	if r.Screen < 0 || r.Screen >= len(r.Screens) {
		return geometry.Rect{}, false
	}
	s := r.Screens[r.Screen]
	if s.IsEmpty() {
		return geometry.Rect{}, false
	}
	return s, true
}

// validHistory returns the history record if it still applies: the window
// must still occupy the rectangle the engine produced last time. Anything
// else degrades to a fresh invocation.
func (r Request) validHistory() *History {
	h := r.History
	if h == nil || !h.Action.Valid() {
		return nil
	}
	if h.Rect != r.Window {
		return nil
	}
	return h
}

func handledResult(req Request, rect geometry.Rect, sub action.SubAction, count int) Result {
	return Result{
		Rect:      rect,
		Action:    req.Action,
		SubAction: sub,
		Count:     count,
		Handled:   true,
	}
}

// placement pairs a rectangle with the sub-action tag describing it.
type placement struct {
	rect geometry.Rect
	sub  action.SubAction
}

// byOrientation routes an orientation-dependent layout to its landscape or
// portrait form. A square screen counts as landscape. This is the only
// place the engine branches on orientation.
func byOrientation(screen geometry.Rect, landscape, portrait func(geometry.Rect) placement) placement {
	if screen.IsLandscape() {
		return landscape(screen)
	}
	return portrait(screen)
}

// cycleFraction implements the shared fractional-size cycle: fresh
// invocations anchor at one half, repeats walk the canonical order filtered
// to the enabled subset. The returned count is what the caller persists.
func cycleFraction(req Request, hist *History) (float64, int) {
	sizes := req.Settings.Sizes.Sizes()
	if hist == nil || hist.Action != req.Action {
		return SizeHalf.Fraction(), 1
	}
	pos := hist.Count % len(sizes)
	return sizes[pos].Fraction(), hist.Count + 1
}
