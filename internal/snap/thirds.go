package snap

import (
	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/geometry"
)

// Thirds and two-thirds occupy three ordered positions along the screen's
// major axis. Repeating first-third walks forward through them, repeating
// last-third walks backward; center-third does not cycle.

var thirdPositionIndex = map[action.SubAction]int{
	action.SubLeftThird:              0,
	action.SubTopThird:               0,
	action.SubCenterVerticalThird:    1,
	action.SubCenterHorizontalThird:  1,
	action.SubRightThird:             2,
	action.SubBottomThird:            2,
}

var twoThirdsPositionIndex = map[action.SubAction]int{
	action.SubLeftTwoThirds:              0,
	action.SubTopTwoThirds:               0,
	action.SubCenterVerticalTwoThirds:    1,
	action.SubCenterHorizontalTwoThirds:  1,
	action.SubRightTwoThirds:             2,
	action.SubBottomTwoThirds:            2,
}

func resolveThird(req Request, screen geometry.Rect, hist *History) Result {
	switch req.Action {
	case action.FirstThird, action.CenterThird, action.LastThird:
		pos, count := cyclePosition(req, hist, thirdPositionIndex, thirdDefaults(req.Action), thirdDirection(req.Action), 3)
		p := thirdPlacement(screen, pos)
		return handledResult(req, p.rect, p.sub, count)
	case action.FirstTwoThirds, action.CenterTwoThirds, action.LastTwoThirds:
		pos, count := cyclePosition(req, hist, twoThirdsPositionIndex, twoThirdsDefaults(req.Action), thirdDirection(req.Action), 3)
		p := twoThirdsPlacement(screen, pos)
		return handledResult(req, p.rect, p.sub, count)
	default:
		return unhandled
	}
}

func thirdDefaults(a action.Action) int {
	switch a {
	case action.CenterThird, action.CenterTwoThirds:
		return 1
	case action.LastThird, action.LastTwoThirds:
		return 2
	default:
		return 0
	}
}

func twoThirdsDefaults(a action.Action) int { return thirdDefaults(a) }

// thirdDirection: first-* cycles forward, last-* backward, center-* stays.
func thirdDirection(a action.Action) int {
	switch a {
	case action.FirstThird, action.FirstTwoThirds:
		return 1
	case action.LastThird, action.LastTwoThirds:
		return -1
	default:
		return 0
	}
}

// cyclePosition advances a positional ring. Fresh invocations (or a
// previous sub-action foreign to this ring) land on the default position.
func cyclePosition(req Request, hist *History, index map[action.SubAction]int, def, dir, length int) (int, int) {
	if hist == nil || hist.Action != req.Action || dir == 0 {
		return def, 1
	}
	prev, ok := index[hist.SubAction]
	if !ok {
		return def, 1
	}
	return ((prev+dir)%length + length) % length, hist.Count + 1
}

func thirdPlacement(screen geometry.Rect, pos int) placement {
	return byOrientation(screen,
		func(s geometry.Rect) placement {
			subs := [3]action.SubAction{action.SubLeftThird, action.SubCenterVerticalThird, action.SubRightThird}
			return placement{columnAt(s, 1.0/3.0, pos), subs[pos]}
		},
		func(s geometry.Rect) placement {
			subs := [3]action.SubAction{action.SubTopThird, action.SubCenterHorizontalThird, action.SubBottomThird}
			return placement{rowAt(s, 1.0/3.0, pos), subs[pos]}
		})
}

func twoThirdsPlacement(screen geometry.Rect, pos int) placement {
	return byOrientation(screen,
		func(s geometry.Rect) placement {
			subs := [3]action.SubAction{action.SubLeftTwoThirds, action.SubCenterVerticalTwoThirds, action.SubRightTwoThirds}
			return placement{columnAt(s, 2.0/3.0, pos), subs[pos]}
		},
		func(s geometry.Rect) placement {
			subs := [3]action.SubAction{action.SubTopTwoThirds, action.SubCenterHorizontalTwoThirds, action.SubBottomTwoThirds}
			return placement{rowAt(s, 2.0/3.0, pos), subs[pos]}
		})
}

// columnAt places a column of fractional width at one of three positions:
// anchored left, centered, anchored right. Anchoring the ends keeps the
// flooring remainder in the middle instead of leaking past an edge.
func columnAt(s geometry.Rect, frac float64, pos int) geometry.Rect {
	switch pos {
	case 0:
		return leftColumn(s, frac)
	case 2:
		return rightColumn(s, frac)
	default:
		return centerColumn(s, frac)
	}
}

// rowAt is columnAt rotated: position 0 is the top row.
func rowAt(s geometry.Rect, frac float64, pos int) geometry.Rect {
	switch pos {
	case 0:
		return topRow(s, frac)
	case 2:
		return bottomRow(s, frac)
	default:
		return centerRow(s, frac)
	}
}
