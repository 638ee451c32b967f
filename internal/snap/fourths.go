package snap

import (
	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/geometry"
)

// Fourths occupy four ordered positions along the major axis. Repeating
// first-fourth walks forward (1st, 2nd, 3rd, 4th, wrap); repeating
// last-fourth walks backward. Crossing between the two continues the motion
// already in progress: pressing first-fourth on a last-fourth history keeps
// stepping backward (landing on the 3rd), and pressing last-fourth on a
// first-fourth history keeps stepping forward (landing on the 2nd). This
// asymmetry is deliberate; do not collapse it into a single ring.

var fourthPositionIndex = map[action.SubAction]int{
	action.SubLeftFourth:         0,
	action.SubTopFourth:          0,
	action.SubCenterLeftFourth:   1,
	action.SubCenterTopFourth:    1,
	action.SubCenterRightFourth:  2,
	action.SubCenterBottomFourth: 2,
	action.SubRightFourth:        3,
	action.SubBottomFourth:       3,
}

var threeFourthsPositionIndex = map[action.SubAction]int{
	action.SubLeftThreeFourths:              0,
	action.SubTopThreeFourths:               0,
	action.SubCenterVerticalThreeFourths:    1,
	action.SubCenterHorizontalThreeFourths:  1,
	action.SubRightThreeFourths:             2,
	action.SubBottomThreeFourths:            2,
}

func resolveFourth(req Request, screen geometry.Rect, hist *History) Result {
	switch req.Action {
	case action.FirstFourth, action.SecondFourth, action.ThirdFourth, action.LastFourth:
		pos, count := fourthCyclePosition(req, hist)
		p := fourthPlacement(screen, pos)
		return handledResult(req, p.rect, p.sub, count)
	case action.FirstThreeFourths, action.CenterThreeFourths, action.LastThreeFourths:
		pos, count := cyclePosition(req, hist, threeFourthsPositionIndex,
			threeFourthsDefault(req.Action), threeFourthsDirection(req.Action), 3)
		p := threeFourthsPlacement(screen, pos)
		return handledResult(req, p.rect, p.sub, count)
	default:
		return unhandled
	}
}

func fourthCyclePosition(req Request, hist *History) (int, int) {
	def := map[action.Action]int{
		action.FirstFourth:  0,
		action.SecondFourth: 1,
		action.ThirdFourth:  2,
		action.LastFourth:   3,
	}[req.Action]

	// Only the two end actions cycle.
	if req.Action != action.FirstFourth && req.Action != action.LastFourth {
		return def, 1
	}
	if hist == nil {
		return def, 1
	}
	prev, ok := fourthPositionIndex[hist.SubAction]
	if !ok {
		return def, 1
	}

	var dir int
	switch {
	case hist.Action == req.Action:
		if req.Action == action.FirstFourth {
			dir = 1
		} else {
			dir = -1
		}
	case hist.Action == action.FirstFourth && req.Action == action.LastFourth:
		dir = 1 // continue the forward traversal
	case hist.Action == action.LastFourth && req.Action == action.FirstFourth:
		dir = -1 // continue the backward traversal
	default:
		return def, 1
	}
	return ((prev+dir)%4 + 4) % 4, hist.Count + 1
}

func threeFourthsDefault(a action.Action) int {
	switch a {
	case action.CenterThreeFourths:
		return 1
	case action.LastThreeFourths:
		return 2
	default:
		return 0
	}
}

func threeFourthsDirection(a action.Action) int {
	switch a {
	case action.FirstThreeFourths:
		return 1
	case action.LastThreeFourths:
		return -1
	default:
		return 0
	}
}

func fourthPlacement(screen geometry.Rect, pos int) placement {
	return byOrientation(screen,
		func(s geometry.Rect) placement {
			subs := [4]action.SubAction{
				action.SubLeftFourth, action.SubCenterLeftFourth,
				action.SubCenterRightFourth, action.SubRightFourth,
			}
			w := geometry.FloorFrac(s.Width, 0.25)
			x := s.X + w*pos
			if pos == 3 {
				x = s.MaxX() - w
			}
			return placement{geometry.Rect{X: x, Y: s.Y, Width: w, Height: s.Height}, subs[pos]}
		},
		func(s geometry.Rect) placement {
			subs := [4]action.SubAction{
				action.SubTopFourth, action.SubCenterTopFourth,
				action.SubCenterBottomFourth, action.SubBottomFourth,
			}
			h := geometry.FloorFrac(s.Height, 0.25)
			y := s.MaxY() - h*(pos+1)
			if pos == 3 {
				y = s.Y
			}
			return placement{geometry.Rect{X: s.X, Y: y, Width: s.Width, Height: h}, subs[pos]}
		})
}

func threeFourthsPlacement(screen geometry.Rect, pos int) placement {
	return byOrientation(screen,
		func(s geometry.Rect) placement {
			subs := [3]action.SubAction{
				action.SubLeftThreeFourths, action.SubCenterVerticalThreeFourths, action.SubRightThreeFourths,
			}
			return placement{columnAt(s, 0.75, pos), subs[pos]}
		},
		func(s geometry.Rect) placement {
			subs := [3]action.SubAction{
				action.SubTopThreeFourths, action.SubCenterHorizontalThreeFourths, action.SubBottomThreeFourths,
			}
			return placement{rowAt(s, 0.75, pos), subs[pos]}
		})
}
