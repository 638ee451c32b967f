// Package action defines the closed set of window actions snaptile can
// execute and the finer-grained sub-action tags the snap engine emits to
// track cycling state. The package is a pure taxonomy: rectangle formulas
// live in internal/snap.
package action

import (
	"fmt"
	"sort"
	"strings"
)

// Action identifies a window positioning command.
type Action int

const (
	None Action = iota

	// Halves.
	LeftHalf
	RightHalf
	TopHalf
	BottomHalf
	CenterHalf

	// Corners (quarters).
	TopLeft
	TopRight
	BottomLeft
	BottomRight

	// Thirds along the major axis.
	FirstThird
	CenterThird
	LastThird
	FirstTwoThirds
	CenterTwoThirds
	LastTwoThirds

	// Fourths along the major axis.
	FirstFourth
	SecondFourth
	ThirdFourth
	LastFourth
	FirstThreeFourths
	CenterThreeFourths
	LastThreeFourths

	// Maximize family.
	Maximize
	AlmostMaximize
	MaximizeHeight

	// Size deltas.
	Larger
	Smaller
	LargerWidth
	SmallerWidth
	LargerHeight
	SmallerHeight

	// Halve/double one axis, keeping one edge fixed.
	HalveHeightUp
	HalveHeightDown
	HalveWidthLeft
	HalveWidthRight
	DoubleHeightUp
	DoubleHeightDown
	DoubleWidthLeft
	DoubleWidthRight

	// Directional moves.
	MoveLeft
	MoveRight
	MoveUp
	MoveDown

	// Display navigation.
	NextDisplay
	PreviousDisplay

	// Centering without resize.
	Center

	// Sixths grid (3x2 landscape, 2x3 portrait).
	TopLeftSixth
	TopCenterSixth
	TopRightSixth
	BottomLeftSixth
	BottomCenterSixth
	BottomRightSixth

	// Ninths grid (3x3, orientation invariant).
	TopLeftNinth
	TopCenterNinth
	TopRightNinth
	MiddleLeftNinth
	MiddleCenterNinth
	MiddleRightNinth
	BottomLeftNinth
	BottomCenterNinth
	BottomRightNinth

	// Eighths grid (4x2 landscape, 2x4 portrait).
	TopLeftEighth
	TopCenterLeftEighth
	TopCenterRightEighth
	TopRightEighth
	BottomLeftEighth
	BottomCenterLeftEighth
	BottomCenterRightEighth
	BottomRightEighth

	// Corner thirds: 2x2 grid of overlapping 2/3-by-1/2 cells.
	TopLeftThird
	TopRightThird
	BottomLeftThird
	BottomRightThird

	// Todo sidebar placements.
	LeftTodo
	RightTodo

	// Fixed user-specified size, centered.
	Specified

	// Meta actions. The engine does not compute these; the daemon either
	// implements them from its own state (restore) or rejects them.
	Restore
	TileAll
	CascadeAll

	actionCount
)

var actionNames = map[Action]string{
	LeftHalf:                "left-half",
	RightHalf:               "right-half",
	TopHalf:                 "top-half",
	BottomHalf:              "bottom-half",
	CenterHalf:              "center-half",
	TopLeft:                 "top-left",
	TopRight:                "top-right",
	BottomLeft:              "bottom-left",
	BottomRight:             "bottom-right",
	FirstThird:              "first-third",
	CenterThird:             "center-third",
	LastThird:               "last-third",
	FirstTwoThirds:          "first-two-thirds",
	CenterTwoThirds:         "center-two-thirds",
	LastTwoThirds:           "last-two-thirds",
	FirstFourth:             "first-fourth",
	SecondFourth:            "second-fourth",
	ThirdFourth:             "third-fourth",
	LastFourth:              "last-fourth",
	FirstThreeFourths:       "first-three-fourths",
	CenterThreeFourths:      "center-three-fourths",
	LastThreeFourths:        "last-three-fourths",
	Maximize:                "maximize",
	AlmostMaximize:          "almost-maximize",
	MaximizeHeight:          "maximize-height",
	Larger:                  "larger",
	Smaller:                 "smaller",
	LargerWidth:             "larger-width",
	SmallerWidth:            "smaller-width",
	LargerHeight:            "larger-height",
	SmallerHeight:           "smaller-height",
	HalveHeightUp:           "halve-height-up",
	HalveHeightDown:         "halve-height-down",
	HalveWidthLeft:          "halve-width-left",
	HalveWidthRight:         "halve-width-right",
	DoubleHeightUp:          "double-height-up",
	DoubleHeightDown:        "double-height-down",
	DoubleWidthLeft:         "double-width-left",
	DoubleWidthRight:        "double-width-right",
	MoveLeft:                "move-left",
	MoveRight:               "move-right",
	MoveUp:                  "move-up",
	MoveDown:                "move-down",
	NextDisplay:             "next-display",
	PreviousDisplay:         "previous-display",
	Center:                  "center",
	TopLeftSixth:            "top-left-sixth",
	TopCenterSixth:          "top-center-sixth",
	TopRightSixth:           "top-right-sixth",
	BottomLeftSixth:         "bottom-left-sixth",
	BottomCenterSixth:       "bottom-center-sixth",
	BottomRightSixth:        "bottom-right-sixth",
	TopLeftNinth:            "top-left-ninth",
	TopCenterNinth:          "top-center-ninth",
	TopRightNinth:           "top-right-ninth",
	MiddleLeftNinth:         "middle-left-ninth",
	MiddleCenterNinth:       "middle-center-ninth",
	MiddleRightNinth:        "middle-right-ninth",
	BottomLeftNinth:         "bottom-left-ninth",
	BottomCenterNinth:       "bottom-center-ninth",
	BottomRightNinth:        "bottom-right-ninth",
	TopLeftEighth:           "top-left-eighth",
	TopCenterLeftEighth:     "top-center-left-eighth",
	TopCenterRightEighth:    "top-center-right-eighth",
	TopRightEighth:          "top-right-eighth",
	BottomLeftEighth:        "bottom-left-eighth",
	BottomCenterLeftEighth:  "bottom-center-left-eighth",
	BottomCenterRightEighth: "bottom-center-right-eighth",
	BottomRightEighth:       "bottom-right-eighth",
	TopLeftThird:            "top-left-third",
	TopRightThird:           "top-right-third",
	BottomLeftThird:         "bottom-left-third",
	BottomRightThird:        "bottom-right-third",
	LeftTodo:                "left-todo",
	RightTodo:               "right-todo",
	Specified:               "specified",
	Restore:                 "restore",
	TileAll:                 "tile-all",
	CascadeAll:              "cascade-all",
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, len(actionNames))
	for a, name := range actionNames {
		m[name] = a
	}
	return m
}()

// String returns the stable kebab-case name used in config files, the CLI,
// and the IPC protocol.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Parse resolves an action name to its Action value.
func Parse(name string) (Action, error) {
	a, ok := actionsByName[strings.TrimSpace(strings.ToLower(name))]
	if !ok {
		return None, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}

// All returns every named action sorted by name.
func All() []Action {
	out := make([]Action, 0, len(actionNames))
	for a := range actionNames {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Names returns every action name sorted, for listings.
func Names() []string {
	all := All()
	out := make([]string, len(all))
	for i, a := range all {
		out[i] = a.String()
	}
	return out
}

// Valid reports whether a is a named action.
func (a Action) Valid() bool {
	_, ok := actionNames[a]
	return ok
}

// Family groups actions that share a resolver.
type Family int

const (
	FamilyNone Family = iota
	FamilyHalves
	FamilyCorners
	FamilyThirds
	FamilyFourths
	FamilyMaximize
	FamilySizeDelta
	FamilyHalveDouble
	FamilyMove
	FamilyDisplay
	FamilyCenter
	FamilySixths
	FamilyNinths
	FamilyEighths
	FamilyCornerThirds
	FamilyTodo
	FamilySpecified
	FamilyMeta
)

// Family returns the resolver family of the action.
func (a Action) Family() Family {
	switch a {
	case LeftHalf, RightHalf, TopHalf, BottomHalf, CenterHalf:
		return FamilyHalves
	case TopLeft, TopRight, BottomLeft, BottomRight:
		return FamilyCorners
	case FirstThird, CenterThird, LastThird, FirstTwoThirds, CenterTwoThirds, LastTwoThirds:
		return FamilyThirds
	case FirstFourth, SecondFourth, ThirdFourth, LastFourth,
		FirstThreeFourths, CenterThreeFourths, LastThreeFourths:
		return FamilyFourths
	case Maximize, AlmostMaximize, MaximizeHeight:
		return FamilyMaximize
	case Larger, Smaller, LargerWidth, SmallerWidth, LargerHeight, SmallerHeight:
		return FamilySizeDelta
	case HalveHeightUp, HalveHeightDown, HalveWidthLeft, HalveWidthRight,
		DoubleHeightUp, DoubleHeightDown, DoubleWidthLeft, DoubleWidthRight:
		return FamilyHalveDouble
	case MoveLeft, MoveRight, MoveUp, MoveDown:
		return FamilyMove
	case NextDisplay, PreviousDisplay:
		return FamilyDisplay
	case Center:
		return FamilyCenter
	case TopLeftSixth, TopCenterSixth, TopRightSixth,
		BottomLeftSixth, BottomCenterSixth, BottomRightSixth:
		return FamilySixths
	case TopLeftNinth, TopCenterNinth, TopRightNinth,
		MiddleLeftNinth, MiddleCenterNinth, MiddleRightNinth,
		BottomLeftNinth, BottomCenterNinth, BottomRightNinth:
		return FamilyNinths
	case TopLeftEighth, TopCenterLeftEighth, TopCenterRightEighth, TopRightEighth,
		BottomLeftEighth, BottomCenterLeftEighth, BottomCenterRightEighth, BottomRightEighth:
		return FamilyEighths
	case TopLeftThird, TopRightThird, BottomLeftThird, BottomRightThird:
		return FamilyCornerThirds
	case LeftTodo, RightTodo:
		return FamilyTodo
	case Specified:
		return FamilySpecified
	case Restore, TileAll, CascadeAll:
		return FamilyMeta
	default:
		return FamilyNone
	}
}
