package action

import "fmt"

// SubAction is the orientation-resolved variant of an action, emitted with
// each engine result. It records which geometric placement was produced so
// the next invocation can continue a cycle without re-deriving orientation
// from the stored rectangle.
type SubAction int

const (
	SubNone SubAction = iota

	// Halves.
	SubLeftHalf
	SubRightHalf
	SubTopHalf
	SubBottomHalf
	SubCenterHalfVertical   // full-height centered column
	SubCenterHalfHorizontal // full-width centered row

	// Quarters.
	SubTopLeftQuarter
	SubTopRightQuarter
	SubBottomLeftQuarter
	SubBottomRightQuarter

	// Thirds.
	SubLeftThird
	SubCenterVerticalThird
	SubRightThird
	SubTopThird
	SubCenterHorizontalThird
	SubBottomThird

	// Two-thirds.
	SubLeftTwoThirds
	SubCenterVerticalTwoThirds
	SubRightTwoThirds
	SubTopTwoThirds
	SubCenterHorizontalTwoThirds
	SubBottomTwoThirds

	// Fourths.
	SubLeftFourth
	SubCenterLeftFourth
	SubCenterRightFourth
	SubRightFourth
	SubTopFourth
	SubCenterTopFourth
	SubCenterBottomFourth
	SubBottomFourth

	// Three-fourths.
	SubLeftThreeFourths
	SubCenterVerticalThreeFourths
	SubRightThreeFourths
	SubTopThreeFourths
	SubCenterHorizontalThreeFourths
	SubBottomThreeFourths

	// Maximize family.
	SubMaximize
	SubAlmostMaximize
	SubMaximizeHeight

	// Sixth cells. Cell names follow the landscape 3x2 arrangement; in
	// portrait the grid rotates but the cell identity is unchanged.
	SubTopLeftSixth
	SubTopCenterSixth
	SubTopRightSixth
	SubBottomLeftSixth
	SubBottomCenterSixth
	SubBottomRightSixth

	// Two-cell sixth spans (2/3 by 1/2 landscape, 1/2 by 2/3 portrait).
	SubTopLeftTwoSixths
	SubTopRightTwoSixths
	SubBottomLeftTwoSixths
	SubBottomRightTwoSixths

	// Ninth cells.
	SubTopLeftNinth
	SubTopCenterNinth
	SubTopRightNinth
	SubMiddleLeftNinth
	SubMiddleCenterNinth
	SubMiddleRightNinth
	SubBottomLeftNinth
	SubBottomCenterNinth
	SubBottomRightNinth

	// Eighth cells.
	SubTopLeftEighth
	SubTopCenterLeftEighth
	SubTopCenterRightEighth
	SubTopRightEighth
	SubBottomLeftEighth
	SubBottomCenterLeftEighth
	SubBottomCenterRightEighth
	SubBottomRightEighth

	// Corner-third cells.
	SubTopLeftThird
	SubTopRightThird
	SubBottomLeftThird
	SubBottomRightThird

	// Remaining placements.
	SubLeftTodo
	SubRightTodo
	SubSpecified
	SubCenter

	subActionCount
)

var subActionNames = map[SubAction]string{
	SubNone:                         "none",
	SubLeftHalf:                     "left-half",
	SubRightHalf:                    "right-half",
	SubTopHalf:                      "top-half",
	SubBottomHalf:                   "bottom-half",
	SubCenterHalfVertical:           "center-half-vertical",
	SubCenterHalfHorizontal:         "center-half-horizontal",
	SubTopLeftQuarter:               "top-left-quarter",
	SubTopRightQuarter:              "top-right-quarter",
	SubBottomLeftQuarter:            "bottom-left-quarter",
	SubBottomRightQuarter:           "bottom-right-quarter",
	SubLeftThird:                    "left-third",
	SubCenterVerticalThird:          "center-vertical-third",
	SubRightThird:                   "right-third",
	SubTopThird:                     "top-third",
	SubCenterHorizontalThird:        "center-horizontal-third",
	SubBottomThird:                  "bottom-third",
	SubLeftTwoThirds:                "left-two-thirds",
	SubCenterVerticalTwoThirds:      "center-vertical-two-thirds",
	SubRightTwoThirds:               "right-two-thirds",
	SubTopTwoThirds:                 "top-two-thirds",
	SubCenterHorizontalTwoThirds:    "center-horizontal-two-thirds",
	SubBottomTwoThirds:              "bottom-two-thirds",
	SubLeftFourth:                   "left-fourth",
	SubCenterLeftFourth:             "center-left-fourth",
	SubCenterRightFourth:            "center-right-fourth",
	SubRightFourth:                  "right-fourth",
	SubTopFourth:                    "top-fourth",
	SubCenterTopFourth:              "center-top-fourth",
	SubCenterBottomFourth:           "center-bottom-fourth",
	SubBottomFourth:                 "bottom-fourth",
	SubLeftThreeFourths:             "left-three-fourths",
	SubCenterVerticalThreeFourths:   "center-vertical-three-fourths",
	SubRightThreeFourths:            "right-three-fourths",
	SubTopThreeFourths:              "top-three-fourths",
	SubCenterHorizontalThreeFourths: "center-horizontal-three-fourths",
	SubBottomThreeFourths:           "bottom-three-fourths",
	SubMaximize:                     "maximize",
	SubAlmostMaximize:               "almost-maximize",
	SubMaximizeHeight:               "maximize-height",
	SubTopLeftSixth:                 "top-left-sixth",
	SubTopCenterSixth:               "top-center-sixth",
	SubTopRightSixth:                "top-right-sixth",
	SubBottomLeftSixth:              "bottom-left-sixth",
	SubBottomCenterSixth:            "bottom-center-sixth",
	SubBottomRightSixth:             "bottom-right-sixth",
	SubTopLeftTwoSixths:             "top-left-two-sixths",
	SubTopRightTwoSixths:            "top-right-two-sixths",
	SubBottomLeftTwoSixths:          "bottom-left-two-sixths",
	SubBottomRightTwoSixths:         "bottom-right-two-sixths",
	SubTopLeftNinth:                 "top-left-ninth",
	SubTopCenterNinth:               "top-center-ninth",
	SubTopRightNinth:                "top-right-ninth",
	SubMiddleLeftNinth:              "middle-left-ninth",
	SubMiddleCenterNinth:            "middle-center-ninth",
	SubMiddleRightNinth:             "middle-right-ninth",
	SubBottomLeftNinth:              "bottom-left-ninth",
	SubBottomCenterNinth:            "bottom-center-ninth",
	SubBottomRightNinth:             "bottom-right-ninth",
	SubTopLeftEighth:                "top-left-eighth",
	SubTopCenterLeftEighth:          "top-center-left-eighth",
	SubTopCenterRightEighth:         "top-center-right-eighth",
	SubTopRightEighth:               "top-right-eighth",
	SubBottomLeftEighth:             "bottom-left-eighth",
	SubBottomCenterLeftEighth:       "bottom-center-left-eighth",
	SubBottomCenterRightEighth:      "bottom-center-right-eighth",
	SubBottomRightEighth:            "bottom-right-eighth",
	SubTopLeftThird:                 "top-left-third",
	SubTopRightThird:                "top-right-third",
	SubBottomLeftThird:              "bottom-left-third",
	SubBottomRightThird:             "bottom-right-third",
	SubLeftTodo:                     "left-todo",
	SubRightTodo:                    "right-todo",
	SubSpecified:                    "specified",
	SubCenter:                       "center",
}

func (s SubAction) String() string {
	if name, ok := subActionNames[s]; ok {
		return name
	}
	return fmt.Sprintf("subaction(%d)", int(s))
}
