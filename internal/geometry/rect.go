// Package geometry provides the integer rectangle math shared by the snap
// engine, the IPC layer, and the X11 backend.
//
// Rectangles use Cartesian coordinates: the origin is the bottom-left corner
// and Y grows upward. This matches the engine's layout formulas; the x11
// package flips to the server's top-left origin when talking to the display.
package geometry

import "math"

// Rect is a window or screen rectangle in pixels.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IsEmpty reports whether the rect has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// IsLandscape reports whether the rect is at least as wide as it is tall.
// A square counts as landscape.
func (r Rect) IsLandscape() bool {
	return r.Width >= r.Height
}

// MaxX returns the x coordinate of the right edge.
func (r Rect) MaxX() int {
	return r.X + r.Width
}

// MaxY returns the y coordinate of the top edge.
func (r Rect) MaxY() int {
	return r.Y + r.Height
}

// CenterX returns the horizontal center, rounded down.
func (r Rect) CenterX() int {
	return r.X + r.Width/2
}

// CenterY returns the vertical center, rounded down.
func (r Rect) CenterY() int {
	return r.Y + r.Height/2
}

// Contains reports whether the point (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.MaxX() && y >= r.Y && y < r.MaxY()
}

// Intersects reports whether the two rects overlap with positive area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// CenteredIn returns r repositioned so its center coincides with the center
// of outer. Offsets round to the nearest pixel.
func (r Rect) CenteredIn(outer Rect) Rect {
	r.X = outer.X + RoundHalf(outer.Width-r.Width)
	r.Y = outer.Y + RoundHalf(outer.Height-r.Height)
	return r
}

// FloorFrac returns floor(n * frac). Sizes are always floored so a window
// never overflows its screen by a sub-pixel rounding error.
func FloorFrac(n int, frac float64) int {
	return int(math.Floor(float64(n) * frac))
}

// RoundFrac returns n * frac rounded to the nearest integer. Used for
// centering offsets, where flooring would bias placement toward one edge.
func RoundFrac(n int, frac float64) int {
	return int(math.Round(float64(n) * frac))
}

// RoundHalf returns n/2 rounded to the nearest integer.
func RoundHalf(n int) int {
	return RoundFrac(n, 0.5)
}
