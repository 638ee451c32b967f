package x11

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/1broseidon/snaptile/internal/geometry"
)

// Monitor represents a physical display. Frame is the usable area in engine
// coordinates: struts (panels, docks) already subtracted, Y up.
type Monitor struct {
	ID      int
	Name    string
	Primary bool
	Frame   geometry.Rect
	// PixelX/PixelY/PixelWidth/PixelHeight is the raw X11 geometry before
	// strut subtraction, kept for IPC reporting.
	PixelX      int
	PixelY      int
	PixelWidth  int
	PixelHeight int
}

// Monitors retrieves all active monitors using XRandR, with dock struts
// applied per monitor. The result is sorted into the traversal ring order:
// left to right, top to bottom.
func (c *Connection) Monitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	primary, _ := randr.GetOutputPrimary(c.XUtil.Conn(), c.Root).Reply()
	struts := c.collectStruts()

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		isPrimary := false
		if len(crtcInfo.Outputs) > 0 {
			if outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
				outputName = string(outputInfo.Name)
			}
			if primary != nil && crtcInfo.Outputs[0] == primary.Output {
				isPrimary = true
			}
		}

		m := Monitor{
			ID:          i,
			Name:        outputName,
			Primary:     isPrimary,
			PixelX:      int(crtcInfo.X),
			PixelY:      int(crtcInfo.Y),
			PixelWidth:  int(crtcInfo.Width),
			PixelHeight: int(crtcInfo.Height),
		}
		x, y, w, h := applyStruts(m.PixelX, m.PixelY, m.PixelWidth, m.PixelHeight, c.RootWidth, c.RootHeight, struts)
		m.Frame = c.ToCartesian(x, y, w, h)
		monitors = append(monitors, m)
	}

	if len(monitors) == 0 {
		return nil, fmt.Errorf("no monitors found")
	}

	sort.Slice(monitors, func(i, j int) bool {
		if monitors[i].PixelX != monitors[j].PixelX {
			return monitors[i].PixelX < monitors[j].PixelX
		}
		return monitors[i].PixelY < monitors[j].PixelY
	})
	return monitors, nil
}

// Frames returns just the usable frames, in ring order. This is the Screens
// slice the engine consumes.
func (c *Connection) Frames() ([]geometry.Rect, []Monitor, error) {
	monitors, err := c.Monitors()
	if err != nil {
		return nil, nil, err
	}
	frames := make([]geometry.Rect, len(monitors))
	for i, m := range monitors {
		frames[i] = m.Frame
	}
	return frames, monitors, nil
}

// MonitorIndexFor returns the index of the frame containing the rectangle's
// center, falling back to the nearest frame by overlap.
func MonitorIndexFor(frames []geometry.Rect, r geometry.Rect) int {
	cx, cy := r.CenterX(), r.CenterY()
	for i, f := range frames {
		if f.Contains(cx, cy) {
			return i
		}
	}
	best, bestArea := 0, -1
	for i, f := range frames {
		if !f.Intersects(r) {
			continue
		}
		w := min(f.MaxX(), r.MaxX()) - max(f.X, r.X)
		h := min(f.MaxY(), r.MaxY()) - max(f.Y, r.Y)
		if area := w * h; area > bestArea {
			best, bestArea = i, area
		}
	}
	return best
}

// strutRect is a reserved screen-edge region in X11 root coordinates.
type strutRect struct {
	x1, y1, x2, y2 int
	edge           strutEdge
	size           int
}

type strutEdge int

const (
	strutLeft strutEdge = iota
	strutRight
	strutTop
	strutBottom
)

// collectStruts gathers every dock window's reserved regions.
func (c *Connection) collectStruts() []strutRect {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil
	}

	var out []strutRect
	for _, windowID := range clients {
		types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
		if err != nil {
			continue
		}
		isDock := false
		for _, t := range types {
			if t == "_NET_WM_WINDOW_TYPE_DOCK" {
				isDock = true
				break
			}
		}
		if !isDock {
			continue
		}

		sp, err := ewmh.WmStrutPartialGet(c.XUtil, windowID)
		if err != nil {
			// Some docks only set _NET_WM_STRUT (no partial ranges).
			s, err := ewmh.WmStrutGet(c.XUtil, windowID)
			if err != nil {
				continue
			}
			sp = &ewmh.WmStrutPartial{
				Left: s.Left, Right: s.Right, Top: s.Top, Bottom: s.Bottom,
				LeftStartY: 0, LeftEndY: uint(c.RootHeight - 1),
				RightStartY: 0, RightEndY: uint(c.RootHeight - 1),
				TopStartX: 0, TopEndX: uint(c.RootWidth - 1),
				BottomStartX: 0, BottomEndX: uint(c.RootWidth - 1),
			}
		}
		out = append(out, strutRects(sp, c.RootWidth, c.RootHeight)...)
	}
	return out
}

func strutRects(sp *ewmh.WmStrutPartial, rootWidth, rootHeight int) []strutRect {
	var out []strutRect
	if sp.Top > 0 {
		out = append(out, strutRect{
			x1: int(sp.TopStartX), y1: 0,
			x2: int(sp.TopEndX) + 1, y2: int(sp.Top),
			edge: strutTop, size: int(sp.Top),
		})
	}
	if sp.Bottom > 0 {
		out = append(out, strutRect{
			x1: int(sp.BottomStartX), y1: rootHeight - int(sp.Bottom),
			x2: int(sp.BottomEndX) + 1, y2: rootHeight,
			edge: strutBottom, size: int(sp.Bottom),
		})
	}
	if sp.Left > 0 {
		out = append(out, strutRect{
			x1: 0, y1: int(sp.LeftStartY),
			x2: int(sp.Left), y2: int(sp.LeftEndY) + 1,
			edge: strutLeft, size: int(sp.Left),
		})
	}
	if sp.Right > 0 {
		out = append(out, strutRect{
			x1: rootWidth - int(sp.Right), y1: int(sp.RightStartY),
			x2: rootWidth, y2: int(sp.RightEndY) + 1,
			edge: strutRight, size: int(sp.Right),
		})
	}
	return out
}

// applyStruts shrinks a monitor's X11 geometry by every strut that overlaps
// it. Struts are expressed relative to the whole root, so only the part
// intersecting this monitor counts.
func applyStruts(x, y, w, h, rootWidth, rootHeight int, struts []strutRect) (int, int, int, int) {
	var left, right, top, bottom int
	for _, s := range struts {
		ix := min(x+w, s.x2) - max(x, s.x1)
		iy := min(y+h, s.y2) - max(y, s.y1)
		if ix <= 0 || iy <= 0 {
			continue
		}
		switch s.edge {
		case strutLeft:
			left = max(left, ix)
		case strutRight:
			right = max(right, ix)
		case strutTop:
			top = max(top, iy)
		case strutBottom:
			bottom = max(bottom, iy)
		}
	}

	x += left
	y += top
	w -= left + right
	h -= top + bottom
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return x, y, w, h
}
