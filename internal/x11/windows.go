package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/snaptile/internal/geometry"
)

// ActiveWindow returns the focused window.
func (c *Connection) ActiveWindow() (xproto.Window, error) {
	win, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	if win == 0 {
		return 0, fmt.Errorf("no focused window")
	}
	return win, nil
}

// WindowFrame returns the window's outer frame (decorations included) in
// engine coordinates.
func (c *Connection) WindowFrame(windowID xproto.Window) (geometry.Rect, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("failed to get window geometry: %w", err)
	}
	translate, err := xproto.TranslateCoordinates(c.XUtil.Conn(), windowID, c.Root, 0, 0).Reply()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("failed to translate window coordinates: %w", err)
	}

	x := int(translate.DstX)
	y := int(translate.DstY)
	w := int(geom.Width)
	h := int(geom.Height)

	left, right, top, bottom := c.frameExtents(windowID)
	x -= left
	y -= top
	w += left + right
	h += top + bottom

	return c.ToCartesian(x, y, w, h), nil
}

// MoveResizeWindow places the window's outer frame at the engine rectangle.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, r geometry.Rect) error {
	// A maximized window ignores configure requests; drop the state first.
	if err := c.unmaximizeWindow(windowID); err != nil {
		// Some windows do not support the state protocol; keep going.
	}

	x, y, w, h := c.FromCartesian(r)

	// The engine places outer frames; EWMH moves the client area.
	left, right, top, bottom := c.frameExtents(windowID)
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

	if err := ewmh.MoveresizeWindow(c.XUtil, windowID, x, y, w, h); err != nil {
		// Fallback to direct window manipulation
		xwindow.New(c.XUtil, windowID).MoveResize(x, y, w, h)
	}
	return nil
}

// Maximize sets the EWMH maximized state instead of sizing the window to
// the screen, so the window manager treats it as genuinely maximized.
func (c *Connection) Maximize(windowID xproto.Window) error {
	if err := ewmh.WmStateReq(c.XUtil, windowID, 1, "_NET_WM_STATE_MAXIMIZED_HORZ"); err != nil {
		return err
	}
	return ewmh.WmStateReq(c.XUtil, windowID, 1, "_NET_WM_STATE_MAXIMIZED_VERT")
}

// unmaximizeWindow removes maximized state from a window
func (c *Connection) unmaximizeWindow(windowID xproto.Window) error {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return err
	}

	for _, state := range states {
		switch state {
		case "_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT", "_NET_WM_STATE_FULLSCREEN":
			ewmh.WmStateReq(c.XUtil, windowID, 0, state)
		}
	}
	return nil
}

// frameExtents returns the window decoration sizes, zeros if unavailable.
func (c *Connection) frameExtents(windowID xproto.Window) (left, right, top, bottom int) {
	extents, err := ewmh.FrameExtentsGet(c.XUtil, windowID)
	if err != nil {
		return 0, 0, 0, 0
	}
	return int(extents.Left), int(extents.Right), int(extents.Top), int(extents.Bottom)
}

// IsNormalWindow checks if a window is a normal application window
func (c *Connection) IsNormalWindow(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		// If we can't determine type, assume it's normal
		return true
	}

	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_NORMAL" {
			return true
		}
		// Reject desktop, dock, splash, etc.
		if t == "_NET_WM_WINDOW_TYPE_DESKTOP" ||
			t == "_NET_WM_WINDOW_TYPE_DOCK" ||
			t == "_NET_WM_WINDOW_TYPE_SPLASH" ||
			t == "_NET_WM_WINDOW_TYPE_NOTIFICATION" {
			return false
		}
	}

	// If no specific type is set, assume it's normal
	return len(types) == 0
}

// ClientWindows lists the window manager's managed windows.
func (c *Connection) ClientWindows() ([]xproto.Window, error) {
	return ewmh.ClientListGet(c.XUtil)
}
