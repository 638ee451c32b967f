// Package x11 is snaptile's window-system boundary: it reads monitor and
// window geometry and applies the engine's rectangles via EWMH.
//
// The engine works in Cartesian coordinates (origin bottom-left, Y up); X11
// uses top-left origin with Y down. This package converts at the boundary,
// using the root window height as the reference. Nothing above it sees X11
// coordinates.
package x11

import (
	"fmt"
	"os"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/1broseidon/snaptile/internal/geometry"
)

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil      *xgbutil.XUtil
	Root       xproto.Window
	RootWidth  int
	RootHeight int
}

// NewConnection establishes a connection to the X11 server. Non-empty
// display and xauthority override the environment before connecting.
func NewConnection(display, xauthority string) (*Connection, error) {
	if display != "" {
		os.Setenv("DISPLAY", display)
	}
	if xauthority != "" {
		os.Setenv("XAUTHORITY", xauthority)
	}

	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	// Initialize keybind module (required for global hotkeys)
	keybind.Initialize(xu)

	root := xu.RootWin()
	geom, err := xproto.GetGeometry(xu.Conn(), xproto.Drawable(root)).Reply()
	if err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("failed to get root geometry: %w", err)
	}

	return &Connection{
		XUtil:      xu,
		Root:       root,
		RootWidth:  int(geom.Width),
		RootHeight: int(geom.Height),
	}, nil
}

// EventLoop starts the main X11 event loop (blocking)
func (c *Connection) EventLoop() {
	xevent.Main(c.XUtil)
}

// Quit stops the event loop.
func (c *Connection) Quit() {
	xevent.Quit(c.XUtil)
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

// ToCartesian converts an X11 rectangle (top-left origin, Y down) to the
// engine's coordinates (bottom-left origin, Y up).
func (c *Connection) ToCartesian(x, y, width, height int) geometry.Rect {
	return geometry.Rect{
		X:      x,
		Y:      c.RootHeight - (y + height),
		Width:  width,
		Height: height,
	}
}

// FromCartesian converts an engine rectangle back to X11 coordinates.
func (c *Connection) FromCartesian(r geometry.Rect) (x, y, width, height int) {
	return r.X, c.RootHeight - (r.Y + r.Height), r.Width, r.Height
}
