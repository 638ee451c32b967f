package daemon

import (
	"fmt"
	"math"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/geometry"
	"github.com/1broseidon/snaptile/internal/ipc"
	"github.com/1broseidon/snaptile/internal/x11"
)

const (
	cascadeFraction = 0.6
	cascadeStep     = 40
)

// execMeta handles the actions the layout engine delegates back to us:
// operations over saved state or over every window at once.
func (d *Daemon) execMeta(a action.Action, win xproto.Window) (ipc.ExecActionData, error) {
	switch a {
	case action.Restore:
		return d.restore(win)
	case action.TileAll:
		return d.tileAll(win)
	case action.CascadeAll:
		return d.cascadeAll(win)
	default:
		return ipc.ExecActionData{}, fmt.Errorf("unhandled action %s", a)
	}
}

// restore puts the window back where it sat before its first snap and
// drops its tracking state.
func (d *Daemon) restore(win xproto.Window) (ipc.ExecActionData, error) {
	rect, ok := d.store.PreSnap(uint32(win))
	if !ok {
		return ipc.ExecActionData{}, fmt.Errorf("no saved position for window %d", uint32(win))
	}
	if err := d.apply(win, rect); err != nil {
		return ipc.ExecActionData{}, err
	}
	d.store.Forget(uint32(win))
	return execData(win, rect), nil
}

// tileAll lays every normal window out in a near-square grid, one grid per
// monitor. Tiled windows start cycling fresh.
func (d *Daemon) tileAll(win xproto.Window) (ipc.ExecActionData, error) {
	frames, _, err := d.conn.Frames()
	if err != nil {
		return ipc.ExecActionData{}, err
	}
	windows, err := d.managedWindows()
	if err != nil {
		return ipc.ExecActionData{}, err
	}
	if len(windows) == 0 {
		return ipc.ExecActionData{}, fmt.Errorf("no windows to tile")
	}

	byMonitor := make(map[int][]xproto.Window)
	for _, w := range windows {
		r, err := d.conn.WindowFrame(w)
		if err != nil {
			continue
		}
		idx := x11.MonitorIndexFor(frames, r)
		byMonitor[idx] = append(byMonitor[idx], w)
	}

	out := ipc.ExecActionData{Window: uint32(win)}
	for idx, group := range byMonitor {
		cells := tileFrames(frames[idx], len(group))
		for i, w := range group {
			if err := d.apply(w, cells[i]); err != nil {
				continue
			}
			d.store.Forget(uint32(w))
			if w == win {
				out = execData(win, cells[i])
			}
		}
	}
	return out, nil
}

// cascadeAll stacks the focused monitor's windows diagonally from its top
// left corner, the focused window last so it ends up on top of the pile
// geometrically.
func (d *Daemon) cascadeAll(win xproto.Window) (ipc.ExecActionData, error) {
	frames, _, err := d.conn.Frames()
	if err != nil {
		return ipc.ExecActionData{}, err
	}
	winRect, err := d.conn.WindowFrame(win)
	if err != nil {
		return ipc.ExecActionData{}, err
	}
	frame := frames[x11.MonitorIndexFor(frames, winRect)]

	windows, err := d.managedWindows()
	if err != nil {
		return ipc.ExecActionData{}, err
	}
	group := make([]xproto.Window, 0, len(windows))
	for _, w := range windows {
		if w == win {
			continue
		}
		r, err := d.conn.WindowFrame(w)
		if err != nil {
			continue
		}
		if frames[x11.MonitorIndexFor(frames, r)] == frame {
			group = append(group, w)
		}
	}
	group = append(group, win)

	cells := cascadeFrames(frame, len(group))
	out := ipc.ExecActionData{Window: uint32(win)}
	for i, w := range group {
		if err := d.apply(w, cells[i]); err != nil {
			continue
		}
		d.store.Forget(uint32(w))
		if w == win {
			out = execData(win, cells[i])
		}
	}
	return out, nil
}

func (d *Daemon) managedWindows() ([]xproto.Window, error) {
	all, err := d.conn.ClientWindows()
	if err != nil {
		return nil, err
	}
	out := make([]xproto.Window, 0, len(all))
	for _, w := range all {
		if d.conn.IsNormalWindow(w) {
			out = append(out, w)
		}
	}
	return out, nil
}

// tileFrames splits a frame into a near-square grid of n cells in reading
// order: left to right along the top row first. Remainder pixels land in
// the last column and bottom row; a short final row stretches its cells
// wider to cover the full frame width.
func tileFrames(frame geometry.Rect, n int) []geometry.Rect {
	if n <= 0 {
		return nil
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols

	out := make([]geometry.Rect, 0, n)
	for row := 0; row < rows; row++ {
		inRow := cols
		if row == rows-1 {
			inRow = n - cols*(rows-1)
		}
		cellW := frame.Width / inRow
		cellH := frame.Height / rows
		for col := 0; col < inRow; col++ {
			w := cellW
			if col == inRow-1 {
				w = frame.Width - cellW*(inRow-1)
			}
			h := cellH
			if row == rows-1 {
				h = frame.Height - cellH*(rows-1)
			}
			// Reading order counts rows from the top; Cartesian y
			// grows upward.
			y := frame.MaxY() - cellH*row - h
			out = append(out, geometry.Rect{
				X:      frame.X + cellW*col,
				Y:      y,
				Width:  w,
				Height: h,
			})
		}
	}
	return out
}

// cascadeFrames places n equal windows diagonally from the frame's top left
// corner, each offset by a fixed step, wrapping back to the corner when the
// stack would run off the frame.
func cascadeFrames(frame geometry.Rect, n int) []geometry.Rect {
	if n <= 0 {
		return nil
	}
	w := geometry.FloorFrac(frame.Width, cascadeFraction)
	h := geometry.FloorFrac(frame.Height, cascadeFraction)

	out := make([]geometry.Rect, 0, n)
	offset := 0
	for i := 0; i < n; i++ {
		x := frame.X + offset
		top := frame.MaxY() - offset
		if x+w > frame.MaxX() || top-h < frame.Y {
			offset = 0
			x = frame.X
			top = frame.MaxY()
		}
		out = append(out, geometry.Rect{X: x, Y: top - h, Width: w, Height: h})
		offset += cascadeStep
	}
	return out
}
