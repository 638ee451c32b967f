// Package daemon wires snaptile together: hotkeys trigger the layout
// engine, the engine's rectangles are applied over X11, and per-window
// cycling state is tracked in between. It also implements the IPC handler
// the CLI and MCP server drive.
package daemon

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/config"
	"github.com/1broseidon/snaptile/internal/geometry"
	"github.com/1broseidon/snaptile/internal/history"
	"github.com/1broseidon/snaptile/internal/hotkeys"
	"github.com/1broseidon/snaptile/internal/ipc"
	"github.com/1broseidon/snaptile/internal/snap"
	"github.com/1broseidon/snaptile/internal/x11"
)

// Daemon is the long-running process state.
type Daemon struct {
	conn  *x11.Connection
	store *history.Store
	keys  *hotkeys.Handler

	mu       sync.RWMutex
	cfg      *config.Config
	settings snap.Settings
}

// New creates a daemon over an established X11 connection.
func New(conn *x11.Connection, cfg *config.Config) *Daemon {
	d := &Daemon{
		conn:     conn,
		store:    history.NewStore(cfg.HistoryLimit),
		cfg:      cfg,
		settings: cfg.Settings(),
	}
	d.keys = hotkeys.NewHandler(conn, d)
	return d
}

// Start binds the configured hotkeys and launches the IPC server. The
// caller runs the X event loop.
func (d *Daemon) Start() (*ipc.Server, error) {
	if err := d.keys.Bind(d.cfg.Bindings(), d.cfg.UndoHotkey); err != nil {
		return nil, err
	}

	server, err := ipc.NewServer(d)
	if err != nil {
		return nil, err
	}
	if err := server.Start(); err != nil {
		return nil, err
	}
	return server, nil
}

// Execute applies an action to the focused window. Hotkey callback; errors
// are logged, not returned, because there is nobody to return them to.
func (d *Daemon) Execute(a action.Action) {
	if _, err := d.ExecAction(a, 0); err != nil {
		slog.Warn("action failed", "action", a.String(), "error", err)
	}
}

// ExecuteUndo reverts the focused window. Hotkey callback.
func (d *Daemon) ExecuteUndo() {
	if _, err := d.Undo(); err != nil {
		slog.Warn("undo failed", "error", err)
	}
}

// ExecAction resolves an action against the current display state and
// applies the result. Window 0 targets the focused window.
func (d *Daemon) ExecAction(a action.Action, window uint32) (ipc.ExecActionData, error) {
	win := xproto.Window(window)
	if win == 0 {
		var err error
		win, err = d.conn.ActiveWindow()
		if err != nil {
			return ipc.ExecActionData{}, err
		}
	}
	if !d.conn.IsNormalWindow(win) {
		return ipc.ExecActionData{}, fmt.Errorf("window %d is not a normal window", win)
	}

	if a.Family() == action.FamilyMeta {
		return d.execMeta(a, win)
	}

	frames, _, err := d.conn.Frames()
	if err != nil {
		return ipc.ExecActionData{}, err
	}
	winRect, err := d.conn.WindowFrame(win)
	if err != nil {
		return ipc.ExecActionData{}, err
	}

	var hist *snap.History
	if h, ok := d.store.Get(uint32(win)); ok {
		hist = &h
	}

	d.mu.RLock()
	settings := d.settings
	d.mu.RUnlock()

	res := snap.Resolve(snap.Request{
		Action:   a,
		Window:   winRect,
		Screens:  frames,
		Screen:   x11.MonitorIndexFor(frames, winRect),
		History:  hist,
		Settings: settings,
	})
	if !res.Handled {
		return ipc.ExecActionData{}, fmt.Errorf("action %s produced no placement", a)
	}

	if err := d.apply(win, res.Rect); err != nil {
		return ipc.ExecActionData{}, err
	}
	// Also set the EWMH maximized state so the window manager treats the
	// window as maximized, not merely screen-sized. Covers the plain
	// maximize action and the keep-maximized display move.
	if res.Action == action.Maximize && res.SubAction == action.SubMaximize {
		if err := d.conn.Maximize(win); err != nil {
			slog.Debug("failed to set maximized state", "window", uint32(win), "error", err)
		}
	}
	d.store.Record(uint32(win), winRect, snap.History{
		Action:    res.Action,
		SubAction: res.SubAction,
		Rect:      res.Rect,
		Count:     res.Count,
	})

	slog.Debug("action applied",
		"action", res.Action.String(), "window", uint32(win),
		"x", res.Rect.X, "y", res.Rect.Y, "w", res.Rect.Width, "h", res.Rect.Height)
	return execData(win, res.Rect), nil
}

// Undo reverts the focused window to where it sat before its last snap.
func (d *Daemon) Undo() (ipc.ExecActionData, error) {
	win, err := d.conn.ActiveWindow()
	if err != nil {
		return ipc.ExecActionData{}, err
	}
	prev, ok := d.store.Undo(uint32(win))
	if !ok {
		return ipc.ExecActionData{}, fmt.Errorf("no snap to undo for window %d", uint32(win))
	}
	if err := d.apply(win, prev); err != nil {
		return ipc.ExecActionData{}, err
	}
	return execData(win, prev), nil
}

// Reload re-reads the configuration, swaps the engine settings, and rebinds
// hotkeys.
func (d *Daemon) Reload() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.cfg = cfg
	d.settings = cfg.Settings()
	d.mu.Unlock()

	d.keys.Unbind()
	if err := d.keys.Bind(cfg.Bindings(), cfg.UndoHotkey); err != nil {
		return err
	}
	slog.Info("configuration reloaded", "hotkeys", d.keys.Count())
	return nil
}

// Status reports daemon state for GET_STATUS.
func (d *Daemon) Status() ipc.StatusData {
	return ipc.StatusData{
		TrackedWindows: d.store.Len(),
		Hotkeys:        d.keys.Count(),
	}
}

// Monitors reports the connected displays for GET_MONITORS.
func (d *Daemon) Monitors() ([]ipc.MonitorInfo, error) {
	_, monitors, err := d.conn.Frames()
	if err != nil {
		return nil, err
	}
	out := make([]ipc.MonitorInfo, len(monitors))
	for i, m := range monitors {
		out[i] = ipc.MonitorInfo{
			ID:      m.ID,
			Name:    m.Name,
			X:       m.PixelX,
			Y:       m.PixelY,
			Width:   m.PixelWidth,
			Height:  m.PixelHeight,
			Primary: m.Primary,
		}
	}
	return out, nil
}

func (d *Daemon) apply(win xproto.Window, r geometry.Rect) error {
	return d.conn.MoveResizeWindow(win, r)
}

func execData(win xproto.Window, r geometry.Rect) ipc.ExecActionData {
	return ipc.ExecActionData{
		Window: uint32(win),
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
	}
}
