package mcp

// SnapWindowInput is the input for the snap_window tool.
type SnapWindowInput struct {
	Action string `json:"action" jsonschema:"required,Action name (e.g. left-half, top-right, center-third, next-display). Use list_actions for the full set."`
	Window uint32 `json:"window,omitempty" jsonschema:"X11 window ID to act on. Omit or pass 0 for the focused window."`
}

// SnapWindowOutput is the output for the snap_window tool.
type SnapWindowOutput struct {
	Window uint32 `json:"window"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ListActionsInput is the input for the list_actions tool.
type ListActionsInput struct{}

// ListActionsOutput is the output for the list_actions tool.
type ListActionsOutput struct {
	Actions []string `json:"actions"`
}

// UndoSnapInput is the input for the undo_snap tool.
type UndoSnapInput struct{}

// GetMonitorsInput is the input for the get_monitors tool.
type GetMonitorsInput struct{}

// MonitorInfo describes one connected display.
type MonitorInfo struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Primary bool   `json:"primary,omitempty"`
}

// GetMonitorsOutput is the output for the get_monitors tool.
type GetMonitorsOutput struct {
	Monitors []MonitorInfo `json:"monitors"`
}

// GetStatusInput is the input for the get_status tool.
type GetStatusInput struct{}

// GetStatusOutput is the output for the get_status tool.
type GetStatusOutput struct {
	DaemonRunning  bool  `json:"daemon_running"`
	TrackedWindows int   `json:"tracked_windows"`
	Hotkeys        int   `json:"hotkeys"`
	UptimeSeconds  int64 `json:"uptime_seconds"`
}
