// Package config loads and validates snaptile's YAML configuration.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/snap"
)

// ValidationError reports an invalid configuration value with its YAML path.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Snapping configures the layout engine.
type Snapping struct {
	// CycleSizes selects the enabled fractional sizes for repeat-press
	// cycling, by name. Empty means all five.
	CycleSizes []string `yaml:"cycle_sizes,omitempty"`
	// Cycling gates repeat-press cycling entirely.
	Cycling *bool `yaml:"cycling,omitempty"`
	// ExecutionMode selects directional-move behavior: none, resize,
	// across-monitor, across-and-resize, cycle-monitor.
	ExecutionMode string `yaml:"execution_mode,omitempty"`
	// CenterOnMove centers the window on the cross axis after a move.
	CenterOnMove bool `yaml:"center_on_move,omitempty"`
	// CurtainResize keeps screen-flush edges pinned through grow/shrink.
	CurtainResize bool `yaml:"curtain_resize,omitempty"`
	// MinimumFraction is the smallest per-axis window size shrink
	// operations may produce, as a fraction of the screen.
	MinimumFraction float64 `yaml:"minimum_fraction,omitempty"`
	// GapTolerance is the flushness tolerance in pixels.
	GapTolerance *int `yaml:"gap_tolerance,omitempty"`
	// SizeStep is the grow/shrink delta in pixels; WidthStep and
	// HeightStep override it per axis.
	SizeStep   int `yaml:"size_step,omitempty"`
	WidthStep  int `yaml:"width_step,omitempty"`
	HeightStep int `yaml:"height_step,omitempty"`
	// AlmostMaximizeFraction is the screen fraction for almost-maximize.
	AlmostMaximizeFraction float64 `yaml:"almost_maximize_fraction,omitempty"`
	// TodoWidth is the sidebar width in pixels for the todo actions.
	TodoWidth int `yaml:"todo_width,omitempty"`
	// SpecifiedWidth and SpecifiedHeight configure the fixed-size action.
	SpecifiedWidth  int `yaml:"specified_width,omitempty"`
	SpecifiedHeight int `yaml:"specified_height,omitempty"`
	// ReplayOnDisplayChange re-applies the window's last snap after
	// next/previous-display.
	ReplayOnDisplayChange bool `yaml:"replay_on_display_change,omitempty"`
	// KeepMaximizedOnDisplayChange re-maximizes on the target display.
	KeepMaximizedOnDisplayChange bool `yaml:"keep_maximized_on_display_change,omitempty"`
}

// Config holds the application configuration.
type Config struct {
	// Hotkeys maps action names to key specs, e.g. "left-half: Mod4-Left".
	Hotkeys map[string]string `yaml:"hotkeys"`
	// UndoHotkey reverts the most recent snap.
	UndoHotkey string   `yaml:"undo_hotkey,omitempty"`
	Snapping   Snapping `yaml:"snapping"`
	// HistoryLimit caps the number of windows with tracked snap state.
	HistoryLimit int    `yaml:"history_limit,omitempty"`
	Display      string `yaml:"display,omitempty"`
	XAuthority   string `yaml:"xauthority,omitempty"`
	LogLevel     string `yaml:"log_level"`
}

const DefaultHistoryLimit = 256

// DefaultConfig returns the stock configuration: a Rectangle-style keymap on
// Super+Alt, full cycle set, plain edge snapping for moves.
func DefaultConfig() *Config {
	return &Config{
		Hotkeys: map[string]string{
			"left-half":        "Mod4-Mod1-Left",
			"right-half":       "Mod4-Mod1-Right",
			"top-half":         "Mod4-Mod1-Up",
			"bottom-half":      "Mod4-Mod1-Down",
			"center-half":      "Mod4-Mod1-c",
			"top-left":         "Mod4-Mod1-u",
			"top-right":        "Mod4-Mod1-i",
			"bottom-left":      "Mod4-Mod1-j",
			"bottom-right":     "Mod4-Mod1-k",
			"first-third":      "Mod4-Mod1-d",
			"center-third":     "Mod4-Mod1-f",
			"last-third":       "Mod4-Mod1-g",
			"first-two-thirds": "Mod4-Mod1-e",
			"last-two-thirds":  "Mod4-Mod1-t",
			"maximize":         "Mod4-Mod1-Return",
			"almost-maximize":  "Mod4-Mod1-BackSpace",
			"maximize-height":  "Mod4-Shift-Mod1-Up",
			"larger":           "Mod4-Mod1-equal",
			"smaller":          "Mod4-Mod1-minus",
			"center":           "Mod4-Mod1-space",
			"restore":          "Mod4-Mod1-Delete",
			"next-display":     "Mod4-Mod1-Next",
			"previous-display": "Mod4-Mod1-Prior",
		},
		UndoHotkey:   "Mod4-Mod1-z",
		Snapping:     Snapping{},
		HistoryLimit: DefaultHistoryLimit,
		LogLevel:     "info",
	}
}

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warning": true, "error": true,
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if c.Hotkeys == nil {
		return &ValidationError{Path: "hotkeys", Err: fmt.Errorf("hotkeys must not be null")}
	}
	names := make([]string, 0, len(c.Hotkeys))
	for name := range c.Hotkeys {
		names = append(names, name)
	}
	sort.Strings(names)
	seen := map[string]string{}
	for _, name := range names {
		if _, err := action.Parse(name); err != nil {
			return &ValidationError{Path: "hotkeys." + name, Err: err}
		}
		spec := strings.TrimSpace(c.Hotkeys[name])
		if spec == "" {
			return &ValidationError{Path: "hotkeys." + name, Err: fmt.Errorf("key spec must not be empty")}
		}
		if prev, dup := seen[spec]; dup {
			return &ValidationError{Path: "hotkeys." + name, Err: fmt.Errorf("key %q already bound to %s", spec, prev)}
		}
		seen[spec] = name
	}
	if c.UndoHotkey != "" {
		if prev, dup := seen[strings.TrimSpace(c.UndoHotkey)]; dup {
			return &ValidationError{Path: "undo_hotkey", Err: fmt.Errorf("key %q already bound to %s", c.UndoHotkey, prev)}
		}
	}

	if err := c.Snapping.validate(); err != nil {
		return err
	}

	if c.HistoryLimit < 0 {
		return &ValidationError{Path: "history_limit", Err: fmt.Errorf("history_limit must be >= 0")}
	}
	if !validLogLevels[c.LogLevel] {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	return nil
}

func (s Snapping) validate() error {
	for _, name := range s.CycleSizes {
		if _, err := snap.ParseCycleSize(name); err != nil {
			return &ValidationError{Path: "snapping.cycle_sizes", Err: err}
		}
	}
	if s.ExecutionMode != "" {
		if _, err := snap.ParseExecutionMode(s.ExecutionMode); err != nil {
			return &ValidationError{Path: "snapping.execution_mode", Err: err}
		}
	}
	if s.MinimumFraction < 0 || s.MinimumFraction >= 1 {
		return &ValidationError{Path: "snapping.minimum_fraction", Err: fmt.Errorf("minimum_fraction must be in [0, 1)")}
	}
	if s.GapTolerance != nil && *s.GapTolerance < 0 {
		return &ValidationError{Path: "snapping.gap_tolerance", Err: fmt.Errorf("gap_tolerance must be >= 0")}
	}
	if s.SizeStep < 0 || s.WidthStep < 0 || s.HeightStep < 0 {
		return &ValidationError{Path: "snapping.size_step", Err: fmt.Errorf("size steps must be >= 0")}
	}
	if s.AlmostMaximizeFraction < 0 || s.AlmostMaximizeFraction > 1 {
		return &ValidationError{Path: "snapping.almost_maximize_fraction", Err: fmt.Errorf("almost_maximize_fraction must be in [0, 1]")}
	}
	if s.TodoWidth < 0 {
		return &ValidationError{Path: "snapping.todo_width", Err: fmt.Errorf("todo_width must be >= 0")}
	}
	if s.SpecifiedWidth < 0 || s.SpecifiedHeight < 0 {
		return &ValidationError{Path: "snapping.specified_width", Err: fmt.Errorf("specified size must be >= 0")}
	}
	return nil
}

// Settings converts the snapping section into engine settings. The config
// must have been validated; unset fields take the engine defaults.
func (c *Config) Settings() snap.Settings {
	s := snap.DefaultSettings()
	sp := c.Snapping

	if len(sp.CycleSizes) > 0 {
		var sizes []snap.CycleSize
		for _, name := range sp.CycleSizes {
			if cs, err := snap.ParseCycleSize(name); err == nil {
				sizes = append(sizes, cs)
			}
		}
		s.Sizes = snap.MaskOf(sizes...)
	}
	if sp.Cycling != nil {
		s.CyclingEnabled = *sp.Cycling
	}
	if sp.ExecutionMode != "" {
		if m, err := snap.ParseExecutionMode(sp.ExecutionMode); err == nil {
			s.MoveMode = m
		}
	}
	s.CenterOnMove = sp.CenterOnMove
	s.CurtainResize = sp.CurtainResize
	if sp.MinimumFraction > 0 {
		s.MinimumFraction = sp.MinimumFraction
	}
	if sp.GapTolerance != nil {
		s.GapTolerance = *sp.GapTolerance
	}
	if sp.SizeStep > 0 {
		s.SizeStep = sp.SizeStep
		s.WidthStep = sp.SizeStep
		s.HeightStep = sp.SizeStep
	}
	if sp.WidthStep > 0 {
		s.WidthStep = sp.WidthStep
	}
	if sp.HeightStep > 0 {
		s.HeightStep = sp.HeightStep
	}
	if sp.AlmostMaximizeFraction > 0 {
		s.AlmostMaximizeFraction = sp.AlmostMaximizeFraction
	}
	if sp.TodoWidth > 0 {
		s.TodoWidth = sp.TodoWidth
	}
	s.SpecifiedWidth = sp.SpecifiedWidth
	s.SpecifiedHeight = sp.SpecifiedHeight
	s.ReplayOnDisplayChange = sp.ReplayOnDisplayChange
	s.KeepMaximizedOnDisplayChange = sp.KeepMaximizedOnDisplayChange
	return s
}

// Bindings returns the parsed hotkey table: key spec per action, plus the
// undo binding if configured. The config must have been validated.
func (c *Config) Bindings() map[action.Action]string {
	out := make(map[action.Action]string, len(c.Hotkeys))
	for name, spec := range c.Hotkeys {
		a, err := action.Parse(name)
		if err != nil {
			continue
		}
		out[a] = strings.TrimSpace(spec)
	}
	return out
}
