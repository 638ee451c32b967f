package snap

import "fmt"

// ExecutionMode selects what repeated directional moves do once the window
// has reached a screen edge.
type ExecutionMode int

const (
	// MoveSnap snaps to the edge. No resize, no monitor traversal.
	MoveSnap ExecutionMode = iota
	// MoveResize snaps, then cycles the moving-axis size on repeat.
	MoveResize
	// MoveAcrossMonitor relocates the window to the adjacent monitor once
	// it is flush with the edge, snapping to the opposite edge so the
	// window appears to have crossed the boundary.
	MoveAcrossMonitor
	// MoveAcrossAndResize traverses monitors like MoveAcrossMonitor; with a
	// single monitor it degrades to MoveResize, and once the traversal
	// wraps around the monitor ring it additionally begins resize cycling.
	MoveAcrossAndResize
	// MoveCycleMonitor relocates to the next monitor in the direction on
	// repeat, keeping the same edge. Never resizes.
	MoveCycleMonitor
)

var executionModeNames = map[ExecutionMode]string{
	MoveSnap:            "none",
	MoveResize:          "resize",
	MoveAcrossMonitor:   "across-monitor",
	MoveAcrossAndResize: "across-and-resize",
	MoveCycleMonitor:    "cycle-monitor",
}

func (m ExecutionMode) String() string {
	if name, ok := executionModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("executionmode(%d)", int(m))
}

// ParseExecutionMode resolves a configured mode name.
func ParseExecutionMode(name string) (ExecutionMode, error) {
	for m, n := range executionModeNames {
		if n == name {
			return m, nil
		}
	}
	return MoveSnap, fmt.Errorf("unknown execution mode %q", name)
}

// Default tuning values. Invalid configuration falls back to these rather
// than erroring; the engine must stay total over its input domain.
const (
	DefaultMinimumFraction        = 0.25
	DefaultAlmostMaximizeFraction = 0.9
	DefaultGapTolerance           = 5
	DefaultSizeStep               = 30
	DefaultTodoWidth              = 400
)

// Settings is the caller-supplied cycle configuration. All fields are plain
// values; the engine never mutates them.
type Settings struct {
	// Sizes is the enabled cycle-size subset.
	Sizes SizeMask
	// CyclingEnabled gates all repeat-press cycling. When false every
	// action behaves as a fresh invocation.
	CyclingEnabled bool
	// MoveMode selects directional-move behavior.
	MoveMode ExecutionMode
	// CenterOnMove centers the window on the cross axis after a
	// directional move.
	CenterOnMove bool
	// CurtainResize pins edges that were flush with a screen edge before a
	// size change.
	CurtainResize bool
	// MinimumFraction is the per-axis floor for shrink operations, as a
	// fraction of the screen.
	MinimumFraction float64
	// GapTolerance is the flushness tolerance in pixels for curtain
	// pinning and edge detection.
	GapTolerance int
	// SizeStep is the grow/shrink delta in pixels for the both-axes
	// operations; WidthStep and HeightStep apply to the single-axis ones.
	SizeStep   int
	WidthStep  int
	HeightStep int
	// AlmostMaximizeFraction is the screen fraction used by almost-maximize.
	AlmostMaximizeFraction float64
	// TodoWidth is the sidebar column width in pixels.
	TodoWidth int
	// SpecifiedWidth and SpecifiedHeight configure the fixed-size action.
	// Zero leaves the action unhandled.
	SpecifiedWidth  int
	SpecifiedHeight int
	// ReplayOnDisplayChange re-runs the window's last action against the
	// new screen after next/previous-display.
	ReplayOnDisplayChange bool
	// KeepMaximizedOnDisplayChange maximizes on the new screen when the
	// window was maximized on the old one.
	KeepMaximizedOnDisplayChange bool
}

// DefaultSettings returns the stock configuration.
func DefaultSettings() Settings {
	return Settings{
		Sizes:                  FullSizeMask,
		CyclingEnabled:         true,
		MoveMode:               MoveSnap,
		CenterOnMove:           false,
		CurtainResize:          false,
		MinimumFraction:        DefaultMinimumFraction,
		GapTolerance:           DefaultGapTolerance,
		SizeStep:               DefaultSizeStep,
		WidthStep:              DefaultSizeStep,
		HeightStep:             DefaultSizeStep,
		AlmostMaximizeFraction: DefaultAlmostMaximizeFraction,
		TodoWidth:              DefaultTodoWidth,
	}
}

// normalized returns a copy with out-of-range values replaced by defaults.
func (s Settings) normalized() Settings {
	if !s.Sizes.Valid() {
		s.Sizes = FullSizeMask
	}
	if s.MinimumFraction <= 0 || s.MinimumFraction >= 1 {
		s.MinimumFraction = DefaultMinimumFraction
	}
	if s.AlmostMaximizeFraction <= 0 || s.AlmostMaximizeFraction > 1 {
		s.AlmostMaximizeFraction = DefaultAlmostMaximizeFraction
	}
	if s.GapTolerance < 0 {
		s.GapTolerance = DefaultGapTolerance
	}
	if s.SizeStep <= 0 {
		s.SizeStep = DefaultSizeStep
	}
	if s.WidthStep <= 0 {
		s.WidthStep = s.SizeStep
	}
	if s.HeightStep <= 0 {
		s.HeightStep = s.SizeStep
	}
	if s.TodoWidth <= 0 {
		s.TodoWidth = DefaultTodoWidth
	}
	if _, ok := executionModeNames[s.MoveMode]; !ok {
		s.MoveMode = MoveSnap
	}
	return s
}
