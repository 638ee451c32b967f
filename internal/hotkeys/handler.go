// Package hotkeys binds snaptile's global keyboard shortcuts.
package hotkeys

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/x11"
)

// Executor applies actions; implemented by the daemon.
type Executor interface {
	Execute(a action.Action)
	ExecuteUndo()
}

// Handler manages global keyboard shortcuts
type Handler struct {
	xu       *xgbutil.XUtil
	root     xproto.Window
	executor Executor
	bound    []string
}

var ignoreModsOnce sync.Once

// NewHandler creates a new hotkey handler.
func NewHandler(conn *x11.Connection, executor Executor) *Handler {
	ignoreModsOnce.Do(func() {
		configureIgnoreMods(conn.XUtil)
	})

	return &Handler{
		xu:       conn.XUtil,
		root:     conn.Root,
		executor: executor,
	}
}

// Bind registers every configured action hotkey plus the undo binding.
// Unbindable keys are logged and skipped; one bad binding must not take the
// daemon down.
func (h *Handler) Bind(bindings map[action.Action]string, undoKey string) error {
	bound := 0
	for a, spec := range bindings {
		a := a
		if err := h.RegisterFunc(spec, func() {
			h.executor.Execute(a)
		}); err != nil {
			slog.Warn("failed to bind hotkey", "action", a.String(), "key", spec, "error", err)
			continue
		}
		h.bound = append(h.bound, spec)
		bound++
	}
	if undoKey != "" {
		if err := h.RegisterFunc(undoKey, func() {
			h.executor.ExecuteUndo()
		}); err != nil {
			slog.Warn("failed to bind undo hotkey", "key", undoKey, "error", err)
		} else {
			h.bound = append(h.bound, undoKey)
			bound++
		}
	}
	if bound == 0 && len(bindings) > 0 {
		return fmt.Errorf("no hotkeys could be bound")
	}
	slog.Info("hotkeys bound", "count", bound)
	return nil
}

// Unbind releases every registered hotkey, for config reload.
func (h *Handler) Unbind() {
	keybind.Detach(h.xu, h.root)
	h.bound = nil
}

// Count reports the number of bound keys.
func (h *Handler) Count() int {
	return len(h.bound)
}

// RegisterFunc registers an arbitrary hotkey callback.
func (h *Handler) RegisterFunc(keySequence string, callback func()) error {
	return keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		callback()
	}).Connect(h.xu, h.root, keySequence, true)
}

func configureIgnoreMods(xu *xgbutil.XUtil) {
	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	unique := make(map[uint16]struct{})
	add := func(mask uint16) {
		unique[mask] = struct{}{}
	}

	add(0)
	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		add(mask)
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
