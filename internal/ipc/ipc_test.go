package ipc

import (
	"fmt"
	"testing"

	"github.com/1broseidon/snaptile/internal/action"
)

type fakeHandler struct {
	lastAction action.Action
	lastWindow uint32
	reloads    int
	execErr    error
}

func (f *fakeHandler) ExecAction(a action.Action, window uint32) (ExecActionData, error) {
	f.lastAction, f.lastWindow = a, window
	if f.execErr != nil {
		return ExecActionData{}, f.execErr
	}
	return ExecActionData{Window: 42, X: 0, Y: 0, Width: 500, Height: 500}, nil
}

func (f *fakeHandler) Undo() (ExecActionData, error) {
	return ExecActionData{Window: 42, X: 10, Y: 10, Width: 300, Height: 300}, nil
}

func (f *fakeHandler) Reload() error {
	f.reloads++
	return nil
}

func (f *fakeHandler) Status() StatusData {
	return StatusData{TrackedWindows: 3, Hotkeys: 24}
}

func (f *fakeHandler) Monitors() ([]MonitorInfo, error) {
	return []MonitorInfo{{ID: 0, Name: "eDP-1", Width: 1920, Height: 1080, Primary: true}}, nil
}

func startTestServer(t *testing.T) (*fakeHandler, *Client) {
	t.Helper()
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	h := &fakeHandler{}
	srv, err := NewServer(h)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(srv.Stop)
	return h, NewClient()
}

func TestExecActionRoundTrip(t *testing.T) {
	h, client := startTestServer(t)

	data, err := client.ExecAction("left-half", 7)
	if err != nil {
		t.Fatalf("ExecAction: %v", err)
	}
	if h.lastAction != action.LeftHalf || h.lastWindow != 7 {
		t.Fatalf("handler saw %v/%d, want left-half/7", h.lastAction, h.lastWindow)
	}
	if data.Window != 42 || data.Width != 500 {
		t.Fatalf("data = %+v", data)
	}
}

func TestExecActionUnknownName(t *testing.T) {
	_, client := startTestServer(t)

	if _, err := client.ExecAction("teleport", 0); err == nil {
		t.Fatal("expected an error for an unknown action")
	}
}

func TestExecActionHandlerError(t *testing.T) {
	h, client := startTestServer(t)
	h.execErr = fmt.Errorf("no focused window")

	if _, err := client.ExecAction("maximize", 0); err == nil {
		t.Fatal("expected the handler error to surface")
	}
}

func TestListActions(t *testing.T) {
	_, client := startTestServer(t)

	actions, err := client.ListActions()
	if err != nil {
		t.Fatalf("ListActions: %v", err)
	}
	if len(actions) != len(action.All()) {
		t.Fatalf("actions = %d entries, want %d", len(actions), len(action.All()))
	}
}

func TestStatusAndMonitors(t *testing.T) {
	_, client := startTestServer(t)

	status, err := client.GetStatus()
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if !status.DaemonRunning || status.TrackedWindows != 3 {
		t.Fatalf("status = %+v", status)
	}

	monitors, err := client.GetMonitors()
	if err != nil {
		t.Fatalf("GetMonitors: %v", err)
	}
	if len(monitors.Monitors) != 1 || monitors.Monitors[0].Name != "eDP-1" {
		t.Fatalf("monitors = %+v", monitors)
	}
}

func TestUndoAndReload(t *testing.T) {
	h, client := startTestServer(t)

	data, err := client.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if data.Width != 300 {
		t.Fatalf("undo data = %+v", data)
	}

	if err := client.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if h.reloads != 1 {
		t.Fatalf("reloads = %d, want 1", h.reloads)
	}
}

func TestPingWithoutDaemon(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	if err := NewClient().Ping(); err == nil {
		t.Fatal("expected ping to fail without a daemon")
	}
}
