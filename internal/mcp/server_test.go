package mcp

import (
	"context"
	"testing"

	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/ipc"
)

type fakeDaemon struct {
	lastAction action.Action
	lastWindow uint32
}

func (f *fakeDaemon) ExecAction(a action.Action, window uint32) (ipc.ExecActionData, error) {
	f.lastAction, f.lastWindow = a, window
	return ipc.ExecActionData{Window: 9, X: 0, Y: 300, Width: 960, Height: 540}, nil
}

func (f *fakeDaemon) Undo() (ipc.ExecActionData, error) {
	return ipc.ExecActionData{Window: 9, X: 100, Y: 100, Width: 640, Height: 480}, nil
}

func (f *fakeDaemon) Reload() error { return nil }

func (f *fakeDaemon) Status() ipc.StatusData {
	return ipc.StatusData{TrackedWindows: 2, Hotkeys: 24}
}

func (f *fakeDaemon) Monitors() ([]ipc.MonitorInfo, error) {
	return []ipc.MonitorInfo{
		{ID: 0, Name: "eDP-1", Width: 1920, Height: 1080, Primary: true},
		{ID: 1, Name: "HDMI-1", X: 1920, Width: 2560, Height: 1440},
	}, nil
}

func newTestServer(t *testing.T) (*fakeDaemon, *Server) {
	t.Helper()
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	daemon := &fakeDaemon{}
	srv, err := ipc.NewServer(daemon)
	if err != nil {
		t.Fatalf("ipc.NewServer: %v", err)
	}
	if err := srv.Start(); err != nil {
		t.Fatalf("ipc server start: %v", err)
	}
	t.Cleanup(srv.Stop)

	s, err := NewServer()
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return daemon, s
}

func TestNewServerRequiresDaemon(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	if _, err := NewServer(); err == nil {
		t.Fatal("expected an error when no daemon is listening")
	}
}

func TestSnapWindowTool(t *testing.T) {
	daemon, s := newTestServer(t)

	_, out, err := s.handleSnapWindow(context.Background(), nil, SnapWindowInput{Action: "top-half", Window: 7})
	if err != nil {
		t.Fatalf("snap_window: %v", err)
	}
	if daemon.lastAction != action.TopHalf || daemon.lastWindow != 7 {
		t.Fatalf("daemon saw %v/%d, want top-half/7", daemon.lastAction, daemon.lastWindow)
	}
	if out.Window != 9 || out.Y != 300 || out.Height != 540 {
		t.Fatalf("output = %+v", out)
	}
}

func TestSnapWindowRequiresAction(t *testing.T) {
	_, s := newTestServer(t)

	if _, _, err := s.handleSnapWindow(context.Background(), nil, SnapWindowInput{}); err == nil {
		t.Fatal("expected an error for a missing action")
	}
}

func TestSnapWindowUnknownAction(t *testing.T) {
	_, s := newTestServer(t)

	if _, _, err := s.handleSnapWindow(context.Background(), nil, SnapWindowInput{Action: "teleport"}); err == nil {
		t.Fatal("expected an error for an unknown action")
	}
}

func TestListActionsTool(t *testing.T) {
	_, s := newTestServer(t)

	_, out, err := s.handleListActions(context.Background(), nil, ListActionsInput{})
	if err != nil {
		t.Fatalf("list_actions: %v", err)
	}
	if len(out.Actions) != len(action.Names()) {
		t.Fatalf("got %d actions, want %d", len(out.Actions), len(action.Names()))
	}
}

func TestUndoSnapTool(t *testing.T) {
	_, s := newTestServer(t)

	_, out, err := s.handleUndoSnap(context.Background(), nil, UndoSnapInput{})
	if err != nil {
		t.Fatalf("undo_snap: %v", err)
	}
	if out.X != 100 || out.Width != 640 {
		t.Fatalf("output = %+v", out)
	}
}

func TestGetMonitorsTool(t *testing.T) {
	_, s := newTestServer(t)

	_, out, err := s.handleGetMonitors(context.Background(), nil, GetMonitorsInput{})
	if err != nil {
		t.Fatalf("get_monitors: %v", err)
	}
	if len(out.Monitors) != 2 {
		t.Fatalf("got %d monitors", len(out.Monitors))
	}
	if !out.Monitors[0].Primary || out.Monitors[1].X != 1920 {
		t.Fatalf("monitors = %+v", out.Monitors)
	}
}

func TestGetStatusTool(t *testing.T) {
	_, s := newTestServer(t)

	_, out, err := s.handleGetStatus(context.Background(), nil, GetStatusInput{})
	if err != nil {
		t.Fatalf("get_status: %v", err)
	}
	if !out.DaemonRunning || out.TrackedWindows != 2 || out.Hotkeys != 24 {
		t.Fatalf("status = %+v", out)
	}
}
