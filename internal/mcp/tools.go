package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) handleSnapWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args SnapWindowInput) (*mcpsdk.CallToolResult, SnapWindowOutput, error) {
	if args.Action == "" {
		return nil, SnapWindowOutput{}, fmt.Errorf("action is required")
	}
	data, err := s.client.ExecAction(args.Action, args.Window)
	if err != nil {
		return nil, SnapWindowOutput{}, err
	}
	return nil, SnapWindowOutput{
		Window: data.Window,
		X:      data.X,
		Y:      data.Y,
		Width:  data.Width,
		Height: data.Height,
	}, nil
}

func (s *Server) handleListActions(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListActionsInput) (*mcpsdk.CallToolResult, ListActionsOutput, error) {
	actions, err := s.client.ListActions()
	if err != nil {
		return nil, ListActionsOutput{}, err
	}
	return nil, ListActionsOutput{Actions: actions}, nil
}

func (s *Server) handleUndoSnap(_ context.Context, _ *mcpsdk.CallToolRequest, _ UndoSnapInput) (*mcpsdk.CallToolResult, SnapWindowOutput, error) {
	data, err := s.client.Undo()
	if err != nil {
		return nil, SnapWindowOutput{}, err
	}
	return nil, SnapWindowOutput{
		Window: data.Window,
		X:      data.X,
		Y:      data.Y,
		Width:  data.Width,
		Height: data.Height,
	}, nil
}

func (s *Server) handleGetMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetMonitorsInput) (*mcpsdk.CallToolResult, GetMonitorsOutput, error) {
	data, err := s.client.GetMonitors()
	if err != nil {
		return nil, GetMonitorsOutput{}, err
	}
	out := GetMonitorsOutput{Monitors: make([]MonitorInfo, len(data.Monitors))}
	for i, m := range data.Monitors {
		out.Monitors[i] = MonitorInfo{
			ID:      m.ID,
			Name:    m.Name,
			X:       m.X,
			Y:       m.Y,
			Width:   m.Width,
			Height:  m.Height,
			Primary: m.Primary,
		}
	}
	return nil, out, nil
}

func (s *Server) handleGetStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetStatusInput) (*mcpsdk.CallToolResult, GetStatusOutput, error) {
	data, err := s.client.GetStatus()
	if err != nil {
		return nil, GetStatusOutput{}, err
	}
	return nil, GetStatusOutput{
		DaemonRunning:  data.DaemonRunning,
		TrackedWindows: data.TrackedWindows,
		Hotkeys:        data.Hotkeys,
		UptimeSeconds:  data.UptimeSeconds,
	}, nil
}
