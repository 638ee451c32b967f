// Package mcp exposes the snaptile daemon to MCP clients over stdio. Every
// tool is a thin shim over the daemon's unix-socket protocol, so the server
// carries no window-management state of its own.
package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/snaptile/internal/ipc"
)

const (
	ServerName    = "snaptile"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for snaptile window placement.
type Server struct {
	mcpServer *mcpsdk.Server
	client    *ipc.Client
}

// NewServer creates an MCP server backed by the running snaptile daemon.
// The daemon must be reachable over its socket.
func NewServer() (*Server, error) {
	client := ipc.NewClient()
	if err := client.Ping(); err != nil {
		return nil, fmt.Errorf("snaptile daemon is not running: %w", err)
	}

	s := &Server{client: client}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	s.registerTools()
	return s, nil
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "snap_window",
		Description: "Snap a window into a layout position: halves, corners, thirds, fourths, sixths, ninths, eighths, maximize variants, incremental resizes, display moves, restore, tile-all, cascade-all. Acts on the focused window unless a window ID is given. Repeating a position action cycles the window through its size sequence.",
	}, s.handleSnapWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_actions",
		Description: "List every action name snap_window accepts.",
	}, s.handleListActions)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "undo_snap",
		Description: "Revert the focused window to the rectangle it occupied before its last snap.",
	}, s.handleUndoSnap)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_monitors",
		Description: "List connected monitors with their pixel geometry and which one is primary.",
	}, s.handleGetMonitors)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_status",
		Description: "Report daemon status: uptime, bound hotkeys, and how many windows have snap history.",
	}, s.handleGetStatus)
}
