package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/1broseidon/snaptile/internal/action"
	"github.com/1broseidon/snaptile/internal/runtimepath"
)

// Handler is the daemon surface the IPC server drives. Implemented by
// internal/daemon; split out so this package stays transport-only.
type Handler interface {
	// ExecAction resolves and applies an action. Window 0 targets the
	// focused window. Returns the window acted on and its new frame.
	ExecAction(a action.Action, window uint32) (ExecActionData, error)
	// Undo reverts the focused window to its pre-snap rectangle.
	Undo() (ExecActionData, error)
	// Reload re-reads the configuration and rebinds hotkeys.
	Reload() error
	// Status reports daemon state.
	Status() StatusData
	// Monitors reports the connected displays.
	Monitors() ([]MonitorInfo, error)
}

// Server handles IPC requests from clients
type Server struct {
	socketPath   string
	listener     net.Listener
	handler      Handler
	startTime    time.Time
	shuttingDown bool
	shutdownMu   sync.Mutex
}

// NewServer creates a new IPC server
func NewServer(handler Handler) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve IPC socket path: %w", err)
	}

	// Remove existing socket if present
	os.Remove(socketPath)

	return &Server{
		socketPath: socketPath,
		handler:    handler,
		startTime:  time.Now(),
	}, nil
}

// Start begins listening for IPC connections
func (s *Server) Start() error {
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create IPC socket: %w", err)
	}
	s.listener = listener

	// Set socket permissions
	if err := os.Chmod(s.socketPath, 0600); err != nil {
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	slog.Info("IPC server listening", "socket", s.socketPath)

	// Accept connections
	go s.acceptLoop()

	return nil
}

// acceptLoop accepts incoming connections
func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.shutdownMu.Lock()
			if s.shuttingDown {
				s.shutdownMu.Unlock()
				return
			}
			s.shutdownMu.Unlock()
			slog.Warn("IPC accept error", "error", err)
			continue
		}

		go s.handleConnection(conn)
	}
}

// handleConnection handles a single IPC connection
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)

	// Read the request (expect JSON on a single line)
	data, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		slog.Warn("IPC read error", "error", err)
		return
	}

	req, err := ParseRequest(data)
	if err != nil {
		s.sendError(conn, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	resp := s.handleCommand(req)

	respData, err := resp.Marshal()
	if err != nil {
		slog.Error("failed to marshal IPC response", "error", err)
		return
	}

	respData = append(respData, '\n')
	if _, err := conn.Write(respData); err != nil {
		slog.Warn("failed to send IPC response", "error", err)
	}
}

// handleCommand processes an IPC command and returns a response
func (s *Server) handleCommand(req *Request) *Response {
	switch req.Command {
	case CommandExecAction:
		return s.handleExecAction(req.Payload)
	case CommandListActions:
		return s.handleListActions()
	case CommandGetStatus:
		return s.handleGetStatus()
	case CommandGetMonitors:
		return s.handleGetMonitors()
	case CommandUndo:
		return s.handleUndo()
	case CommandReload:
		return s.handleReload()
	default:
		return NewErrorResponse(fmt.Sprintf("Unknown command: %s", req.Command))
	}
}

func (s *Server) handleExecAction(payload json.RawMessage) *Response {
	var p ExecActionPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid exec payload: %v", err))
	}
	a, err := action.Parse(p.Action)
	if err != nil {
		return NewErrorResponse(err.Error())
	}

	data, err := s.handler.ExecAction(a, p.Window)
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to execute %s: %v", a, err))
	}
	resp, _ := NewOKResponse(data)
	return resp
}

func (s *Server) handleListActions() *Response {
	resp, _ := NewOKResponse(ActionsData{Actions: action.Names()})
	return resp
}

func (s *Server) handleGetStatus() *Response {
	status := s.handler.Status()
	status.UptimeSeconds = int64(time.Since(s.startTime).Seconds())
	status.DaemonRunning = true

	resp, _ := NewOKResponse(status)
	return resp
}

func (s *Server) handleGetMonitors() *Response {
	monitors, err := s.handler.Monitors()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to get monitors: %v", err))
	}
	resp, _ := NewOKResponse(MonitorsData{Monitors: monitors})
	return resp
}

func (s *Server) handleUndo() *Response {
	data, err := s.handler.Undo()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to undo: %v", err))
	}
	resp, _ := NewOKResponse(data)
	return resp
}

func (s *Server) handleReload() *Response {
	slog.Info("IPC: received RELOAD command")
	if err := s.handler.Reload(); err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to reload config: %v", err))
	}
	resp, _ := NewOKResponse(nil)
	return resp
}

// sendError sends an error response
func (s *Server) sendError(conn net.Conn, errMsg string) {
	resp := NewErrorResponse(errMsg)
	data, _ := resp.Marshal()
	data = append(data, '\n')
	conn.Write(data)
}

// Stop gracefully shuts down the IPC server
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	s.shuttingDown = true
	s.shutdownMu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
}
