// Package toolserver exposes the seedling functions as MCP tools over
// streamable HTTP, so MCP-capable editors and agents can call them
// while exploring the template. The server is stateless and holds no
// data between requests.
package toolserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/seedlinghq/seedling/internal/logger"
)

// Server manages an embedded MCP HTTP server exposing the greet and
// add tools. It is not started until Start() is called.
type Server struct {
	version   string
	precision int // decimal places for add results
	reqPort   int // requested port, 0 picks a free one

	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
	stdServer  *http.Server
	port       int
	mu         sync.Mutex
}

// New creates a new tool server. precision controls how add results
// are formatted, matching the `add` subcommand. port 0 lets the OS
// pick a free port.
func New(version string, precision, port int) *Server {
	return &Server{
		version:   version,
		precision: precision,
		reqPort:   port,
	}
}

// Start starts the MCP HTTP server and returns the bound port.
// The server accepts connections as soon as Start returns.
func (s *Server) Start(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer != nil {
		return 0, fmt.Errorf("server already started")
	}

	s.mcpServer = server.NewMCPServer(
		"seedling",
		s.version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()

	// Pre-open the listener so the bound port is known and there is no
	// window between choosing a port and serving on it.
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", s.reqPort))
	if err != nil {
		return 0, fmt.Errorf("failed to listen: %w", err)
	}
	s.port = listener.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mcpHandler := server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithStateLess(true),
	)
	mux.Handle("/mcp", mcpHandler)

	s.stdServer = &http.Server{
		Handler: mux,
	}
	s.httpServer = mcpHandler

	logger.Debug("starting tool server on port %d", s.port)

	// Capture the reference so Stop() cannot race the goroutine.
	stdServer := s.stdServer
	go func() {
		if err := stdServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("tool server error: %v", err)
		}
	}()

	return s.port, nil
}

// Stop shuts the server down and releases its resources.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer == nil {
		return nil // already stopped
	}

	logger.Debug("stopping tool server")
	if err := s.stdServer.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	s.httpServer = nil
	s.stdServer = nil
	s.mcpServer = nil
	return nil
}

// URL returns the HTTP URL for the MCP endpoint.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("http://localhost:%d/mcp", s.port)
}
