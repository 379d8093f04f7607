package bridge

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"toolctl/internal/catalog"
	"toolctl/internal/config"
	"toolctl/pkg/logging"
)

// Server exposes the workspace catalog to local MCP clients over SSE. Every
// tool it serves is read-only; mutations stay in the CLI and TUI.
type Server struct {
	config  config.BridgeConfig
	catalog *catalog.Service

	server    *server.MCPServer
	sseServer *server.SSEServer

	mu sync.Mutex
}

// NewServer creates a bridge server around the given catalog service.
func NewServer(cfg config.BridgeConfig, svc *catalog.Service) *Server {
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == 0 {
		cfg.Port = 8092
	}
	if cfg.ToolPrefix == "" {
		cfg.ToolPrefix = "workspace"
	}

	return &Server{
		config:  cfg,
		catalog: svc,
	}
}

// Start registers the catalog tools and begins serving SSE. It returns once
// the listener is launched; serving continues in the background until Stop.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return fmt.Errorf("bridge server already started")
	}

	mcpServer := server.NewMCPServer(
		"toolctl-bridge",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	mcpServer.AddTools(s.catalogTools()...)

	s.server = mcpServer

	s.sseServer = server.NewSSEServer(
		s.server,
		server.WithBaseURL(s.config.BaseURL()),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	logging.Info("Bridge", "Starting MCP bridge on %s", addr)

	// Capture sseServer so Stop can nil the field without racing the goroutine.
	sseServer := s.sseServer
	go func() {
		if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
			logging.Error("Bridge", err, "SSE server error")
		}
	}()

	return nil
}

// Stop shuts down the SSE listener and releases the server.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.server == nil {
		s.mu.Unlock()
		return fmt.Errorf("bridge server not started")
	}
	sseServer := s.sseServer
	s.mu.Unlock()

	logging.Info("Bridge", "Stopping MCP bridge")

	if sseServer != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Bridge", err, "Error shutting down SSE server")
		}
	}

	s.mu.Lock()
	s.server = nil
	s.sseServer = nil
	s.mu.Unlock()

	return nil
}

// Endpoint returns the SSE endpoint URL clients connect to.
func (s *Server) Endpoint() string {
	return fmt.Sprintf("%s/sse", s.config.BaseURL())
}
