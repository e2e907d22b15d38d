// Package mcp exposes read-only back-office lookups as Model Context
// Protocol tools, so AI agents can answer questions about the marketplace
// without admin credentials ever leaving the operator's machine.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/carelinkhq/carectl/internal/api"
)

// MCPServer wraps the mcp-go server with CareLink tool registrations. Every
// tool is read-only; mutations (KYC decisions, account creation, email) are
// deliberately not exposed to agents.
type MCPServer struct {
	client *api.Client
	logger *slog.Logger
	server *server.MCPServer
}

// NewMCPServer creates an MCPServer pre-loaded with all CareLink tools.
func NewMCPServer(client *api.Client, logger *slog.Logger) *MCPServer {
	s := &MCPServer{
		client: client,
		logger: logger,
	}

	mcpServer := server.NewMCPServer(
		"CareLink Back Office",
		"0.1.0",
		server.WithToolCapabilities(true),
	)
	s.registerTools(mcpServer)

	s.server = mcpServer
	return s
}

// Server returns the underlying mcp-go server, useful for testing.
func (s *MCPServer) Server() *server.MCPServer {
	return s.server
}

// ServeStdio runs the MCP server over stdin/stdout, the integration path for
// MCP clients that launch the server as a subprocess.
func (s *MCPServer) ServeStdio() error {
	s.logger.Info("starting MCP server in stdio mode")
	return server.ServeStdio(s.server)
}

// ServeHTTP runs the MCP server in Streamable HTTP mode on the given address.
func (s *MCPServer) ServeHTTP(addr string) error {
	httpServer := server.NewStreamableHTTPServer(s.server)
	s.logger.Info("MCP HTTP server starting", "addr", addr)
	return httpServer.Start(addr)
}

func readOnlyAnnotation() mcp.ToolAnnotation {
	return mcp.ToolAnnotation{
		ReadOnlyHint: boolPtr(true),
	}
}

func boolPtr(b bool) *bool {
	return &b
}
