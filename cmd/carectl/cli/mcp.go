package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/carelinkhq/carectl/internal/mcp"
	"github.com/carelinkhq/carectl/internal/session"
)

func newMCPCmd() *cobra.Command {
	var (
		transport string
		port      int
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP server for AI agents",
		Long: `Start a Model Context Protocol (MCP) server that exposes read-only
back-office lookups as tools for AI agents like Claude. Supports stdio
(default) and HTTP transports.

In stdio mode, the MCP server communicates over stdin/stdout using JSON-RPC,
suitable for direct integration with Claude Desktop or other MCP clients.

All tools are read-only; KYC decisions, account creation, and email stay in
the CLI.`,
		Example: `  carectl mcp                              # stdio mode (for Claude Desktop)
  carectl mcp --transport http --port 3001 # Streamable HTTP mode`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMCP(transport, port)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport mode: stdio or http")
	cmd.Flags().IntVar(&port, "port", 3001, "HTTP port (only used with --transport http)")

	return cmd
}

func runMCP(transport string, port int) error {
	// stdout is the JSON-RPC channel in stdio mode; logs must go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	store, err := openSessionStore()
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	if _, err := store.Get(context.Background()); err == session.ErrNoSession {
		logger.Warn("no stored session - tool calls will fail until you run: carectl login")
	}

	client := newAPIClient(store)
	mcpSrv := mcp.NewMCPServer(client, logger)

	switch transport {
	case "stdio":
		return mcpSrv.ServeStdio()
	case "http":
		addr := fmt.Sprintf("127.0.0.1:%d", port)
		return mcpSrv.ServeHTTP(addr)
	default:
		return fmt.Errorf("unsupported transport %q; use 'stdio' or 'http'", transport)
	}
}
