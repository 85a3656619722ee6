package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/seedlinghq/seedling/internal/toolserver"
)

var mcpFlags struct {
	port int
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve greet and add as MCP tools over HTTP",
	Long: `Start a Model Context Protocol server exposing the greet and add
functions as tools over streamable HTTP.

The server is stateless and listens on 127.0.0.1 only. With --port 0
(the default) a free port is chosen and printed on startup. Point an
MCP-compatible client at the printed URL, e.g.:

  {
    "mcpServers": {
      "seedling": {
        "type": "http",
        "url": "http://localhost:<port>/mcp"
      }
    }
  }`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().IntVarP(&mcpFlags.port, "port", "p", 0, "Port to listen on (0 = pick a free port)")
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srv := toolserver.New(version, cfg.Precision, mcpFlags.port)
	if _, err := srv.Start(cmd.Context()); err != nil {
		return fmt.Errorf("failed to start tool server: %w", err)
	}

	// Ensure cleanup always runs using defer
	defer func() {
		if err := srv.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		}
	}()

	fmt.Printf("MCP tool server listening on %s\n", srv.URL())
	fmt.Println("Press Ctrl+C to stop.")

	// Block until interrupted
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\nShutting down gracefully...")
	return nil
}
