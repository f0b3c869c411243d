// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to rank and score posts via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harper/resonate/internal/llm"
	"github.com/harper/resonate/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs Resonate as an MCP (Model Context Protocol) server, exposing the
ranking, scoring, and interest tools over stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  resonate mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "resonate": {
  #       "command": "resonate",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	curator, store, cfg, err := buildEngine()
	if err != nil {
		return err
	}

	var openaiClient *llm.OpenAIClient
	if cfg.OpenAIKey != "" {
		client, err := llm.NewOpenAIClientFromConfig(cfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize OpenAI client: %v", err)
		} else {
			openaiClient = client
		}
	}

	server := mcpserver.NewMCPServer(
		"Resonate Engagement Ranker",
		"0.1.0",
	)

	mcp.RegisterTools(server, store, curator, openaiClient)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("Resonate MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, gracefully shutting down...")
		}

		if err := store.Close(); err != nil {
			log.Printf("Warning: Error closing storage: %v", err)
		}

		if !quiet {
			log.Println("Shutdown complete")
		}

	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
