// ABOUTME: Main entry point for the Resonate MCP server with stdio transport
// ABOUTME: Initializes storage, curator, and MCP server with all tools
package main

import (
	"log"

	"github.com/harper/resonate/internal/config"
	"github.com/harper/resonate/internal/core"
	"github.com/harper/resonate/internal/llm"
	"github.com/harper/resonate/internal/mcp"
	"github.com/harper/resonate/internal/social"
	"github.com/harper/resonate/internal/storage"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize storage with XDG-compliant paths
	store, err := storage.NewStorage()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	var embedder core.Embedder
	var openaiClient *llm.OpenAIClient
	if cfg.OpenAIKey != "" {
		openaiClient, err = llm.NewOpenAIClientFromConfig(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize OpenAI client: %v", err)
		}
		embedder = openaiClient
	} else {
		log.Println("Warning: OPENAI_API_KEY not set - relevance scoring will not work")
	}

	var signals core.SignalSource
	if cfg.SocialAPIBase != "" {
		signals = social.NewClient(cfg.SocialAPIBase, cfg.SocialAPIToken)
	}

	curator := core.NewCurator(store, embedder, signals, cfg)

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"Resonate Engagement Ranker",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, store, curator, openaiClient)

	// Start server with stdio transport
	log.Println("Resonate MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
