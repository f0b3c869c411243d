// ABOUTME: Shared engine wiring for CLI commands
// ABOUTME: Builds config, storage, clients, and the Curator in one place
package commands

import (
	"fmt"
	"log"

	"github.com/harper/resonate/internal/config"
	"github.com/harper/resonate/internal/core"
	"github.com/harper/resonate/internal/llm"
	"github.com/harper/resonate/internal/social"
	"github.com/harper/resonate/internal/storage"
	"github.com/joho/godotenv"
)

// buildEngine wires up the full ranking stack from environment config.
// Callers own the returned storage and must Close it.
func buildEngine() (*core.Curator, *storage.Storage, *config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := storage.NewStorage()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("initializing storage: %w", err)
	}

	var embedder core.Embedder
	if cfg.OpenAIKey != "" {
		client, err := llm.NewOpenAIClientFromConfig(cfg)
		if err != nil {
			store.Close()
			return nil, nil, nil, fmt.Errorf("initializing OpenAI client: %w", err)
		}
		embedder = client
	} else {
		log.Println("Warning: OPENAI_API_KEY not set - relevance scoring will not work")
	}

	var signals core.SignalSource
	if cfg.SocialAPIBase != "" {
		signals = social.NewClient(cfg.SocialAPIBase, cfg.SocialAPIToken)
	} else if verbose {
		log.Println("No SOCIAL_API_BASE configured; using cached author stats only")
	}

	return core.NewCurator(store, embedder, signals, cfg), store, cfg, nil
}
