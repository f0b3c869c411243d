// ABOUTME: Unit tests for OpenAI client construction and configuration
// ABOUTME: Verifies app config plumbing, defaults, and key validation
package llm

import (
	"testing"
	"time"

	"github.com/harper/resonate/internal/config"
	openai "github.com/sashabaranov/go-openai"
)

func TestNewOpenAIClientFromConfig_PlumbsSettings(t *testing.T) {
	cfg := &config.Config{
		OpenAIKey:       "sk-test",
		ChatModel:       "gpt-4o",
		EmbeddingModel:  "text-embedding-3-large",
		Timeout:         45 * time.Second,
		MaxRetries:      5,
		RetryDelay:      500 * time.Millisecond,
		VectorDimension: 256,
	}

	client, err := NewOpenAIClientFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewOpenAIClientFromConfig failed: %v", err)
	}

	if client.chatModel != "gpt-4o" {
		t.Errorf("chatModel = %q, want gpt-4o", client.chatModel)
	}
	if client.embeddingModel != openai.EmbeddingModel("text-embedding-3-large") {
		t.Errorf("embeddingModel = %q, want text-embedding-3-large", client.embeddingModel)
	}
	if client.timeout != 45*time.Second {
		t.Errorf("timeout = %v, want 45s", client.timeout)
	}
	if client.maxRetries != 5 {
		t.Errorf("maxRetries = %d, want 5", client.maxRetries)
	}
	if client.retryDelay != 500*time.Millisecond {
		t.Errorf("retryDelay = %v, want 500ms", client.retryDelay)
	}
	if client.dimensions != 256 {
		t.Errorf("dimensions = %d, want 256", client.dimensions)
	}
}

func TestNewOpenAIClientWithConfig_TimeoutFallback(t *testing.T) {
	client, err := NewOpenAIClientWithConfig(&ClientConfig{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("NewOpenAIClientWithConfig failed: %v", err)
	}
	if client.timeout != requestTimeout {
		t.Errorf("zero timeout should fall back to %v, got %v", requestTimeout, client.timeout)
	}
}

func TestNewOpenAIClient_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIClient(""); err == nil {
		t.Error("expected error for empty API key")
	}
}

func TestDefaultConfig_ModelOverride(t *testing.T) {
	t.Setenv("RESONATE_OPENAI_MODEL", "gpt-4-turbo")

	cfg := DefaultConfig("sk-test")
	if cfg.ChatModel != "gpt-4-turbo" {
		t.Errorf("ChatModel = %q, want env override gpt-4-turbo", cfg.ChatModel)
	}
	if cfg.EmbeddingModel != DefaultEmbeddingModel {
		t.Errorf("EmbeddingModel = %q, want %q", cfg.EmbeddingModel, DefaultEmbeddingModel)
	}
}
