// ABOUTME: OpenAI client for embeddings and LLM-based interest extraction
// ABOUTME: Uses text-embedding-3-small for embeddings, gpt-4o-mini for extraction (configurable)
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/harper/resonate/internal/config"
	"github.com/harper/resonate/internal/util"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultChatModel is the default model for chat completions
	DefaultChatModel = "gpt-4o-mini"
	// DefaultEmbeddingModel is the default model for embeddings
	DefaultEmbeddingModel = openai.SmallEmbedding3
	// requestTimeout bounds a single API call
	requestTimeout = 30 * time.Second
)

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey         string
	ChatModel      string
	EmbeddingModel openai.EmbeddingModel
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
	// Dimensions requests a specific embedding width; 0 uses the model default
	Dimensions int
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	chatModel := os.Getenv("RESONATE_OPENAI_MODEL")
	if chatModel == "" {
		chatModel = DefaultChatModel
	}

	return &ClientConfig{
		APIKey:         apiKey,
		ChatModel:      chatModel,
		EmbeddingModel: DefaultEmbeddingModel,
		Timeout:        requestTimeout,
		MaxRetries:     3,
		RetryDelay:     time.Second * 2,
	}
}

// ConfigFromApp maps the application configuration onto a client config so
// env-tuned models, timeouts, and retry policy reach the API client.
func ConfigFromApp(cfg *config.Config) *ClientConfig {
	return &ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
		Dimensions:     cfg.VectorDimension,
	}
}

// OpenAIClient wraps the OpenAI API client with retry logic
type OpenAIClient struct {
	client         *openai.Client
	chatModel      string
	embeddingModel openai.EmbeddingModel
	timeout        time.Duration
	maxRetries     int
	retryDelay     time.Duration
	dimensions     int
}

// NewOpenAIClient creates a new OpenAI client with the given API key using default configuration
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	return NewOpenAIClientWithConfig(DefaultConfig(apiKey))
}

// NewOpenAIClientFromConfig creates a client from the loaded application config
func NewOpenAIClientFromConfig(cfg *config.Config) (*OpenAIClient, error) {
	return NewOpenAIClientWithConfig(ConfigFromApp(cfg))
}

// NewOpenAIClientWithConfig creates a new OpenAI client with custom configuration
func NewOpenAIClientWithConfig(config *ClientConfig) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = requestTimeout
	}

	return &OpenAIClient{
		client:         openai.NewClient(config.APIKey),
		chatModel:      config.ChatModel,
		embeddingModel: config.EmbeddingModel,
		timeout:        timeout,
		maxRetries:     config.MaxRetries,
		retryDelay:     config.RetryDelay,
		dimensions:     config.Dimensions,
	}, nil
}

// GenerateEmbedding generates a 1536-dimensional embedding vector using text-embedding-3-small
func (c *OpenAIClient) GenerateEmbedding(text string) ([]float64, error) {
	var embedding []float64

	err := util.Retry(context.Background(), c.maxRetries, c.retryDelay, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
			Input:      []string{text},
			Model:      c.embeddingModel,
			Dimensions: c.dimensions,
		})
		if err != nil {
			return err
		}
		if len(resp.Data) == 0 {
			return fmt.Errorf("no embeddings returned")
		}

		// Convert []float32 to []float64
		embedding32 := resp.Data[0].Embedding
		embedding = make([]float64, len(embedding32))
		for i, v := range embedding32 {
			embedding[i] = float64(v)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	return embedding, nil
}

// ExtractInterests uses the chat model to distill interest topics from free
// text (a bio, or a sample of the user's own posts). Returns topic strings
// suitable for an InterestProfile.
func (c *OpenAIClient) ExtractInterests(text string) ([]string, error) {
	systemPrompt := `You are an interest extraction assistant. Given text written by a user (posts, a bio, or notes), extract the topics they are genuinely interested in engaging with.

Rules:
- Each topic is a short noun phrase (2-4 words), lowercase
- Skip incidental mentions; keep only recurring or emphasized themes
- Return between 3 and 12 topics

Return ONLY a JSON array of topic strings. No additional text.
Example: ["distributed systems", "mechanical keyboards", "sourdough baking"]`

	userPrompt := fmt.Sprintf("Extract interest topics from this text:\n\n%s", text)

	var topics []string

	err := util.Retry(context.Background(), c.maxRetries, c.retryDelay, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: c.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: userPrompt,
				},
			},
			Temperature: 0.3,
		})
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("no completion choices returned")
		}

		if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &topics); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to extract interests: %w", err)
	}

	return topics, nil
}
