// ABOUTME: Centralized configuration for the resonate ranking engine
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/harper/resonate/internal/engagement"
)

// Config holds all configuration for the ranking engine and its collaborators
type Config struct {
	// Scoring settings
	Weights             engagement.Weights
	FrequencyCap        float64
	RecentActivityCap   float64
	SimilarityThreshold float64
	RankLimit           int
	MaxCandidates       int

	// OpenAI settings
	OpenAIKey       string
	ChatModel       string
	EmbeddingModel  string
	Timeout         time.Duration
	MaxRetries      int
	RetryDelay      time.Duration
	VectorDimension int

	// Social graph API settings
	SocialAPIBase  string
	SocialAPIToken string

	// Charm settings
	CharmHost   string
	CharmDBName string
	AutoSync    bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		Weights: engagement.Weights{
			Frequency:      getEnvFloat("RESONATE_WEIGHT_FREQUENCY", 0.2),
			FollowerRatio:  getEnvFloat("RESONATE_WEIGHT_FOLLOWER_RATIO", 0.2),
			RecentActivity: getEnvFloat("RESONATE_WEIGHT_RECENT_ACTIVITY", 0.2),
			Relevance:      getEnvFloat("RESONATE_WEIGHT_RELEVANCE", 0.4),
		},
		FrequencyCap:        getEnvFloat("RESONATE_FREQUENCY_CAP", engagement.DefaultFrequencyCap),
		RecentActivityCap:   getEnvFloat("RESONATE_RECENT_CAP", engagement.DefaultRecentActivityCap),
		SimilarityThreshold: getEnvFloat("RESONATE_SIMILARITY_THRESHOLD", 0.0),
		RankLimit:           getEnvInt("RESONATE_RANK_LIMIT", 10),
		MaxCandidates:       getEnvInt("RESONATE_MAX_CANDIDATES", 200),
		OpenAIKey:           os.Getenv("OPENAI_API_KEY"),
		ChatModel:           getEnv("RESONATE_OPENAI_MODEL", "gpt-4o-mini"),
		EmbeddingModel:      getEnv("RESONATE_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:             getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:          getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:          getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		VectorDimension:     getEnvInt("VECTOR_DIMENSION", 1536),
		SocialAPIBase:       os.Getenv("SOCIAL_API_BASE"),
		SocialAPIToken:      os.Getenv("SOCIAL_API_TOKEN"),
		CharmHost:           getEnv("CHARM_HOST", "cloud.charm.sh"),
		CharmDBName:         getEnv("CHARM_DB", "resonate"),
		AutoSync:            getEnvBool("CHARM_AUTO_SYNC", true),
	}

	return cfg, cfg.Validate()
}

// Validate checks all configuration invariants. Weight violations fail fast
// here rather than silently distorting the score scale at request time.
func (c *Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.SimilarityThreshold < -1 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("RESONATE_SIMILARITY_THRESHOLD must be -1..1, got %f", c.SimilarityThreshold)
	}
	if c.FrequencyCap <= 0 {
		return fmt.Errorf("RESONATE_FREQUENCY_CAP must be positive, got %f", c.FrequencyCap)
	}
	if c.RecentActivityCap <= 0 {
		return fmt.Errorf("RESONATE_RECENT_CAP must be positive, got %f", c.RecentActivityCap)
	}
	if c.MaxCandidates <= 0 {
		return fmt.Errorf("RESONATE_MAX_CANDIDATES must be positive, got %d", c.MaxCandidates)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
