// ABOUTME: Charm KV client wrapper for cloud-synced storage
// ABOUTME: Mirrors the interest profile and embedding cache across devices
package charm

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
)

// Key prefixes for different entity types
const (
	InterestPrefix  = "interests:"
	EmbeddingPrefix = "embedding:"
	StatsPrefix     = "stats:"
)

// Config holds charm client configuration
type Config struct {
	Host     string
	DBName   string
	AutoSync bool
}

// Client wraps charm KV for storage operations
type Client struct {
	kv     *kv.KV
	config *Config
	mu     sync.Mutex
}

// NewClient creates a new charm client with the given config
func NewClient(cfg *Config) (*Client, error) {
	// Set CHARM_HOST before opening KV
	os.Setenv("CHARM_HOST", cfg.Host)

	db, err := kv.OpenWithDefaults(cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to open charm kv: %w", err)
	}

	c := &Client{
		kv:     db,
		config: cfg,
	}

	// Pull remote data on startup
	if cfg.AutoSync {
		_ = db.Sync()
	}

	return c, nil
}

// Close closes the KV database
func (c *Client) Close() error {
	if c.kv != nil {
		err := c.kv.Close()
		c.kv = nil
		return err
	}
	return nil
}

// syncIfEnabled syncs to cloud after writes
func (c *Client) syncIfEnabled() {
	if c.config.AutoSync {
		_ = c.kv.Sync()
	}
}

// ID returns the charm user ID
func (c *Client) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("failed to create charm client: %w", err)
	}
	return cc.ID()
}

// Set stores a value with the given key
func (c *Client) Set(key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.kv.Set([]byte(key), value); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	c.syncIfEnabled()
	return nil
}

// Get retrieves a value by key
func (c *Client) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.kv.Get([]byte(key))
}

// Delete removes a key
func (c *Client) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.kv.Delete([]byte(key)); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	c.syncIfEnabled()
	return nil
}

// SetJSON marshals and stores a value as JSON
func (c *Client) SetJSON(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return c.Set(key, data)
}

// GetJSON retrieves and unmarshals a JSON value
func (c *Client) GetJSON(key string, dest interface{}) error {
	data, err := c.Get(key)
	if err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("key not found: %s", key)
	}
	return json.Unmarshal(data, dest)
}

// ListKeys returns all keys with the given prefix
func (c *Client) ListKeys(prefix string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys, err := c.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	var result []string
	for _, key := range keys {
		keyStr := string(key)
		if strings.HasPrefix(keyStr, prefix) {
			result = append(result, keyStr)
		}
	}
	return result, nil
}

// Sync manually triggers a sync with the cloud
func (c *Client) Sync() error {
	return c.kv.Sync()
}

// Reset wipes all local data (nuclear option)
func (c *Client) Reset() error {
	return c.kv.Reset()
}

// GetAuthorizedKeys returns the list of linked devices/keys
func (c *Client) GetAuthorizedKeys() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("failed to create charm client: %w", err)
	}
	return cc.AuthorizedKeys()
}

// EmbeddingKey generates a key for a post embedding
func EmbeddingKey(postID string) string {
	return EmbeddingPrefix + postID
}

// StatsKey generates a key for cached author stats
func StatsKey(authorID string) string {
	return StatsPrefix + authorID
}

// InterestKey is the singleton key for the interest profile
func InterestKey() string {
	return InterestPrefix + "profile"
}
