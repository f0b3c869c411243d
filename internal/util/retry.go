// ABOUTME: Retry utilities for API calls with exponential backoff
// ABOUTME: Shared by the OpenAI and social-graph clients for consistent behavior
package util

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

// CalculateBackoff returns exponential backoff with jitter.
// Base delay is doubled each attempt, with random jitter up to 25%.
func CalculateBackoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	// Cap attempt to avoid overflow in bit shift (max 30 for safety)
	if attempt > 30 {
		attempt = 30
	}
	// Exponential: 2^attempt * base
	backoff := baseDelay * time.Duration(1<<uint(attempt))
	// Cap at 30 seconds
	if backoff > 30*time.Second {
		backoff = 30 * time.Second
	}
	// A zero base delay means no wait, and rand.Int64N rejects a zero bound
	if backoff <= 0 {
		return 0
	}
	// Add jitter: -25% to +25% using auto-seeded math/rand/v2
	jitter := time.Duration(rand.Int64N(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}

// Retry runs fn up to maxRetries+1 times with exponential backoff between
// attempts. It stops early when fn succeeds or the context is cancelled.
func Retry(ctx context.Context, maxRetries int, baseDelay time.Duration, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(CalculateBackoff(baseDelay, attempt)):
			case <-ctx.Done():
				return fmt.Errorf("retry cancelled after %d attempts: %w", attempt, ctx.Err())
			}
		}

		if err := fn(); err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}
		return nil
	}

	return fmt.Errorf("failed after %d attempts: %w", maxRetries+1, lastErr)
}
