// ABOUTME: Curator orchestrates one full ranking pass over candidate posts
// ABOUTME: Resolves embeddings, relevance, and behavioral signals, then ranks
package core

import (
	"context"
	"fmt"
	"log"

	"github.com/harper/resonate/internal/config"
	"github.com/harper/resonate/internal/engagement"
	"github.com/harper/resonate/internal/models"
	"github.com/harper/resonate/internal/relevance"
	"github.com/harper/resonate/internal/storage"
	"github.com/harper/resonate/internal/vecmath"
)

// interestVectorID is the embedding-cache slot for the interest profile vector
const interestVectorID = "interest_profile"

// Embedder produces an embedding vector for arbitrary text
type Embedder interface {
	GenerateEmbedding(text string) ([]float64, error)
}

// SignalSource supplies behavioral counts for a post author. A nil result
// with nil error means the provider doesn't know the author.
type SignalSource interface {
	AuthorStats(ctx context.Context, authorID string) (*models.AuthorStats, error)
}

// Curator runs ranking passes. All per-pass state is local to the call; the
// Curator itself is safe for concurrent use.
type Curator struct {
	storage  *storage.Storage
	embedder Embedder
	signals  SignalSource
	scorer   *engagement.Scorer
	cfg      *config.Config
}

// NewCurator creates a Curator. The signal source may be nil, in which case
// behavioral signals fall back to cached stats or zeros.
func NewCurator(store *storage.Storage, embedder Embedder, signals SignalSource, cfg *config.Config) *Curator {
	return &Curator{
		storage:  store,
		embedder: embedder,
		signals:  signals,
		scorer:   engagement.NewScorerWithCaps(cfg.Weights, cfg.FrequencyCap, cfg.RecentActivityCap),
		cfg:      cfg,
	}
}

// RankPosts scores and orders candidate posts by engagement likelihood.
// Posts beyond MaxCandidates are dropped up front to bound CPU cost. Posts
// are never dropped for missing signals; absent data scores as zero.
func (c *Curator) RankPosts(ctx context.Context, posts []models.Post) ([]models.RankedPost, error) {
	if len(posts) == 0 {
		return []models.RankedPost{}, nil
	}
	if len(posts) > c.cfg.MaxCandidates {
		posts = posts[:c.cfg.MaxCandidates]
	}

	queryVector, err := c.interestVector()
	if err != nil {
		return nil, err
	}

	signals := make([]engagement.Signals, len(posts))
	for i, post := range posts {
		sig := engagement.Signals{}

		if queryVector != nil && post.Text != "" {
			vector, err := c.postVector(post)
			if err != nil {
				return nil, fmt.Errorf("embedding post %s: %w", post.ID, err)
			}
			similarity, err := vecmath.CosineSimilarity(queryVector, vector)
			if err != nil {
				return nil, fmt.Errorf("scoring post %s: %w", post.ID, err)
			}
			// Below the noise floor a post keeps its slot but scores no
			// relevance; posts are never dropped outright
			if similarity >= c.cfg.SimilarityThreshold {
				sig.Relevance = relevance.TopicalSimilarity(similarity)
			}
		}

		if stats := c.statsFor(ctx, post.AuthorID); stats != nil {
			sig.PostsPerDay = stats.PostsPerDay
			sig.FollowerRatio = stats.FollowerRatio()
			sig.RecentPosts = stats.RecentPosts
		}

		signals[i] = sig
	}

	ranked, err := c.scorer.Rank(posts, signals)
	if err != nil {
		return nil, err
	}

	if c.cfg.RankLimit > 0 && len(ranked) > c.cfg.RankLimit {
		ranked = ranked[:c.cfg.RankLimit]
	}
	return ranked, nil
}

// ScorePost computes the relevance score and interpretation label for a
// single piece of post text against the interest profile.
func (c *Curator) ScorePost(text string) (int, string, error) {
	queryVector, err := c.interestVector()
	if err != nil {
		return 0, "", err
	}
	if queryVector == nil {
		return 0, relevance.Interpret(0), nil
	}

	vector, err := c.embedder.GenerateEmbedding(text)
	if err != nil {
		return 0, "", fmt.Errorf("embedding text: %w", err)
	}

	score, err := relevance.TopicalSimilarityVectors(queryVector, vector)
	if err != nil {
		return 0, "", err
	}
	return score, relevance.Interpret(score), nil
}

// interestVector returns the embedding of the interest profile, or nil when
// no profile is configured. The vector is cached in storage and invalidated
// whenever the profile changes after the cached copy was written.
func (c *Curator) interestVector() ([]float64, error) {
	if c.embedder == nil {
		return nil, nil
	}
	profile, err := c.storage.GetInterestProfile()
	if err != nil {
		return nil, fmt.Errorf("loading interest profile: %w", err)
	}
	if profile == nil || len(profile.Interests) == 0 {
		return nil, nil
	}

	cached, err := c.storage.GetEmbedding(interestVectorID)
	if err == nil && cached != nil && cached.CreatedAt.After(profile.LastUpdated) {
		return cached.Vector, nil
	}

	vector, err := c.embedder.GenerateEmbedding(profile.InterestText())
	if err != nil {
		return nil, fmt.Errorf("embedding interests: %w", err)
	}

	if err := c.storage.Embeddings().SaveWithDimension(interestVectorID, vector, len(vector)); err != nil {
		log.Printf("Warning: failed to cache interest vector: %v", err)
	}
	return vector, nil
}

// postVector returns the post's embedding, generating and caching on miss
func (c *Curator) postVector(post models.Post) ([]float64, error) {
	cached, err := c.storage.GetEmbedding(post.ID)
	if err == nil && cached != nil {
		return cached.Vector, nil
	}

	vector, err := c.embedder.GenerateEmbedding(post.Text)
	if err != nil {
		return nil, err
	}

	if err := c.storage.Embeddings().SaveWithDimension(post.ID, vector, len(vector)); err != nil {
		log.Printf("Warning: failed to cache embedding for %s: %v", post.ID, err)
	}
	return vector, nil
}

// statsFor resolves behavioral stats: local cache first, then the signal
// source. Unknown authors yield nil and the caller defaults signals to zero.
func (c *Curator) statsFor(ctx context.Context, authorID string) *models.AuthorStats {
	if authorID == "" {
		return nil
	}

	cached, err := c.storage.GetAuthorStats(authorID)
	if err == nil && cached != nil {
		return cached
	}

	if c.signals == nil {
		return nil
	}

	stats, err := c.signals.AuthorStats(ctx, authorID)
	if err != nil {
		log.Printf("Warning: stats fetch failed for %s: %v", authorID, err)
		return nil
	}
	if stats == nil {
		return nil
	}

	if err := c.storage.SaveAuthorStats(stats); err != nil {
		log.Printf("Warning: failed to cache stats for %s: %v", authorID, err)
	}
	return stats
}
