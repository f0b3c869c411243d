// ABOUTME: Cloud-synced embedding cache backed by Charm KV
// ABOUTME: Mirrors post embeddings and the interest profile across devices
package storage

import (
	"fmt"
	"time"

	"github.com/harper/resonate/internal/charm"
	"github.com/harper/resonate/internal/models"
	"github.com/harper/resonate/internal/relevance"
)

// VectorCache mirrors embeddings into Charm KV so that a profile built on
// one device can rank posts on another without re-embedding everything.
type VectorCache struct {
	charm *charm.Client
}

// NewVectorCache creates a cache over the given charm client
func NewVectorCache(charmClient *charm.Client) *VectorCache {
	return &VectorCache{charm: charmClient}
}

// SaveEmbedding stores an embedding in the cloud cache
func (vc *VectorCache) SaveEmbedding(postID string, vector []float64) error {
	embedding := models.Embedding{
		PostID:    postID,
		Vector:    vector,
		CreatedAt: time.Now(),
	}
	return vc.charm.SetJSON(charm.EmbeddingKey(postID), embedding)
}

// GetEmbedding retrieves a cached embedding, nil if absent
func (vc *VectorCache) GetEmbedding(postID string) (*models.Embedding, error) {
	var emb models.Embedding
	if err := vc.charm.GetJSON(charm.EmbeddingKey(postID), &emb); err != nil {
		return nil, nil
	}
	return &emb, nil
}

// SearchSimilar ranks all cloud-cached embeddings against a query vector
func (vc *VectorCache) SearchSimilar(queryVector []float64, maxResults int) ([]models.SimilarityResult, error) {
	keys, err := vc.charm.ListKeys(charm.EmbeddingPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list embedding keys: %w", err)
	}

	var candidates []models.CandidateVector
	for _, key := range keys {
		var emb models.Embedding
		if err := vc.charm.GetJSON(key, &emb); err != nil {
			continue
		}
		candidates = append(candidates, models.CandidateVector{
			ID:     emb.PostID,
			Vector: emb.Vector,
		})
	}

	return relevance.FindMostSimilar(queryVector, candidates, maxResults, relevance.DefaultThreshold)
}

// SaveProfile mirrors the interest profile to the cloud
func (vc *VectorCache) SaveProfile(profile *models.InterestProfile) error {
	return vc.charm.SetJSON(charm.InterestKey(), profile)
}

// GetProfile retrieves the cloud copy of the interest profile, nil if absent
func (vc *VectorCache) GetProfile() (*models.InterestProfile, error) {
	var profile models.InterestProfile
	if err := vc.charm.GetJSON(charm.InterestKey(), &profile); err != nil {
		return nil, nil
	}
	return &profile, nil
}

// Push mirrors every locally stored embedding into the cloud cache
func (vc *VectorCache) Push(store *EmbeddingStore) (int, error) {
	candidates, err := store.All()
	if err != nil {
		return 0, fmt.Errorf("loading local embeddings: %w", err)
	}

	pushed := 0
	for _, c := range candidates {
		if err := vc.SaveEmbedding(c.ID, c.Vector); err != nil {
			return pushed, fmt.Errorf("pushing embedding %s: %w", c.ID, err)
		}
		pushed++
	}
	return pushed, nil
}
