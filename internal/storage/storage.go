// ABOUTME: Unified storage layer wrapping all SQLite stores
// ABOUTME: Single entry point for posts, stats, interests, and vector persistence
package storage

import (
	"fmt"
	"sync"

	"github.com/harper/resonate/internal/models"
)

// Storage manages all persistent data for the ranking engine
type Storage struct {
	db         *DB
	posts      *PostStore
	authors    *AuthorStore
	embeddings *EmbeddingStore
	profile    *ProfileStore
	mu         sync.RWMutex
}

// NewStorage initializes storage with the default XDG-compliant path
func NewStorage() (*Storage, error) {
	return NewStorageWithPath(DefaultDBPath())
}

// NewStorageWithPath initializes storage with a custom database path
func NewStorageWithPath(dbPath string) (*Storage, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return newStorage(db), nil
}

// NewStorageInMemory creates an in-memory storage (for testing)
func NewStorageInMemory() (*Storage, error) {
	db, err := OpenInMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	return newStorage(db), nil
}

func newStorage(db *DB) *Storage {
	return &Storage{
		db:         db,
		posts:      NewPostStore(db),
		authors:    NewAuthorStore(db),
		embeddings: NewEmbeddingStore(db),
		profile:    NewProfileStore(db),
	}
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Posts

// SavePost persists a candidate post
func (s *Storage) SavePost(post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.posts.Save(post)
}

// GetPost retrieves a post by ID
func (s *Storage) GetPost(id string) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts.Get(id)
}

// ListPosts returns recently fetched posts
func (s *Storage) ListPosts(limit int) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts.List(limit)
}

// Author stats

// SaveAuthorStats caches behavioral counts for an author
func (s *Storage) SaveAuthorStats(stats *models.AuthorStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authors.Save(stats)
}

// GetAuthorStats returns cached stats for an author, nil if unknown
func (s *Storage) GetAuthorStats(authorID string) (*models.AuthorStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authors.Get(authorID)
}

// Embeddings

// SaveEmbedding persists a post's embedding vector
func (s *Storage) SaveEmbedding(postID string, vector []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.embeddings.Save(postID, vector)
}

// GetEmbedding returns a post's cached embedding, nil if absent
func (s *Storage) GetEmbedding(postID string) (*models.Embedding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.embeddings.GetByPostID(postID)
}

// SearchSimilar ranks all stored embeddings against a query vector
func (s *Storage) SearchSimilar(queryVector []float64, maxResults int) ([]models.SimilarityResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.embeddings.SearchSimilar(queryVector, maxResults)
}

// Embeddings exposes the underlying embedding store (for cache sync)
func (s *Storage) Embeddings() *EmbeddingStore {
	return s.embeddings
}

// Interest profile

// GetInterestProfile returns the singleton interest profile, nil if unset
func (s *Storage) GetInterestProfile() (*models.InterestProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Get()
}

// SaveInterestProfile persists the singleton interest profile
func (s *Storage) SaveInterestProfile(profile *models.InterestProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Save(profile)
}
