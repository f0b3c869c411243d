// ABOUTME: Embedding storage operations for SQLite
// ABOUTME: Stores vectors as BLOBs; similarity search goes through the relevance ranker
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harper/resonate/internal/models"
	"github.com/harper/resonate/internal/relevance"
)

// ExpectedDimension is the expected vector dimension for OpenAI embeddings
const ExpectedDimension = 1536

// EmbeddingStore handles embedding persistence
type EmbeddingStore struct {
	db *DB
}

// NewEmbeddingStore creates a new EmbeddingStore
func NewEmbeddingStore(db *DB) *EmbeddingStore {
	return &EmbeddingStore{db: db}
}

// Save saves an embedding vector (validates 1536 dimension)
func (s *EmbeddingStore) Save(postID string, vector []float64) error {
	return s.SaveWithDimension(postID, vector, ExpectedDimension)
}

// SaveWithDimension saves an embedding vector with custom dimension (for testing)
func (s *EmbeddingStore) SaveWithDimension(postID string, vector []float64, expectedDim int) error {
	if len(vector) != expectedDim {
		return fmt.Errorf("invalid embedding dimension: expected %d, got %d", expectedDim, len(vector))
	}

	blob := vectorToBlob(vector)
	embID := fmt.Sprintf("emb_%s", postID)

	_, err := s.db.Exec(`
		INSERT INTO embeddings (id, post_id, vector, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			vector = excluded.vector,
			created_at = excluded.created_at
	`, embID, postID, blob, time.Now())

	return err
}

// GetByPostID retrieves an embedding by post ID, returning nil if not found
func (s *EmbeddingStore) GetByPostID(postID string) (*models.Embedding, error) {
	var (
		emb  models.Embedding
		blob []byte
	)

	err := s.db.QueryRow(`
		SELECT post_id, vector, created_at
		FROM embeddings
		WHERE post_id = ?
	`, postID).Scan(&emb.PostID, &blob, &emb.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	emb.Vector = blobToVector(blob)
	return &emb, nil
}

// All returns every stored embedding as a ranking candidate
func (s *EmbeddingStore) All() ([]models.CandidateVector, error) {
	rows, err := s.db.Query(`SELECT post_id, vector FROM embeddings`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var candidates []models.CandidateVector
	for rows.Next() {
		var (
			postID string
			blob   []byte
		)
		if err := rows.Scan(&postID, &blob); err != nil {
			return nil, err
		}
		candidates = append(candidates, models.CandidateVector{
			ID:     postID,
			Vector: blobToVector(blob),
		})
	}

	return candidates, rows.Err()
}

// SearchSimilar ranks stored embeddings against the query vector
func (s *EmbeddingStore) SearchSimilar(queryVector []float64, maxResults int) ([]models.SimilarityResult, error) {
	candidates, err := s.All()
	if err != nil {
		return nil, fmt.Errorf("loading embeddings: %w", err)
	}

	return relevance.FindMostSimilar(queryVector, candidates, maxResults, relevance.DefaultThreshold)
}

// Delete removes an embedding by post ID
func (s *EmbeddingStore) Delete(postID string) error {
	_, err := s.db.Exec("DELETE FROM embeddings WHERE post_id = ?", postID)
	return err
}
