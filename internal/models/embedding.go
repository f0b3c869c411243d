// ABOUTME: Embedding models for vector storage and similarity ranking
// ABOUTME: Defines Embedding, CandidateVector, and SimilarityResult structures
package models

import "time"

// Embedding represents a stored embedding vector for a post's text
type Embedding struct {
	PostID    string    `json:"post_id"`
	Vector    []float64 `json:"vector"`
	CreatedAt time.Time `json:"created_at"`
}

// CandidateVector pairs an identifier with its embedding for ranking
type CandidateVector struct {
	ID     string    `json:"id"`
	Vector []float64 `json:"vector"`
}

// SimilarityResult is one ranked candidate: identifier plus cosine
// similarity in [-1, 1]. Ordering within a result set is descending by
// score, stable for ties.
type SimilarityResult struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}
