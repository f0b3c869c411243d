// ABOUTME: Similarity ranker over candidate embedding vectors
// ABOUTME: Computes, filters, and stably orders cosine similarity results
package relevance

import (
	"fmt"
	"sort"

	"github.com/harper/resonate/internal/models"
	"github.com/harper/resonate/internal/vecmath"
)

// Default parameters for FindMostSimilar
const (
	DefaultLimit     = 10
	DefaultThreshold = 0.0
)

// FindMostSimilar ranks candidates by cosine similarity against the query.
// Results below threshold are dropped (inclusive bound: score == threshold
// is kept), the rest are sorted descending with input order preserved for
// equal scores, then truncated to limit. A limit <= 0 yields an empty
// result, not an error. Any malformed candidate fails the whole call.
func FindMostSimilar(query []float64, candidates []models.CandidateVector, limit int, threshold float64) ([]models.SimilarityResult, error) {
	if limit <= 0 {
		return []models.SimilarityResult{}, nil
	}

	results := make([]models.SimilarityResult, 0, len(candidates))
	for _, c := range candidates {
		score, err := vecmath.CosineSimilarity(query, c.Vector)
		if err != nil {
			return nil, fmt.Errorf("candidate %s: %w", c.ID, err)
		}
		if score >= threshold {
			results = append(results, models.SimilarityResult{ID: c.ID, Score: score})
		}
	}

	// Stable sort so equal scores keep input order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// BatchCosineSimilarity computes one similarity score per target, in target
// order, with no filtering or sorting
func BatchCosineSimilarity(query []float64, targets [][]float64) ([]float64, error) {
	scores := make([]float64, len(targets))
	for i, target := range targets {
		score, err := vecmath.CosineSimilarity(query, target)
		if err != nil {
			return nil, fmt.Errorf("target %d: %w", i, err)
		}
		scores[i] = score
	}
	return scores, nil
}

// AverageSimilarity returns the arithmetic mean of the given scores.
// An empty input means "no signal" and averages to 0.
func AverageSimilarity(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
