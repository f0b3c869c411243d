// ABOUTME: Maps raw cosine similarity to a curved 0-100 relevance score
// ABOUTME: Provides interpretation bands for human-readable relevance labels
package relevance

import (
	"math"

	"github.com/harper/resonate/internal/vecmath"
)

// curveExponent shapes the similarity-to-score mapping. The sub-linear 0.8
// curve boosts moderate similarities more than a linear mapping would, which
// shifts ranking weight toward "somewhat relevant" posts. Changing it breaks
// score parity with stored historical scores.
const curveExponent = 0.8

// TopicalSimilarity converts a raw cosine similarity to a 0-100 relevance
// score. Input is clamped to [0,1] first; values outside that range come
// from floating-point noise and are never rejected.
func TopicalSimilarity(similarity float64) int {
	clamped := math.Max(0, math.Min(1, similarity))
	return int(math.Round(math.Pow(clamped, curveExponent) * 100))
}

// TopicalSimilarityVectors scores a target vector against a query vector
func TopicalSimilarityVectors(query, target []float64) (int, error) {
	similarity, err := vecmath.CosineSimilarity(query, target)
	if err != nil {
		return 0, err
	}
	return TopicalSimilarity(similarity), nil
}

// AverageTopicalSimilarity scores each target against the query and returns
// the mean of the per-pair curved scores. The curve is applied per pair, not
// to the mean similarity; swapping the order changes results on the
// sub-linear curve.
func AverageTopicalSimilarity(query []float64, targets [][]float64) (int, error) {
	if len(targets) == 0 {
		return 0, nil
	}

	var sum int
	for _, target := range targets {
		score, err := TopicalSimilarityVectors(query, target)
		if err != nil {
			return 0, err
		}
		sum += score
	}
	return int(math.Round(float64(sum) / float64(len(targets)))), nil
}

// Interpret maps a relevance score to one of six fixed bands. Boundaries
// are inclusive on the lower bound.
func Interpret(score int) string {
	switch {
	case score >= 85:
		return "Highly relevant"
	case score >= 70:
		return "Very relevant"
	case score >= 55:
		return "Moderately relevant"
	case score >= 40:
		return "Somewhat relevant"
	case score >= 25:
		return "Loosely relevant"
	default:
		return "Not relevant"
	}
}
