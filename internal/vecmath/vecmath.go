// ABOUTME: Vector math primitives for embedding similarity computation
// ABOUTME: Dot product, magnitude, and cosine similarity over float64 vectors
package vecmath

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for input-contract violations. These indicate programming
// errors in the caller, not transient failures.
var (
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	ErrEmptyVector       = errors.New("empty vector")
)

// Dot computes the dot product of two vectors of equal dimension
func Dot(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("%w: dot product requires non-empty vectors", ErrEmptyVector)
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot, nil
}

// Magnitude computes the Euclidean norm of a vector
func Magnitude(a []float64) (float64, error) {
	if len(a) == 0 {
		return 0, fmt.Errorf("%w: magnitude requires a non-empty vector", ErrEmptyVector)
	}

	var sum float64
	for _, v := range a {
		sum += v * v
	}
	return math.Sqrt(sum), nil
}

// CosineSimilarity computes cosine similarity between two vectors.
// Result is in [-1, 1]. A zero vector on either side yields 0 rather than an
// error: zero vectors are treated as "unrelated", not malformed. Mismatched
// dimensions and empty vectors fail immediately; the similarity is never
// silently computed over padded or truncated input.
func CosineSimilarity(a, b []float64) (float64, error) {
	dot, err := Dot(a, b)
	if err != nil {
		return 0, err
	}

	magA, err := Magnitude(a)
	if err != nil {
		return 0, err
	}
	magB, err := Magnitude(b)
	if err != nil {
		return 0, err
	}

	if magA == 0 || magB == 0 {
		return 0, nil
	}

	return dot / (magA * magB), nil
}
