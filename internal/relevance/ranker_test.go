// ABOUTME: Unit tests for the similarity ranker
// ABOUTME: Covers threshold filtering, stable ordering, limits, and batch scoring
package relevance

import (
	"errors"
	"math"
	"testing"

	"github.com/harper/resonate/internal/models"
	"github.com/harper/resonate/internal/vecmath"
)

func TestFindMostSimilar_Ordering(t *testing.T) {
	query := []float64{1.0, 0.0, 0.0}
	candidates := []models.CandidateVector{
		{ID: "orthogonal", Vector: []float64{0.0, 1.0, 0.0}},
		{ID: "close", Vector: []float64{0.9, 0.1, 0.0}},
		{ID: "exact", Vector: []float64{1.0, 0.0, 0.0}},
		{ID: "far", Vector: []float64{0.2, 0.9, 0.0}},
	}

	results, err := FindMostSimilar(query, candidates, 10, 0)
	if err != nil {
		t.Fatalf("FindMostSimilar returned error: %v", err)
	}

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	wantOrder := []string{"exact", "close", "far", "orthogonal"}
	for i, want := range wantOrder {
		if results[i].ID != want {
			t.Errorf("result[%d] = %s, want %s", i, results[i].ID, want)
		}
	}

	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted descending at %d: %.4f > %.4f",
				i, results[i].Score, results[i-1].Score)
		}
	}
}

func TestFindMostSimilar_StableTies(t *testing.T) {
	query := []float64{1.0, 0.0}
	// Three candidates with identical similarity to the query
	candidates := []models.CandidateVector{
		{ID: "first", Vector: []float64{2.0, 0.0}},
		{ID: "second", Vector: []float64{3.0, 0.0}},
		{ID: "third", Vector: []float64{0.5, 0.0}},
	}

	results, err := FindMostSimilar(query, candidates, 10, 0)
	if err != nil {
		t.Fatalf("FindMostSimilar returned error: %v", err)
	}

	wantOrder := []string{"first", "second", "third"}
	for i, want := range wantOrder {
		if results[i].ID != want {
			t.Errorf("tie order broken: result[%d] = %s, want %s", i, results[i].ID, want)
		}
	}
}

func TestFindMostSimilar_Threshold(t *testing.T) {
	query := []float64{1.0, 0.0}
	candidates := []models.CandidateVector{
		{ID: "above", Vector: []float64{1.0, 0.1}},
		{ID: "below", Vector: []float64{0.1, 1.0}},
		{ID: "exactly-zero", Vector: []float64{0.0, 1.0}},
	}

	results, err := FindMostSimilar(query, candidates, 10, 0.5)
	if err != nil {
		t.Fatalf("FindMostSimilar returned error: %v", err)
	}
	if len(results) != 1 || results[0].ID != "above" {
		t.Fatalf("expected only 'above' to pass threshold 0.5, got %+v", results)
	}

	// Inclusive bound: a score exactly at the threshold is kept
	results, err = FindMostSimilar(query, candidates, 10, 0)
	if err != nil {
		t.Fatalf("FindMostSimilar returned error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("threshold 0 should keep the orthogonal candidate, got %d results", len(results))
	}
	for _, r := range results {
		if r.Score < 0 {
			t.Errorf("result %s below threshold: %.4f", r.ID, r.Score)
		}
	}
}

func TestFindMostSimilar_Limit(t *testing.T) {
	query := []float64{1.0, 0.0}
	candidates := []models.CandidateVector{
		{ID: "a", Vector: []float64{1.0, 0.0}},
		{ID: "b", Vector: []float64{1.0, 0.1}},
		{ID: "c", Vector: []float64{1.0, 0.2}},
	}

	results, err := FindMostSimilar(query, candidates, 2, 0)
	if err != nil {
		t.Fatalf("FindMostSimilar returned error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results with limit 2, got %d", len(results))
	}

	// Non-positive limit yields an empty sequence, not an error
	results, err = FindMostSimilar(query, candidates, 0, 0)
	if err != nil {
		t.Fatalf("limit 0 should not error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty result for limit 0, got %d", len(results))
	}
}

func TestFindMostSimilar_EmptyCandidates(t *testing.T) {
	results, err := FindMostSimilar([]float64{1.0, 0.0}, []models.CandidateVector{}, 10, 0)
	if err != nil {
		t.Fatalf("empty candidate set should not error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty results, got %d", len(results))
	}
}

func TestFindMostSimilar_MalformedCandidate(t *testing.T) {
	query := []float64{1.0, 0.0}
	candidates := []models.CandidateVector{
		{ID: "ok", Vector: []float64{1.0, 0.0}},
		{ID: "bad", Vector: []float64{1.0, 0.0, 0.0}},
	}

	_, err := FindMostSimilar(query, candidates, 10, 0)
	if !errors.Is(err, vecmath.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestBatchCosineSimilarity(t *testing.T) {
	query := []float64{1.0, 0.0}
	targets := [][]float64{
		{1.0, 0.0},
		{0.0, 1.0},
		{-1.0, 0.0},
	}

	scores, err := BatchCosineSimilarity(query, targets)
	if err != nil {
		t.Fatalf("BatchCosineSimilarity returned error: %v", err)
	}

	want := []float64{1.0, 0.0, -1.0}
	if len(scores) != len(want) {
		t.Fatalf("expected %d scores, got %d", len(want), len(scores))
	}
	for i, w := range want {
		if math.Abs(scores[i]-w) > 0.000001 {
			t.Errorf("scores[%d] = %.6f, want %.6f", i, scores[i], w)
		}
	}
}

func TestAverageSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		scores   []float64
		expected float64
	}{
		{"empty defaults to zero", []float64{}, 0},
		{"single score", []float64{0.5}, 0.5},
		{"mixed scores", []float64{1.0, 0.0, 0.5}, 0.5},
		{"negative scores", []float64{-1.0, 1.0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageSimilarity(tt.scores)
			if math.Abs(got-tt.expected) > 0.000001 {
				t.Errorf("AverageSimilarity(%v) = %.6f, want %.6f", tt.scores, got, tt.expected)
			}
		})
	}
}
