// ABOUTME: Tests for the ranking benchmark runner and metrics
// ABOUTME: All scenarios are deterministic and must pass offline

package rankeval

import (
	"testing"

	"github.com/harper/resonate/internal/models"
)

func TestRunAll_ScenariosPass(t *testing.T) {
	runner := NewBenchmarkRunner(false)

	results, err := runner.RunAll()
	if err != nil {
		t.Fatalf("RunAll returned error: %v", err)
	}
	if len(results) != len(GetAllScenarios()) {
		t.Fatalf("expected %d results, got %d", len(GetAllScenarios()), len(results))
	}

	for _, result := range results {
		if result.ErrorMessage != "" {
			t.Errorf("%s errored: %s", result.ScenarioID, result.ErrorMessage)
			continue
		}
		if result.Status != "PASS" {
			t.Errorf("%s = %s (precision=%.2f pairwise=%.2f): %v",
				result.ScenarioID, result.Status, result.PrecisionAtK, result.PairwiseAccuracy, result.Details)
		}
	}
}

func TestPrecisionAtK(t *testing.T) {
	m := NewMetricsCalculator()
	ranked := []models.RankedPost{
		{Post: models.Post{ID: "a"}},
		{Post: models.Post{ID: "b"}},
		{Post: models.Post{ID: "c"}},
	}

	precision, _ := m.PrecisionAtK(ranked, []string{"a", "c"}, 2)
	if precision != 0.5 {
		t.Errorf("precision = %v, want 0.5", precision)
	}

	precision, _ = m.PrecisionAtK(ranked, []string{"a", "b"}, 2)
	if precision != 1.0 {
		t.Errorf("precision = %v, want 1.0", precision)
	}

	// K larger than the ranking clamps
	precision, _ = m.PrecisionAtK(ranked, []string{"a", "b", "c"}, 10)
	if precision != 1.0 {
		t.Errorf("precision with large K = %v, want 1.0", precision)
	}
}

func TestPairwiseAccuracy(t *testing.T) {
	m := NewMetricsCalculator()
	ranked := []models.RankedPost{
		{Post: models.Post{ID: "a"}},
		{Post: models.Post{ID: "b"}},
		{Post: models.Post{ID: "c"}},
	}

	accuracy, _ := m.PairwiseAccuracy(ranked, [][2]string{{"a", "b"}, {"b", "c"}})
	if accuracy != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", accuracy)
	}

	accuracy, _ = m.PairwiseAccuracy(ranked, [][2]string{{"c", "a"}, {"a", "b"}})
	if accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", accuracy)
	}

	// Missing second post counts as satisfied
	accuracy, _ = m.PairwiseAccuracy(ranked, [][2]string{{"a", "zzz"}})
	if accuracy != 1.0 {
		t.Errorf("accuracy with missing post = %v, want 1.0", accuracy)
	}
}
