// ABOUTME: Ranking quality metrics for benchmark evaluation
// ABOUTME: Precision at K and pairwise ordering accuracy against ground truth

package rankeval

import (
	"fmt"

	"github.com/harper/resonate/internal/models"
)

// MetricsCalculator computes ranking quality scores for benchmark tests
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// PrecisionAtK computes the fraction of the top K ranked posts that are
// in the relevant set (0.0-1.0)
func (m *MetricsCalculator) PrecisionAtK(ranked []models.RankedPost, relevantIDs []string, k int) (float64, string) {
	if k <= 0 || len(ranked) == 0 {
		return 0, "no ranked posts to evaluate"
	}
	if k > len(ranked) {
		k = len(ranked)
	}

	relevant := make(map[string]bool, len(relevantIDs))
	for _, id := range relevantIDs {
		relevant[id] = true
	}

	hits := 0
	for _, rp := range ranked[:k] {
		if relevant[rp.Post.ID] {
			hits++
		}
	}

	precision := float64(hits) / float64(k)
	return precision, fmt.Sprintf("%d of top %d posts are relevant", hits, k)
}

// PairwiseAccuracy computes the fraction of expected orderings the
// ranking satisfies. A pair counts as satisfied when the first post
// appears strictly before the second.
func (m *MetricsCalculator) PairwiseAccuracy(ranked []models.RankedPost, expected [][2]string) (float64, string) {
	if len(expected) == 0 {
		return 1.0, "no ordering constraints"
	}

	position := make(map[string]int, len(ranked))
	for i, rp := range ranked {
		position[rp.Post.ID] = i
	}

	satisfied := 0
	var violations []string
	for _, pair := range expected {
		hi, hiOK := position[pair[0]]
		lo, loOK := position[pair[1]]
		// A missing post counts as ranked below everything present
		switch {
		case hiOK && !loOK:
			satisfied++
		case hiOK && loOK && hi < lo:
			satisfied++
		default:
			violations = append(violations, fmt.Sprintf("%s should outrank %s", pair[0], pair[1]))
		}
	}

	accuracy := float64(satisfied) / float64(len(expected))
	if len(violations) == 0 {
		return accuracy, "all ordering constraints satisfied"
	}
	return accuracy, fmt.Sprintf("violations: %v", violations)
}

// Evaluate runs the full metric suite for one scenario run
func (m *MetricsCalculator) Evaluate(scenario Scenario, ranked []models.RankedPost) Result {
	precision, precisionDetail := m.PrecisionAtK(ranked, scenario.GroundTruth.RelevantIDs, scenario.GroundTruth.K)
	pairwise, pairwiseDetail := m.PairwiseAccuracy(ranked, scenario.GroundTruth.ExpectedOrder)

	overall := (precision + pairwise) / 2.0

	status := "FAIL"
	if precision >= scenario.GroundTruth.MinPrecisionAtK && pairwise >= 0.9 {
		status = "PASS"
	}

	topIDs := make([]string, 0, len(ranked))
	for i, rp := range ranked {
		if i >= 5 {
			break
		}
		topIDs = append(topIDs, rp.Post.ID)
	}

	return Result{
		ScenarioID:       scenario.ID,
		ScenarioName:     scenario.Name,
		PrecisionAtK:     precision,
		PairwiseAccuracy: pairwise,
		OverallScore:     overall,
		Status:           status,
		Details: map[string]interface{}{
			"precision_detail": precisionDetail,
			"pairwise_detail":  pairwiseDetail,
			"top_posts":        topIDs,
			"ranked_count":     len(ranked),
		},
	}
}
