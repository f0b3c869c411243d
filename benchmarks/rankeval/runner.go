// ABOUTME: Benchmark runner that replays ranking scenarios through the Curator
// ABOUTME: Uses in-memory storage and precomputed vectors, no API calls

package rankeval

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/harper/resonate/internal/config"
	"github.com/harper/resonate/internal/core"
	"github.com/harper/resonate/internal/engagement"
	"github.com/harper/resonate/internal/models"
	"github.com/harper/resonate/internal/storage"
)

// scenarioEmbedder serves the scenario's precomputed vectors keyed by text
type scenarioEmbedder struct {
	vectors map[string][]float64
}

func (e *scenarioEmbedder) GenerateEmbedding(text string) ([]float64, error) {
	if v, ok := e.vectors[text]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("no precomputed vector for text: %q", text)
}

// BenchmarkRunner executes ranking scenarios and evaluates the output
type BenchmarkRunner struct {
	metrics *MetricsCalculator
	verbose bool
}

// NewBenchmarkRunner creates a benchmark runner
func NewBenchmarkRunner(verbose bool) *BenchmarkRunner {
	return &BenchmarkRunner{
		metrics: NewMetricsCalculator(),
		verbose: verbose,
	}
}

// RunScenario executes a single scenario against a fresh in-memory engine
func (r *BenchmarkRunner) RunScenario(scenario Scenario) (Result, error) {
	store, err := storage.NewStorageInMemory()
	if err != nil {
		return Result{}, fmt.Errorf("creating storage: %w", err)
	}
	defer store.Close()

	profile := &models.InterestProfile{Interests: scenario.Interests}
	if err := store.SaveInterestProfile(profile); err != nil {
		return Result{}, fmt.Errorf("saving interest profile: %w", err)
	}

	embedder := &scenarioEmbedder{vectors: map[string][]float64{
		profile.InterestText(): scenario.InterestVector,
	}}

	posts := make([]models.Post, 0, len(scenario.Posts))
	for _, sp := range scenario.Posts {
		posts = append(posts, sp.Post)
		embedder.vectors[sp.Post.Text] = sp.Vector
		if sp.Stats != nil {
			if err := store.SaveAuthorStats(sp.Stats); err != nil {
				return Result{}, fmt.Errorf("seeding stats for %s: %w", sp.Stats.AuthorID, err)
			}
		}
	}

	cfg := &config.Config{
		Weights:           engagement.DefaultWeights(),
		FrequencyCap:      engagement.DefaultFrequencyCap,
		RecentActivityCap: engagement.DefaultRecentActivityCap,
		RankLimit:         len(posts),
		MaxCandidates:     len(posts),
		VectorDimension:   len(scenario.InterestVector),
	}

	curator := core.NewCurator(store, embedder, nil, cfg)

	ranked, err := curator.RankPosts(context.Background(), posts)
	if err != nil {
		return Result{
			ScenarioID:   scenario.ID,
			ScenarioName: scenario.Name,
			Status:       "FAIL",
			ErrorMessage: err.Error(),
		}, nil
	}

	if r.verbose {
		fmt.Printf("Scenario %s ranked order:\n", scenario.ID)
		for i, rp := range ranked {
			fmt.Printf("  %2d. %-20s score=%.3f relevance=%d\n", i+1, rp.Post.ID, rp.Score, rp.Relevance)
		}
	}

	return r.metrics.Evaluate(scenario, ranked), nil
}

// RunAll executes every registered scenario
func (r *BenchmarkRunner) RunAll() ([]Result, error) {
	scenarios := GetAllScenarios()
	results := make([]Result, 0, len(scenarios))
	for _, scenario := range scenarios {
		result, err := r.RunScenario(scenario)
		if err != nil {
			return results, fmt.Errorf("scenario %s: %w", scenario.ID, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// ExportResults writes the benchmark results to a JSON file
func (r *BenchmarkRunner) ExportResults(results []Result, path string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}
