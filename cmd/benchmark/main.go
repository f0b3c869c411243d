// ABOUTME: Command-line benchmark runner for ranking quality scenarios
// ABOUTME: Executes rankeval scenarios and outputs JSON results

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/harper/resonate/benchmarks/rankeval"
)

func main() {
	scenarioID := flag.String("scenario", "", "Run specific scenario (topical_separation, behavioral_tiebreak, noise_flood). If empty, runs all.")
	outputPath := flag.String("output", "benchmark_results.json", "Output path for JSON results")
	verbose := flag.Bool("verbose", false, "Enable verbose output")
	flag.Parse()

	fmt.Println("========================================")
	fmt.Println("Resonate Ranking Benchmarks")
	fmt.Println("========================================")
	fmt.Println()

	runner := rankeval.NewBenchmarkRunner(*verbose)

	var results []rankeval.Result
	var err error

	if *scenarioID == "" {
		fmt.Println("Running all ranking scenarios...")
		fmt.Println()

		results, err = runner.RunAll()
		if err != nil {
			log.Fatalf("Benchmark failed: %v", err)
		}
	} else {
		var scenario rankeval.Scenario
		found := false
		for _, s := range rankeval.GetAllScenarios() {
			if s.ID == *scenarioID {
				scenario = s
				found = true
				break
			}
		}
		if !found {
			log.Fatalf("Unknown scenario: %s", *scenarioID)
		}

		fmt.Printf("Running scenario: %s\n\n", scenario.Name)

		result, err := runner.RunScenario(scenario)
		if err != nil {
			log.Fatalf("Scenario failed: %v", err)
		}
		results = []rankeval.Result{result}
	}

	fmt.Println("\n========================================")
	fmt.Println("BENCHMARK SUMMARY")
	fmt.Println("========================================")

	passed := 0
	failed := 0

	for _, result := range results {
		fmt.Printf("\n%s: %s\n", result.ScenarioID, result.ScenarioName)
		fmt.Printf("  Precision@K: %.2f\n", result.PrecisionAtK)
		fmt.Printf("  Pairwise Accuracy: %.2f\n", result.PairwiseAccuracy)
		fmt.Printf("  Overall: %.2f\n", result.OverallScore)
		fmt.Printf("  Status: %s\n", result.Status)

		if result.Status == "PASS" {
			passed++
		} else {
			failed++
		}
	}

	fmt.Println("\n========================================")
	fmt.Printf("Total Scenarios: %d\n", len(results))
	fmt.Printf("Passed: %d\n", passed)
	fmt.Printf("Failed: %d\n", failed)
	fmt.Println("========================================")

	if err := runner.ExportResults(results, *outputPath); err != nil {
		log.Fatalf("Failed to export results: %v", err)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
