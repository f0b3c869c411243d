// ABOUTME: Ranking benchmark scenario definitions with precomputed vectors
// ABOUTME: Each scenario pins posts, author stats, and expected feed ordering

package rankeval

import "github.com/harper/resonate/internal/models"

// Scenario represents a complete ranking benchmark test
type Scenario struct {
	ID          string
	Name        string
	Description string
	Interests   []string
	// InterestVector is the precomputed embedding for the joined interests
	InterestVector []float64
	Posts          []ScenarioPost
	GroundTruth    GroundTruth
}

// ScenarioPost is a candidate post plus its precomputed embedding and
// optional author stats
type ScenarioPost struct {
	Post   models.Post
	Vector []float64
	Stats  *models.AuthorStats
}

// GroundTruth defines expected ranking outcomes
type GroundTruth struct {
	// RelevantIDs are the posts a human would want near the top
	RelevantIDs []string
	// ExpectedOrder lists post ID pairs where the first must outrank the
	// second; pairwise accuracy is measured against these
	ExpectedOrder [][2]string
	// MinPrecisionAtK is the pass threshold for precision at K
	MinPrecisionAtK float64
	// K is the feed depth evaluated for precision
	K int
}

// Result represents the outcome of one benchmark scenario
type Result struct {
	ScenarioID       string                 `json:"scenario_id"`
	ScenarioName     string                 `json:"scenario_name"`
	PrecisionAtK     float64                `json:"precision_at_k"`
	PairwiseAccuracy float64                `json:"pairwise_accuracy"`
	OverallScore     float64                `json:"overall_score"`
	Status           string                 `json:"status"` // "PASS" or "FAIL"
	Details          map[string]interface{} `json:"details,omitempty"`
	ErrorMessage     string                 `json:"error_message,omitempty"`
}

// GetTopicalSeparation returns a scenario where relevance alone must
// separate on-topic posts from noise
func GetTopicalSeparation() Scenario {
	return Scenario{
		ID:             "topical_separation",
		Name:           "Topical Separation",
		Description:    "On-topic posts must outrank unrelated chatter on relevance alone",
		Interests:      []string{"go programming", "vector databases"},
		InterestVector: []float64{1.0, 0.0, 0.0, 0.0},
		Posts: []ScenarioPost{
			{
				Post:   models.Post{ID: "go-deep-dive", AuthorID: "a1", Text: "a deep dive into the Go scheduler"},
				Vector: []float64{0.95, 0.05, 0.0, 0.0},
			},
			{
				Post:   models.Post{ID: "vector-idx", AuthorID: "a2", Text: "benchmarking HNSW vector indexes"},
				Vector: []float64{0.9, 0.1, 0.0, 0.0},
			},
			{
				Post:   models.Post{ID: "lunch", AuthorID: "a3", Text: "what I had for lunch"},
				Vector: []float64{0.0, 0.0, 1.0, 0.0},
			},
			{
				Post:   models.Post{ID: "weather", AuthorID: "a4", Text: "it's raining again"},
				Vector: []float64{0.0, 0.0, 0.1, 0.9},
			},
			{
				Post:   models.Post{ID: "half-topic", AuthorID: "a5", Text: "writing a food blog in Go"},
				Vector: []float64{0.5, 0.0, 0.5, 0.0},
			},
		},
		GroundTruth: GroundTruth{
			RelevantIDs: []string{"go-deep-dive", "vector-idx"},
			ExpectedOrder: [][2]string{
				{"go-deep-dive", "lunch"},
				{"go-deep-dive", "weather"},
				{"vector-idx", "lunch"},
				{"vector-idx", "weather"},
				{"half-topic", "lunch"},
			},
			MinPrecisionAtK: 1.0,
			K:               2,
		},
	}
}

// GetBehavioralTiebreak returns a scenario where equal relevance must be
// broken by author behavior signals
func GetBehavioralTiebreak() Scenario {
	identical := []float64{1.0, 0.0, 0.0, 0.0}
	return Scenario{
		ID:             "behavioral_tiebreak",
		Name:           "Behavioral Tiebreak",
		Description:    "Among equally relevant posts, active reply-hungry authors rank higher",
		Interests:      []string{"distributed systems"},
		InterestVector: identical,
		Posts: []ScenarioPost{
			{
				Post:   models.Post{ID: "ghost", AuthorID: "ghost", Text: "thoughts on consensus"},
				Vector: identical,
				// No stats: all behavioral signals zero
			},
			{
				Post:   models.Post{ID: "regular", AuthorID: "regular", Text: "more thoughts on consensus"},
				Vector: identical,
				Stats: &models.AuthorStats{
					AuthorID:    "regular",
					Followers:   500,
					Following:   200,
					PostsPerDay: 3,
					RecentPosts: 2,
				},
			},
			{
				Post:   models.Post{ID: "engaged", AuthorID: "engaged", Text: "even more thoughts on consensus"},
				Vector: identical,
				Stats: &models.AuthorStats{
					AuthorID:    "engaged",
					Followers:   300,
					Following:   900,
					PostsPerDay: 12,
					RecentPosts: 9,
				},
			},
		},
		GroundTruth: GroundTruth{
			RelevantIDs: []string{"engaged", "regular"},
			ExpectedOrder: [][2]string{
				{"engaged", "regular"},
				{"engaged", "ghost"},
				{"regular", "ghost"},
			},
			MinPrecisionAtK: 1.0,
			K:               2,
		},
	}
}

// GetNoiseFlood returns a scenario where a few relevant posts must
// surface from a flood of off-topic candidates
func GetNoiseFlood() Scenario {
	posts := []ScenarioPost{
		{
			Post:   models.Post{ID: "signal-1", AuthorID: "s1", Text: "profiling Go allocations"},
			Vector: []float64{0.9, 0.1, 0.0, 0.0},
		},
		{
			Post:   models.Post{ID: "signal-2", AuthorID: "s2", Text: "embedding models compared"},
			Vector: []float64{0.85, 0.15, 0.0, 0.0},
		},
	}

	// Twenty noise posts spread across unrelated directions
	noiseVectors := [][]float64{
		{0.0, 0.0, 1.0, 0.0},
		{0.0, 0.0, 0.8, 0.2},
		{0.0, 0.1, 0.0, 0.9},
		{0.1, 0.0, 0.6, 0.4},
	}
	for i := 0; i < 20; i++ {
		posts = append(posts, ScenarioPost{
			Post: models.Post{
				ID:       noiseID(i),
				AuthorID: "noise",
				Text:     "unrelated chatter",
			},
			Vector: noiseVectors[i%len(noiseVectors)],
		})
	}

	return Scenario{
		ID:             "noise_flood",
		Name:           "Noise Flood",
		Description:    "Two relevant posts must rank above twenty unrelated ones",
		Interests:      []string{"go programming", "embeddings"},
		InterestVector: []float64{1.0, 0.0, 0.0, 0.0},
		Posts:          posts,
		GroundTruth: GroundTruth{
			RelevantIDs: []string{"signal-1", "signal-2"},
			ExpectedOrder: [][2]string{
				{"signal-1", noiseID(0)},
				{"signal-2", noiseID(0)},
				{"signal-1", noiseID(10)},
				{"signal-2", noiseID(19)},
			},
			MinPrecisionAtK: 1.0,
			K:               2,
		},
	}
}

func noiseID(i int) string {
	return "noise-" + string(rune('a'+i%26)) + string(rune('0'+i/26))
}

// GetAllScenarios returns all ranking benchmark scenarios
func GetAllScenarios() []Scenario {
	return []Scenario{
		GetTopicalSeparation(),
		GetBehavioralTiebreak(),
		GetNoiseFlood(),
	}
}
