// ABOUTME: Unit tests for the engagement composite scorer and ranking
// ABOUTME: Covers normalization bounds, weighting regimes, and stable ordering
package engagement

import (
	"math"
	"testing"

	"github.com/harper/resonate/internal/models"
)

func TestScore_Bounds(t *testing.T) {
	s := NewScorer(DefaultWeights())

	zero := s.Score(Signals{})
	if zero != 0 {
		t.Errorf("all-zero signals should score 0, got %.4f", zero)
	}

	// Everything saturated: frequency and recency at cap, huge follower
	// ratio, perfect relevance. Composite approaches but never exceeds 1.
	max := s.Score(Signals{
		PostsPerDay:   100,
		FollowerRatio: 1000,
		RecentPosts:   50,
		Relevance:     100,
	})
	if max > 1.0 {
		t.Errorf("composite exceeded 1.0: %.4f", max)
	}
	if max < 0.99 {
		t.Errorf("saturated signals should score near 1.0, got %.4f", max)
	}
}

func TestScore_RelevanceOnly(t *testing.T) {
	s := NewScorer(Weights{Relevance: 1.0})

	got := s.Score(Signals{Relevance: 57})
	if math.Abs(got-0.57) > 0.000001 {
		t.Errorf("relevance 57 with unit weight should score 0.57, got %.6f", got)
	}
}

func TestScore_SaturationCaps(t *testing.T) {
	s := NewScorer(Weights{Frequency: 1.0})

	atCap := s.Score(Signals{PostsPerDay: DefaultFrequencyCap})
	aboveCap := s.Score(Signals{PostsPerDay: DefaultFrequencyCap * 3})
	if atCap != 1.0 || aboveCap != 1.0 {
		t.Errorf("frequency should saturate at cap: atCap=%.4f aboveCap=%.4f", atCap, aboveCap)
	}

	half := s.Score(Signals{PostsPerDay: DefaultFrequencyCap / 2})
	if math.Abs(half-0.5) > 0.000001 {
		t.Errorf("half the cap should score 0.5, got %.4f", half)
	}
}

func TestScore_FollowerRatioNormalization(t *testing.T) {
	s := NewScorer(Weights{FollowerRatio: 1.0})

	// r/(r+1): bounded below 1, monotonic
	if got := s.Score(Signals{FollowerRatio: 1.0}); math.Abs(got-0.5) > 0.000001 {
		t.Errorf("ratio 1.0 should normalize to 0.5, got %.6f", got)
	}
	if got := s.Score(Signals{FollowerRatio: 0}); got != 0 {
		t.Errorf("ratio 0 should normalize to 0, got %.6f", got)
	}

	prev := -1.0
	for _, r := range []float64{0, 0.1, 0.5, 1, 2, 10, 100} {
		got := s.Score(Signals{FollowerRatio: r})
		if got >= 1.0 {
			t.Errorf("ratio %v normalized out of bounds: %.6f", r, got)
		}
		if got < prev {
			t.Errorf("ratio normalization not monotonic at %v", r)
		}
		prev = got
	}
}

func TestRank_WeightingRegimes(t *testing.T) {
	posts := []models.Post{
		{ID: "relevant", Text: "on-topic post"},
		{ID: "chatty", Text: "prolific author"},
		{ID: "hungry", Text: "follows everyone"},
	}
	signals := []Signals{
		{Relevance: 95, PostsPerDay: 1, FollowerRatio: 0.1, RecentPosts: 1},
		{Relevance: 20, PostsPerDay: 20, FollowerRatio: 0.1, RecentPosts: 10},
		{Relevance: 20, PostsPerDay: 1, FollowerRatio: 50, RecentPosts: 1},
	}

	tests := []struct {
		name    string
		weights Weights
		wantTop string
	}{
		{
			name:    "relevance-heavy favors on-topic post",
			weights: Weights{Relevance: 0.8, Frequency: 0.1, FollowerRatio: 0.05, RecentActivity: 0.05},
			wantTop: "relevant",
		},
		{
			name:    "frequency-heavy favors prolific author",
			weights: Weights{Relevance: 0.1, Frequency: 0.6, FollowerRatio: 0.1, RecentActivity: 0.2},
			wantTop: "chatty",
		},
		{
			name:    "ratio-heavy favors reply-hungry author",
			weights: Weights{Relevance: 0.1, Frequency: 0.1, FollowerRatio: 0.7, RecentActivity: 0.1},
			wantTop: "hungry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.weights.Validate(); err != nil {
				t.Fatalf("test weights invalid: %v", err)
			}

			ranked, err := NewScorer(tt.weights).Rank(posts, signals)
			if err != nil {
				t.Fatalf("Rank returned error: %v", err)
			}
			if ranked[0].Post.ID != tt.wantTop {
				t.Errorf("top post = %s, want %s (scores: %v)", ranked[0].Post.ID, tt.wantTop, scoresOf(ranked))
			}
		})
	}
}

func TestRank_StableTies(t *testing.T) {
	posts := []models.Post{
		{ID: "first"},
		{ID: "second"},
		{ID: "third"},
	}
	same := Signals{Relevance: 50, PostsPerDay: 2, FollowerRatio: 1, RecentPosts: 3}
	signals := []Signals{same, same, same}

	ranked, err := NewScorer(DefaultWeights()).Rank(posts, signals)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}

	wantOrder := []string{"first", "second", "third"}
	for i, want := range wantOrder {
		if ranked[i].Post.ID != want {
			t.Errorf("tie order broken: ranked[%d] = %s, want %s", i, ranked[i].Post.ID, want)
		}
	}
}

func TestRank_Descending(t *testing.T) {
	posts := []models.Post{{ID: "low"}, {ID: "high"}, {ID: "mid"}}
	signals := []Signals{
		{Relevance: 10},
		{Relevance: 90},
		{Relevance: 50},
	}

	ranked, err := NewScorer(DefaultWeights()).Rank(posts, signals)
	if err != nil {
		t.Fatalf("Rank returned error: %v", err)
	}

	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("not descending at %d: %.4f > %.4f", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
	if ranked[0].Post.ID != "high" {
		t.Errorf("top post = %s, want high", ranked[0].Post.ID)
	}
}

func TestRank_LengthMismatch(t *testing.T) {
	_, err := NewScorer(DefaultWeights()).Rank(
		[]models.Post{{ID: "a"}},
		[]Signals{},
	)
	if err == nil {
		t.Error("expected error for posts/signals length mismatch")
	}
}

func TestRank_EmptyInput(t *testing.T) {
	ranked, err := NewScorer(DefaultWeights()).Rank(nil, nil)
	if err != nil {
		t.Fatalf("empty input should not error: %v", err)
	}
	if len(ranked) != 0 {
		t.Errorf("expected empty ranking, got %d", len(ranked))
	}
}

func scoresOf(ranked []models.RankedPost) []float64 {
	scores := make([]float64, len(ranked))
	for i, r := range ranked {
		scores[i] = r.Score
	}
	return scores
}
