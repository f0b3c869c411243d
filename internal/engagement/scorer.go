// ABOUTME: Engagement scorer combining relevance and behavioral signals
// ABOUTME: Weighted sum over normalized signals, then stable descending ranking
package engagement

import (
	"fmt"
	"math"
	"sort"

	"github.com/harper/resonate/internal/models"
)

// Saturation caps for behavioral signal normalization. Raw counts are mapped
// to [0,1] with min(raw/cap, 1); anything at or above the cap scores 1.
const (
	DefaultFrequencyCap      = 20.0 // posts per day
	DefaultRecentActivityCap = 10.0 // posts in the recency window
)

// Signals holds the per-post inputs to the composite score. All four fields
// are required; the caller resolves missing upstream data to zero before
// scoring. The engine never drops a post because a signal is absent.
type Signals struct {
	PostsPerDay   float64 `json:"posts_per_day"`
	FollowerRatio float64 `json:"follower_ratio"`
	RecentPosts   int     `json:"recent_posts"`
	Relevance     int     `json:"relevance"`
}

// Scorer computes composite engagement scores. It is stateless apart from
// its configuration and safe for concurrent use.
type Scorer struct {
	weights      Weights
	frequencyCap float64
	recentCap    float64
}

// NewScorer creates a Scorer with the given weights. The weights are assumed
// to have been validated at configuration time; a non-unit sum distorts the
// score scale rather than erroring here.
func NewScorer(weights Weights) *Scorer {
	return &Scorer{
		weights:      weights,
		frequencyCap: DefaultFrequencyCap,
		recentCap:    DefaultRecentActivityCap,
	}
}

// NewScorerWithCaps creates a Scorer with custom saturation caps
func NewScorerWithCaps(weights Weights, frequencyCap, recentCap float64) *Scorer {
	s := NewScorer(weights)
	if frequencyCap > 0 {
		s.frequencyCap = frequencyCap
	}
	if recentCap > 0 {
		s.recentCap = recentCap
	}
	return s
}

// Score computes the composite engagement score in [0,1] for one post's
// signals: a weighted sum of the four normalized signals.
func (s *Scorer) Score(sig Signals) float64 {
	return s.weights.Frequency*saturate(sig.PostsPerDay, s.frequencyCap) +
		s.weights.FollowerRatio*normalizeRatio(sig.FollowerRatio) +
		s.weights.RecentActivity*saturate(float64(sig.RecentPosts), s.recentCap) +
		s.weights.Relevance*float64(sig.Relevance)/100.0
}

// Rank scores every post and returns them ordered by composite score
// descending. signals[i] belongs to posts[i]. Ties keep input order, so the
// ranking is deterministic for a fixed input ordering.
func (s *Scorer) Rank(posts []models.Post, signals []Signals) ([]models.RankedPost, error) {
	if len(posts) != len(signals) {
		return nil, fmt.Errorf("posts/signals length mismatch: %d vs %d", len(posts), len(signals))
	}

	ranked := make([]models.RankedPost, len(posts))
	for i, post := range posts {
		ranked[i] = models.RankedPost{
			Post:      post,
			Relevance: signals[i].Relevance,
			Score:     s.Score(signals[i]),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked, nil
}

// saturate maps a non-negative count onto [0,1], clamping at the cap
func saturate(raw, ceiling float64) float64 {
	if raw <= 0 {
		return 0
	}
	return math.Min(raw/ceiling, 1)
}

// normalizeRatio maps a following/followers ratio onto [0,1). r/(r+1) is
// bounded and monotonic: authors who follow many accounts relative to their
// followers are the ones most likely to reply back.
func normalizeRatio(r float64) float64 {
	if r <= 0 {
		return 0
	}
	return r / (r + 1)
}
