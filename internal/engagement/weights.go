// ABOUTME: Scoring weights for the engagement composite score
// ABOUTME: Validated eagerly at configuration time, never renormalized per call
package engagement

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidWeights indicates a weight set that is negative or does not sum
// to 1.0. This is a configuration error, caught at startup, not per request.
var ErrInvalidWeights = errors.New("invalid scoring weights")

// weightSumTolerance absorbs float parsing noise when weights come from env vars
const weightSumTolerance = 1e-6

// Weights holds the coefficient for each of the four engagement signals.
// They must be non-negative and sum to 1.0 so the composite stays in [0,1].
type Weights struct {
	Frequency      float64 `json:"frequency"`
	FollowerRatio  float64 `json:"follower_ratio"`
	RecentActivity float64 `json:"recent_activity"`
	Relevance      float64 `json:"relevance"`
}

// DefaultWeights returns the stock weighting: relevance dominates, the three
// behavioral signals split the rest evenly.
func DefaultWeights() Weights {
	return Weights{
		Frequency:      0.2,
		FollowerRatio:  0.2,
		RecentActivity: 0.2,
		Relevance:      0.4,
	}
}

// Validate checks the weight invariant. Callers validate once at
// configuration time; the scorer itself trusts the weights it is given.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"frequency":       w.Frequency,
		"follower_ratio":  w.FollowerRatio,
		"recent_activity": w.RecentActivity,
		"relevance":       w.Relevance,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s is negative (%f)", ErrInvalidWeights, name, v)
		}
	}

	sum := w.Frequency + w.FollowerRatio + w.RecentActivity + w.Relevance
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: weights sum to %f, must sum to 1.0", ErrInvalidWeights, sum)
	}
	return nil
}
