// ABOUTME: Unit tests for scoring weight validation
// ABOUTME: Covers sum invariant, negative weights, and defaults
package engagement

import (
	"errors"
	"testing"
)

func TestDefaultWeights_Valid(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Errorf("default weights should validate: %v", err)
	}
}

func TestWeights_Validate(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		wantErr bool
	}{
		{
			name:    "even split",
			weights: Weights{Frequency: 0.25, FollowerRatio: 0.25, RecentActivity: 0.25, Relevance: 0.25},
			wantErr: false,
		},
		{
			name:    "relevance only",
			weights: Weights{Relevance: 1.0},
			wantErr: false,
		},
		{
			name:    "sum below one",
			weights: Weights{Frequency: 0.2, FollowerRatio: 0.2, RecentActivity: 0.2, Relevance: 0.2},
			wantErr: true,
		},
		{
			name:    "sum above one",
			weights: Weights{Frequency: 0.5, FollowerRatio: 0.5, RecentActivity: 0.5, Relevance: 0.5},
			wantErr: true,
		},
		{
			name:    "negative weight",
			weights: Weights{Frequency: -0.2, FollowerRatio: 0.4, RecentActivity: 0.4, Relevance: 0.4},
			wantErr: true,
		},
		{
			name:    "zero everything",
			weights: Weights{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidWeights) {
				t.Errorf("expected ErrInvalidWeights, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestWeights_ValidateTolerance(t *testing.T) {
	// Parsing three decimals from env vars leaves float noise; a sum within
	// 1e-6 of 1.0 must pass.
	w := Weights{Frequency: 0.1, FollowerRatio: 0.2, RecentActivity: 0.3, Relevance: 0.4}
	if err := w.Validate(); err != nil {
		t.Errorf("weights within tolerance should validate: %v", err)
	}
}
