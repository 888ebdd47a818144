package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  int
	}{
		{name: "zero", score: 0, want: 0},
		{name: "perfect match", score: 1.0, want: 100},
		{name: "rounds up", score: 0.845, want: 85},
		{name: "rounds down", score: 0.844, want: 84},
		{name: "negative clamps to zero", score: -0.2, want: 0},
		{name: "above one clamps to hundred", score: 1.01, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.score))
		})
	}
}

func TestClassifyScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  Tier
	}{
		{name: "high band", score: 0.85, want: TierHigh},
		{name: "high boundary inclusive", score: 0.70, want: TierHigh},
		{name: "medium band", score: 0.60, want: TierMedium},
		{name: "medium boundary inclusive", score: 0.50, want: TierMedium},
		{name: "low band", score: 0.45, want: TierLow},
		{name: "low boundary inclusive", score: 0.30, want: TierLow},
		{name: "minimal", score: 0.20, want: TierMinimal},
		{name: "just below low band", score: 0.294, want: TierMinimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyScore(tt.score))
		})
	}
}

func TestPassesThreshold(t *testing.T) {
	assert.True(t, PassesThreshold(0.45, 30))
	assert.True(t, PassesThreshold(0.30, 30), "threshold is inclusive")
	assert.False(t, PassesThreshold(0.20, 30))
	assert.True(t, PassesThreshold(0.20, 0), "zero threshold admits everything non-negative")
}

func TestTierEmoji(t *testing.T) {
	// Every tier has a distinct marker.
	seen := map[string]bool{}
	for _, tier := range []Tier{TierHigh, TierMedium, TierLow, TierMinimal} {
		e := tier.Emoji()
		assert.NotEmpty(t, e)
		assert.False(t, seen[e], "duplicate emoji for %s", tier)
		seen[e] = true
	}
}
