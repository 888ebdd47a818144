package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func result(ordinal int, score float64) SearchResult {
	return SearchResult{
		Passage:    Passage{Ordinal: ordinal},
		Score:      score,
		Percentage: Percentage(score),
		Tier:       ClassifyScore(score),
	}
}

func TestAggregateSplit(t *testing.T) {
	ranked := []SearchResult{
		result(0, 0.9), result(1, 0.8), result(2, 0.7), result(3, 0.6), result(4, 0.5),
	}

	got := Aggregate(ranked, 3)

	assert.Len(t, got.Primary, 3)
	assert.Len(t, got.Overflow, 2)
	assert.Equal(t, 5, got.Total())

	// Primary + overflow equal exactly the input, disjoint and in order.
	combined := append(append([]SearchResult{}, got.Primary...), got.Overflow...)
	assert.Equal(t, ranked, combined)
}

func TestAggregateFewerThanTopN(t *testing.T) {
	ranked := []SearchResult{result(0, 0.9), result(1, 0.8)}

	got := Aggregate(ranked, 3)

	assert.Len(t, got.Primary, 2, "never pads primary with filler")
	assert.Empty(t, got.Overflow)
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil, 3)
	assert.Empty(t, got.Primary)
	assert.Empty(t, got.Overflow)
	assert.Equal(t, 0, got.Total())
}

func TestAggregateDefaultTopN(t *testing.T) {
	ranked := []SearchResult{
		result(0, 0.9), result(1, 0.8), result(2, 0.7), result(3, 0.6),
	}

	got := Aggregate(ranked, 0)

	assert.Len(t, got.Primary, DefaultTopNPrimary)
	assert.Len(t, got.Overflow, 1)
}

func TestSearchOptionsNormalized(t *testing.T) {
	opts := SearchOptions{}.Normalized()
	assert.Equal(t, DefaultTopK, opts.TopK)
	assert.Equal(t, DefaultTopNPrimary, opts.TopNPrimary)
	assert.Equal(t, DefaultMinRelevance, opts.MinRelevance)

	custom := SearchOptions{TopK: 5, TopNPrimary: 2, MinRelevance: 50}.Normalized()
	assert.Equal(t, 5, custom.TopK)
	assert.Equal(t, 2, custom.TopNPrimary)
	assert.Equal(t, 50, custom.MinRelevance)

	// A zero threshold is a deliberate "no filtering" choice, kept as-is.
	open := SearchOptions{TopK: 5, TopNPrimary: 2, MinRelevance: 0}.Normalized()
	assert.Equal(t, 0, open.MinRelevance)
}
