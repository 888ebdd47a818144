package services

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insyte-labs/insyte-cli/internal/core/domain"
)

// --- Mock embedding service ---

// mockEmbedder implements driven.EmbeddingService with canned vectors.
// Unknown texts get the fallback vector, so similarity against a query is
// fully controlled by the test.
type mockEmbedder struct {
	mu         sync.Mutex
	vectors    map[string][]float32
	fallback   []float32
	embedErr   error
	embedCalls int
	batchCalls int
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.embedCalls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	if v, ok := m.vectors[text]; ok {
		return v, nil
	}
	return m.fallback, nil
}

func (m *mockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	m.mu.Lock()
	m.batchCalls++
	err := m.embedErr
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}
	result := make([][]float32, len(texts))
	for i, text := range texts {
		m.mu.Lock()
		v, ok := m.vectors[text]
		m.mu.Unlock()
		if !ok {
			v = m.fallback
		}
		result[i] = v
	}
	return result, nil
}

func (m *mockEmbedder) Dimensions() int { return 3 }

func (m *mockEmbedder) ModelName() string { return "mock-embed" }

func (m *mockEmbedder) Ping(_ context.Context) error { return nil }

func (m *mockEmbedder) Close() error { return nil }

// unitVec returns a unit vector whose dot product with axis [1,0,0] is x.
func unitVec(x float64) []float32 {
	y := math.Sqrt(1 - x*x)
	return []float32{float32(x), float32(y), 0}
}

// axis is the canonical query vector.
func axis() []float32 { return []float32{1, 0, 0} }

// indexOf builds a ProjectIndex from (text, similarity-vs-axis) pairs.
func indexOf(sims ...float64) *domain.ProjectIndex {
	idx := &domain.ProjectIndex{ProjectID: "p1", Fingerprint: "fp"}
	for i, sim := range sims {
		idx.Passages = append(idx.Passages, domain.Passage{
			DocumentID: "doc",
			Filename:   "doc.txt",
			Ordinal:    i,
			Text:       "passage",
		})
		idx.Vectors = append(idx.Vectors, unitVec(sim))
	}
	return idx
}

func queryEmbedder() *mockEmbedder {
	return &mockEmbedder{
		vectors:  map[string][]float32{"query": axis()},
		fallback: axis(),
	}
}

// --- Tests ---

func TestSearchBlankQuery(t *testing.T) {
	embedder := queryEmbedder()
	svc := NewSearchService(embedder)

	for _, q := range []string{"", "   ", "\n\t"} {
		_, err := svc.Search(context.Background(), indexOf(0.9), q, domain.SearchOptions{})
		assert.ErrorIs(t, err, domain.ErrInvalidQuery)
	}
	assert.Zero(t, embedder.embedCalls, "no embedding call for a blank query")
}

func TestSearchEmptyIndex(t *testing.T) {
	svc := NewSearchService(queryEmbedder())

	results, err := svc.Search(context.Background(), &domain.ProjectIndex{}, "query", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, results.Total(), "empty index is empty results, not an error")

	results, err = svc.Search(context.Background(), nil, "query", domain.SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, results.Total())
}

func TestSearchEmbedFailure(t *testing.T) {
	embedder := queryEmbedder()
	embedder.embedErr = domain.ErrModelUnavailable
	svc := NewSearchService(embedder)

	_, err := svc.Search(context.Background(), indexOf(0.9), "query", domain.SearchOptions{})
	assert.ErrorIs(t, err, domain.ErrModelUnavailable)
}

func TestSearchThresholdScenario(t *testing.T) {
	// Passages scoring 0.85, 0.60, 0.45 and 0.20 against the query.
	idx := indexOf(0.85, 0.60, 0.45, 0.20)
	svc := NewSearchService(queryEmbedder())

	// Threshold 30%: three results pass, all in primary, overflow empty.
	results, err := svc.Search(context.Background(), idx, "query",
		domain.SearchOptions{TopK: 10, TopNPrimary: 3, MinRelevance: 30})
	require.NoError(t, err)
	require.Len(t, results.Primary, 3)
	assert.Empty(t, results.Overflow)
	assert.InDelta(t, 0.85, results.Primary[0].Score, 1e-6)
	assert.InDelta(t, 0.60, results.Primary[1].Score, 1e-6)
	assert.InDelta(t, 0.45, results.Primary[2].Score, 1e-6)
	assert.Equal(t, domain.TierHigh, results.Primary[0].Tier)
	assert.Equal(t, domain.TierMedium, results.Primary[1].Tier)
	assert.Equal(t, domain.TierLow, results.Primary[2].Tier)

	// Threshold 50%: exactly two pass.
	results, err = svc.Search(context.Background(), idx, "query",
		domain.SearchOptions{TopK: 10, TopNPrimary: 3, MinRelevance: 50})
	require.NoError(t, err)
	require.Len(t, results.Primary, 2)
	assert.Empty(t, results.Overflow)
}

func TestSearchThresholdMonotonicity(t *testing.T) {
	idx := indexOf(0.91, 0.72, 0.55, 0.48, 0.31, 0.12)
	svc := NewSearchService(queryEmbedder())

	prev := idx.Len() + 1
	for threshold := 0; threshold <= 100; threshold += 10 {
		results, err := svc.Search(context.Background(), idx, "query",
			domain.SearchOptions{TopK: 10, TopNPrimary: 3, MinRelevance: threshold})
		require.NoError(t, err)
		assert.LessOrEqual(t, results.Total(), prev,
			"raising the threshold must never increase result count")
		prev = results.Total()
	}
}

func TestSearchRankOrder(t *testing.T) {
	idx := indexOf(0.45, 0.85, 0.60, 0.85) // ordinals 0..3, ties at 0.85
	svc := NewSearchService(queryEmbedder())

	results, err := svc.Search(context.Background(), idx, "query",
		domain.SearchOptions{TopK: 10, TopNPrimary: 10, MinRelevance: 0})
	require.NoError(t, err)
	require.Len(t, results.Primary, 4)

	// Scores descend; the tie at 0.85 resolves by ordinal (1 before 3).
	assert.Equal(t, 1, results.Primary[0].Passage.Ordinal)
	assert.Equal(t, 3, results.Primary[1].Passage.Ordinal)
	assert.Equal(t, 2, results.Primary[2].Passage.Ordinal)
	assert.Equal(t, 0, results.Primary[3].Passage.Ordinal)

	for i := 1; i < len(results.Primary); i++ {
		a, b := results.Primary[i-1], results.Primary[i]
		ok := a.Score > b.Score ||
			(a.Score == b.Score && a.Passage.Ordinal < b.Passage.Ordinal)
		assert.True(t, ok, "rank violation at %d", i)
	}
}

func TestSearchTopKLimit(t *testing.T) {
	idx := indexOf(0.9, 0.8, 0.7, 0.6, 0.5)
	svc := NewSearchService(queryEmbedder())

	results, err := svc.Search(context.Background(), idx, "query",
		domain.SearchOptions{TopK: 2, TopNPrimary: 3, MinRelevance: 0})
	require.NoError(t, err)
	assert.Equal(t, 2, results.Total())
}

func TestSearchOverflowSplit(t *testing.T) {
	idx := indexOf(0.9, 0.8, 0.7, 0.6, 0.5)
	svc := NewSearchService(queryEmbedder())

	results, err := svc.Search(context.Background(), idx, "query",
		domain.SearchOptions{TopK: 10, TopNPrimary: 3, MinRelevance: 30})
	require.NoError(t, err)
	assert.Len(t, results.Primary, 3)
	assert.Len(t, results.Overflow, 2)

	// No element appears in both groups.
	seen := map[int]bool{}
	for _, r := range append(append([]domain.SearchResult{}, results.Primary...), results.Overflow...) {
		assert.False(t, seen[r.Passage.Ordinal])
		seen[r.Passage.Ordinal] = true
	}
}

func TestSearchDeterminism(t *testing.T) {
	idx := indexOf(0.62, 0.62, 0.91, 0.40, 0.33)
	svc := NewSearchService(queryEmbedder())
	opts := domain.SearchOptions{TopK: 10, TopNPrimary: 3, MinRelevance: 30}

	first, err := svc.Search(context.Background(), idx, "query", opts)
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), idx, "query", opts)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs rank identically")
}

func TestSearchDimensionMismatchScoresZero(t *testing.T) {
	idx := indexOf(0.9, 0.8)
	idx.Passages = append(idx.Passages, domain.Passage{
		DocumentID: "doc",
		Filename:   "doc.txt",
		Ordinal:    2,
		Text:       "passage",
	})
	idx.Vectors = append(idx.Vectors, []float32{1, 0}) // two dims vs the query's three
	svc := NewSearchService(queryEmbedder())

	results, err := svc.Search(context.Background(), idx, "query",
		domain.SearchOptions{TopK: 10, TopNPrimary: 10, MinRelevance: 30})
	require.NoError(t, err)

	// The mismatched vector scores zero instead of a partial product, so
	// it falls below any positive threshold rather than outranking real
	// matches.
	require.Equal(t, 2, results.Total())
	for _, r := range results.Primary {
		assert.NotEqual(t, 2, r.Passage.Ordinal)
	}
}

func TestSearchNilEmbedder(t *testing.T) {
	svc := NewSearchService(nil)

	_, err := svc.Search(context.Background(), indexOf(0.9), "query", domain.SearchOptions{})
	assert.True(t, errors.Is(err, domain.ErrModelUnavailable))
}
