package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/insyte-labs/insyte-cli/internal/core/domain"
	"github.com/insyte-labs/insyte-cli/internal/core/ports/driven"
	"github.com/insyte-labs/insyte-cli/internal/core/ports/driving"
	"github.com/insyte-labs/insyte-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService ranks a project's indexed passages against a query by
// cosine similarity. The scan is a deliberate brute-force pass over every
// passage vector: index sizes are bounded by one user's project, so exact
// ranking beats approximate structures here.
type SearchService struct {
	embedder driven.EmbeddingService
}

// NewSearchService creates a new search service.
func NewSearchService(embedder driven.EmbeddingService) *SearchService {
	return &SearchService{embedder: embedder}
}

// scoredPassage holds one candidate before classification.
type scoredPassage struct {
	passage domain.Passage
	score   float64
}

// Search embeds the query and ranks every indexed passage against it.
func (s *SearchService) Search(
	ctx context.Context, index *domain.ProjectIndex, query string, opts domain.SearchOptions,
) (*domain.RankedResults, error) {
	logger.Section("Search Execution")

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidQuery
	}
	if s.embedder == nil {
		return nil, domain.ErrModelUnavailable
	}

	opts = opts.Normalized()
	logger.Debug("Query: %q, top_k=%d, top_n=%d, min_relevance=%d%%",
		query, opts.TopK, opts.TopNPrimary, opts.MinRelevance)

	if index == nil || index.Len() == 0 {
		logger.Debug("Empty index, returning no results")
		return &domain.RankedResults{}, nil
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	candidates := scoreAll(index, queryVec)
	rankCandidates(candidates)

	if len(candidates) > opts.TopK {
		candidates = candidates[:opts.TopK]
	}
	logger.Debug("Ranked %d candidates", len(candidates))

	var ranked []domain.SearchResult
	for _, c := range candidates {
		if !domain.PassesThreshold(c.score, opts.MinRelevance) {
			continue
		}
		ranked = append(ranked, domain.SearchResult{
			Passage:    c.passage,
			Score:      c.score,
			Percentage: domain.Percentage(c.score),
			Tier:       domain.ClassifyScore(c.score),
		})
	}
	logger.Info("%d results above %d%% threshold", len(ranked), opts.MinRelevance)

	results := domain.Aggregate(ranked, opts.TopNPrimary)
	return &results, nil
}

// scoreAll computes the dot product of the query vector against every
// passage vector. Vectors are unit-normalized, so this is cosine
// similarity. A passage whose vector length differs from the query's
// scores zero: the index and query came from different models, and a
// partial product would rank it on garbage.
func scoreAll(index *domain.ProjectIndex, queryVec []float32) []scoredPassage {
	candidates := make([]scoredPassage, index.Len())
	mismatched := 0
	for i, vec := range index.Vectors {
		var score float64
		if len(vec) == len(queryVec) {
			score = dot(vec, queryVec)
		} else {
			mismatched++
		}
		candidates[i] = scoredPassage{
			passage: index.Passages[i],
			score:   score,
		}
	}
	if mismatched > 0 {
		logger.Warn("%d passages scored zero: vector dimensions do not match the query's %d",
			mismatched, len(queryVec))
	}
	return candidates
}

// rankCandidates sorts by descending score; equal scores fall back to
// ascending passage ordinal so identical inputs always rank identically.
func rankCandidates(candidates []scoredPassage) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].passage.Ordinal < candidates[j].passage.Ordinal
	})
}

// dot computes the inner product of two equal-length vectors.
func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
