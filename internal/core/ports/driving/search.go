package driving

import (
	"context"

	"github.com/insyte-labs/insyte-cli/internal/core/domain"
)

// IndexService builds and caches per-project vector indexes.
type IndexService interface {
	// BuildIndex returns the index for a project's current document set,
	// building it if the cached one is missing or stale. Fails with
	// domain.ErrEmptyIndex when the project has no indexable content and
	// domain.ErrModelUnavailable when embeddings cannot be generated.
	BuildIndex(ctx context.Context, projectID string) (*domain.ProjectIndex, error)

	// Invalidate drops any cached index for the project.
	Invalidate(projectID string)
}

// SearchService ranks a project's passages against a natural-language query.
type SearchService interface {
	// Search embeds the query, scores it against every indexed passage,
	// filters by the relevance threshold and splits the ranked results into
	// primary and overflow groups. Fails with domain.ErrInvalidQuery for a
	// blank query and domain.ErrModelUnavailable when embeddings cannot be
	// generated. An empty index produces empty results, not an error.
	Search(ctx context.Context, index *domain.ProjectIndex, query string, opts domain.SearchOptions) (*domain.RankedResults, error)
}
