package domain

// Default search configuration values.
const (
	// DefaultMaxChunkSize is the maximum passage length in bytes.
	DefaultMaxChunkSize = 800

	// DefaultTopK is the maximum number of candidates a search considers.
	DefaultTopK = 10

	// DefaultTopNPrimary is the size of the primary result group.
	DefaultTopNPrimary = 3

	// DefaultMinRelevance is the minimum display percentage a result must
	// reach to be returned.
	DefaultMinRelevance = 30
)

// SearchOptions configures a search query.
type SearchOptions struct {
	// TopK is the maximum number of candidates ranked per query.
	TopK int

	// TopNPrimary is the size of the primary group in the result split.
	TopNPrimary int

	// MinRelevance is the inclusive minimum display percentage.
	MinRelevance int
}

// DefaultSearchOptions returns options with all defaults applied.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		TopK:         DefaultTopK,
		TopNPrimary:  DefaultTopNPrimary,
		MinRelevance: DefaultMinRelevance,
	}
}

// Normalized fills in defaults for zero or negative fields.
func (o SearchOptions) Normalized() SearchOptions {
	if o.TopK <= 0 {
		o.TopK = DefaultTopK
	}
	if o.TopNPrimary <= 0 {
		o.TopNPrimary = DefaultTopNPrimary
	}
	if o.MinRelevance < 0 {
		o.MinRelevance = DefaultMinRelevance
	}
	return o
}

// SearchResult is a single scored passage. Derived per query, never
// persisted.
type SearchResult struct {
	// Passage is the matched passage.
	Passage Passage

	// Score is the raw cosine similarity against the query vector.
	Score float64

	// Percentage is the human-facing similarity percentage.
	Percentage int

	// Tier is the relevance bucket derived from Percentage.
	Tier Tier
}

// RankedResults is the final result grouping: a primary head of at most
// TopNPrimary results, and an overflow tail with everything else that
// passed the relevance threshold.
type RankedResults struct {
	Primary  []SearchResult
	Overflow []SearchResult
}

// Total returns the number of results across both groups.
func (r RankedResults) Total() int {
	return len(r.Primary) + len(r.Overflow)
}

// Aggregate splits a rank-ordered, threshold-passed result sequence into
// primary and overflow groups. The two groups are disjoint and together
// contain exactly the input sequence; when fewer than topN results exist,
// primary holds all of them and overflow stays empty.
//
// Multiple passages from the same document are kept as separate results: a
// document can be relevant in more than one place.
func Aggregate(ranked []SearchResult, topN int) RankedResults {
	if topN <= 0 {
		topN = DefaultTopNPrimary
	}
	if len(ranked) <= topN {
		return RankedResults{Primary: ranked}
	}
	return RankedResults{
		Primary:  ranked[:topN],
		Overflow: ranked[topN:],
	}
}
