package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/insyte-labs/insyte-cli/internal/core/domain"
)

var (
	searchTopK      int
	searchThreshold int
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [project] [query]",
	Short: "Search a project's documents",
	Long: `Searches a project's documents by meaning rather than keywords.
The query and every document passage are embedded as vectors; passages are
ranked by cosine similarity and grouped into primary and additional matches.`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchTopK, "top-k", "n", 0, "maximum number of results (default from config)")
	searchCmd.Flags().IntVarP(&searchThreshold, "threshold", "t", -1, "minimum relevance percentage (default from config)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if indexService == nil || searchService == nil {
		return errors.New("search service not configured")
	}

	ctx := context.Background()
	project, err := resolveProject(ctx, args[0])
	if err != nil {
		return err
	}
	query := args[1]

	index, err := indexService.BuildIndex(ctx, project.ID)
	switch {
	case errors.Is(err, domain.ErrEmptyIndex):
		cmd.Printf("Project %q has no indexable documents. Add some with 'insyte doc add'.\n", project.Name)
		return nil
	case errors.Is(err, domain.ErrModelUnavailable):
		return fmt.Errorf("search unavailable: %w", err)
	case err != nil:
		return fmt.Errorf("building index: %w", err)
	}

	opts := domain.SearchOptions{
		TopK:         searchSettings.TopK,
		TopNPrimary:  searchSettings.TopNPrimary,
		MinRelevance: searchSettings.MinRelevance,
	}
	if searchTopK > 0 {
		opts.TopK = searchTopK
	}
	if searchThreshold >= 0 {
		opts.MinRelevance = searchThreshold
	}

	results, err := searchService.Search(ctx, index, query, opts)
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		return errors.New("query must not be empty")
	case errors.Is(err, domain.ErrModelUnavailable):
		return fmt.Errorf("search unavailable: %w", err)
	case err != nil:
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, query, results)
	}

	return outputSearchTable(cmd, results)
}

// jsonResult is the JSON view of a single search result.
type jsonResult struct {
	Filename   string `json:"filename"`
	DocumentID string `json:"document_id"`
	Ordinal    int    `json:"ordinal"`
	Percentage int    `json:"percentage"`
	Tier       string `json:"tier"`
	Text       string `json:"text"`
}

// jsonResults is the JSON view of a ranked result set.
type jsonResults struct {
	Query    string       `json:"query"`
	Total    int          `json:"total"`
	Primary  []jsonResult `json:"primary"`
	Overflow []jsonResult `json:"overflow"`
}

func outputSearchJSON(cmd *cobra.Command, query string, results *domain.RankedResults) error {
	view := jsonResults{
		Query:    query,
		Total:    results.Total(),
		Primary:  toJSONResults(results.Primary),
		Overflow: toJSONResults(results.Overflow),
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func toJSONResults(results []domain.SearchResult) []jsonResult {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		out[i] = jsonResult{
			Filename:   r.Passage.Filename,
			DocumentID: r.Passage.DocumentID,
			Ordinal:    r.Passage.Ordinal,
			Percentage: r.Percentage,
			Tier:       string(r.Tier),
			Text:       r.Passage.Text,
		}
	}
	return out
}

func outputSearchTable(cmd *cobra.Command, results *domain.RankedResults) error {
	if results.Total() == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Top matches:")
	cmd.Println()
	printResultGroup(cmd, results.Primary, 1)

	if len(results.Overflow) > 0 {
		cmd.Println("Additional matches:")
		cmd.Println()
		printResultGroup(cmd, results.Overflow, len(results.Primary)+1)
	}

	cmd.Printf("Total: %d results\n", results.Total())
	return nil
}

func printResultGroup(cmd *cobra.Command, results []domain.SearchResult, start int) {
	for i := range results {
		r := &results[i]
		cmd.Printf("  [%d] %s %d%% %s\n", start+i, r.Tier.Emoji(), r.Percentage, r.Passage.Filename)
		cmd.Printf("      %s\n", snippet(r.Passage.Text))
		cmd.Println()
	}
}

// snippetLen caps how much passage text the table shows per result.
const snippetLen = 160

func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLen {
		return text
	}
	return string(runes[:snippetLen]) + "..."
}
