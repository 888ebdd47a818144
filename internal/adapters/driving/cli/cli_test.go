package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/insyte-labs/insyte-cli/internal/adapters/driven/storage/memory"
	"github.com/insyte-labs/insyte-cli/internal/core/domain"
	"github.com/insyte-labs/insyte-cli/internal/core/services"
)

// constEmbedder returns the same unit vector for every text, so any query
// matches any passage at 100%.
type constEmbedder struct{}

func (constEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return []float32{1, 0}, nil
}

func (e constEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0}
	}
	return out, nil
}

func (constEmbedder) Dimensions() int              { return 2 }
func (constEmbedder) ModelName() string            { return "const" }
func (constEmbedder) Ping(_ context.Context) error { return nil }
func (constEmbedder) Close() error                 { return nil }

// setupTestServices wires the commands to real services over an in-memory
// store and restores the previous wiring on cleanup.
func setupTestServices(t *testing.T) {
	t.Helper()

	oldProject, oldDocument := projectService, documentService
	oldIndex, oldSearch := indexService, searchService
	oldSettings := searchSettings

	store := memory.NewProjectStore()
	index := services.NewIndexService(store, constEmbedder{}, domain.DefaultMaxChunkSize)
	projectService = services.NewProjectService(store, index)
	documentService = services.NewDocumentService(store, index)
	indexService = index
	searchService = services.NewSearchService(constEmbedder{})
	searchSettings = domain.DefaultAppSettings().Search

	t.Cleanup(func() {
		projectService, documentService = oldProject, oldDocument
		indexService, searchService = oldIndex, oldSearch
		searchSettings = oldSettings
	})
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// seedProject creates a project with one document through the services.
func seedProject(t *testing.T, name, filename, content string) *domain.Project {
	t.Helper()
	ctx := context.Background()

	project, err := projectService.Create(ctx, name, "")
	require.NoError(t, err)
	_, err = documentService.Add(ctx, project.ID, filename, content)
	require.NoError(t, err)
	return project
}
