// Command insyte is a project-scoped semantic document search CLI.
package main

import (
	"fmt"
	"os"

	"github.com/insyte-labs/insyte-cli/internal/adapters/driven/ai"
	configfile "github.com/insyte-labs/insyte-cli/internal/adapters/driven/config/file"
	"github.com/insyte-labs/insyte-cli/internal/adapters/driven/storage/sqlite"
	"github.com/insyte-labs/insyte-cli/internal/adapters/driving/cli"
	"github.com/insyte-labs/insyte-cli/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configfile.Load("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	settings := cfg.Settings()

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	// Lazy embedder: backends are only contacted when a command searches
	embedder := ai.CreateLazyEmbeddingService(settings.Embedding)
	defer embedder.Close()

	indexService := services.NewIndexService(store, embedder, settings.Search.MaxChunkSize)
	searchService := services.NewSearchService(embedder)
	projectService := services.NewProjectService(store, indexService)
	documentService := services.NewDocumentService(store, indexService)

	cli.SetVersion(version)
	cli.SetProjectService(projectService)
	cli.SetDocumentService(documentService)
	cli.SetIndexService(indexService)
	cli.SetSearchService(searchService)
	cli.SetSearchSettings(settings.Search)

	return cli.Execute()
}
