// Package cli provides the command-line interface.
//
// Services are injected by the composition root through the Set* functions
// before Execute runs. Commands fail with a clear error when a required
// service was never wired, rather than panicking on a nil pointer.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/insyte-labs/insyte-cli/internal/core/domain"
	"github.com/insyte-labs/insyte-cli/internal/core/ports/driving"
	"github.com/insyte-labs/insyte-cli/internal/logger"
)

// version is set by the composition root at startup.
var version = "dev"

// verbose enables debug logging to stderr.
var verbose bool

// Injected services.
var (
	projectService  driving.ProjectService
	documentService driving.DocumentService
	indexService    driving.IndexService
	searchService   driving.SearchService
	searchSettings  = domain.DefaultAppSettings().Search
)

var rootCmd = &cobra.Command{
	Use:   "insyte",
	Short: "Semantic document search for project workspaces",
	Long: `Insyte organises extracted document text into projects and answers
natural-language queries against them using embedding similarity.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetProjectService injects the project service.
func SetProjectService(svc driving.ProjectService) {
	projectService = svc
}

// SetDocumentService injects the document service.
func SetDocumentService(svc driving.DocumentService) {
	documentService = svc
}

// SetIndexService injects the index service.
func SetIndexService(svc driving.IndexService) {
	indexService = svc
}

// SetSearchService injects the search service.
func SetSearchService(svc driving.SearchService) {
	searchService = svc
}

// SetSearchSettings sets the configured search defaults.
func SetSearchSettings(settings domain.SearchSettings) {
	searchSettings = settings
}

// resolveProject looks a project up by name first, then by ID, so commands
// accept either.
func resolveProject(ctx context.Context, ref string) (*domain.Project, error) {
	if projectService == nil {
		return nil, errors.New("project service not configured")
	}

	project, err := projectService.GetByName(ctx, ref)
	if err == nil {
		return project, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	project, err = projectService.Get(ctx, ref)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("project %q not found", ref)
		}
		return nil, err
	}
	return project, nil
}
