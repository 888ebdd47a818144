package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/insyte-labs/insyte-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Insyte.

Pick a project, type a question, and browse the ranked matches with
keyboard navigation.

Controls:
  ↑/k, ↓/j - Navigate projects
  Enter    - Select / Search
  Esc      - Back
  Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	if projectService == nil || indexService == nil || searchService == nil {
		return errors.New("search service not configured")
	}

	// Panic recovery keeps a stack trace visible after the alt screen closes
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app := tui.New(tui.Config{
		ProjectService: projectService,
		IndexService:   indexService,
		SearchService:  searchService,
		Settings:       searchSettings,
	})
	return app.Run()
}
