package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/insyte-labs/insyte-cli/internal/core/domain"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Manage a project's documents",
	Long:  `Add, list, or remove documents within a project.`,
}

var docAddCmd = &cobra.Command{
	Use:   "add [project] [file...]",
	Short: "Add text files to a project",
	Long: `Reads one or more text files and stores their content as project
documents. Files are read as UTF-8 text; extract text from PDFs or other
binary formats before adding them.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runDocAdd,
}

var docListCmd = &cobra.Command{
	Use:   "list [project]",
	Short: "List a project's documents",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocList,
}

var docRmCmd = &cobra.Command{
	Use:   "rm [doc-id]",
	Short: "Remove a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocRm,
}

func init() {
	docCmd.AddCommand(docAddCmd)
	docCmd.AddCommand(docListCmd)
	docCmd.AddCommand(docRmCmd)
	rootCmd.AddCommand(docCmd)
}

func runDocAdd(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()
	project, err := resolveProject(ctx, args[0])
	if err != nil {
		return err
	}

	added := 0
	for _, path := range args[1:] {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		doc, err := documentService.Add(ctx, project.ID, filepath.Base(path), string(content))
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				cmd.Printf("Skipped %s: no text content\n", path)
				continue
			}
			return fmt.Errorf("adding %s: %w", path, err)
		}

		cmd.Printf("Added %s (%s, %d bytes)\n", doc.Filename, doc.ID, doc.FileSize)
		added++
	}

	cmd.Printf("Added %d documents to %q.\n", added, project.Name)
	return nil
}

func runDocList(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()
	project, err := resolveProject(ctx, args[0])
	if err != nil {
		return err
	}

	docs, err := documentService.List(ctx, project.ID)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Printf("No documents in project %q.\n", project.Name)
		return nil
	}

	cmd.Printf("Documents in %q:\n\n", project.Name)
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].Filename)
		cmd.Printf("    ID: %s\n", docs[i].ID)
		cmd.Printf("    Size: %d bytes\n", docs[i].FileSize)
		cmd.Printf("    Uploaded: %s\n", docs[i].UploadedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocRm(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	docID := args[0]
	if err := documentService.Delete(context.Background(), docID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("document %q not found", docID)
		}
		return fmt.Errorf("failed to remove document: %w", err)
	}

	cmd.Printf("Removed document %s.\n", docID)
	return nil
}
