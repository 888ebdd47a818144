package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/insyte-labs/insyte-cli/internal/core/domain"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
	Long:  `Create, list, or delete projects. A project is an isolated collection of documents.`,
}

var projectCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectCreate,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	Args:  cobra.NoArgs,
	RunE:  runProjectList,
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a project and all its documents",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectDelete,
}

// projectDescription is a flag for the create command.
var projectDescription string

func init() {
	projectCreateCmd.Flags().StringVarP(&projectDescription, "description", "d", "", "project description")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProjectCreate(cmd *cobra.Command, args []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	ctx := context.Background()
	project, err := projectService.Create(ctx, args[0], projectDescription)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return fmt.Errorf("project %q already exists", args[0])
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	cmd.Printf("Created project %q (%s)\n", project.Name, project.ID)
	return nil
}

func runProjectList(cmd *cobra.Command, _ []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	projects, err := projectService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	if len(projects) == 0 {
		cmd.Println("No projects yet. Create one with 'insyte project create <name>'.")
		return nil
	}

	cmd.Println("Projects:")
	cmd.Println()
	for i := range projects {
		cmd.Printf("  %s\n", projects[i].Name)
		if projects[i].Description != "" {
			cmd.Printf("    %s\n", projects[i].Description)
		}
		cmd.Printf("    ID: %s\n", projects[i].ID)
		cmd.Printf("    Documents: %d\n", projects[i].DocumentCount)
		cmd.Printf("    Created: %s\n", projects[i].CreatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d projects\n", len(projects))
	return nil
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	project, err := resolveProject(ctx, args[0])
	if err != nil {
		return err
	}

	if err := projectService.Delete(ctx, project.ID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	cmd.Printf("Deleted project %q and its documents.\n", project.Name)
	return nil
}
