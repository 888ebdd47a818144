package driven

import (
	"context"

	"github.com/insyte-labs/insyte-cli/internal/core/domain"
)

// ProjectStore persists projects and their documents.
// Backed by SQLite; an in-memory implementation exists for tests.
//
// The search core treats document reads as pure: index building never
// writes back through this interface.
type ProjectStore interface {
	// SaveProject stores a new project.
	SaveProject(ctx context.Context, project *domain.Project) error

	// GetProject retrieves a project by ID.
	GetProject(ctx context.Context, id string) (*domain.Project, error)

	// GetProjectByName retrieves a project by its unique name.
	GetProjectByName(ctx context.Context, name string) (*domain.Project, error)

	// ListProjects returns all projects with document counts, ordered by
	// creation time.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// DeleteProject removes a project and all its documents.
	DeleteProject(ctx context.Context, id string) error

	// SaveDocument stores a document under its project.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns a project's documents ordered by upload time.
	// The order is stable across calls with an unchanged document set.
	ListDocuments(ctx context.Context, projectID string) ([]domain.Document, error)

	// DeleteDocument removes a single document.
	DeleteDocument(ctx context.Context, id string) error
}
