package driving

import (
	"context"

	"github.com/insyte-labs/insyte-cli/internal/core/domain"
)

// ProjectService manages the project lifecycle.
type ProjectService interface {
	// Create makes a new project. Fails with domain.ErrAlreadyExists when
	// the name is taken and domain.ErrInvalidInput for a blank name.
	Create(ctx context.Context, name, description string) (*domain.Project, error)

	// Get retrieves a project by ID.
	Get(ctx context.Context, id string) (*domain.Project, error)

	// GetByName retrieves a project by name.
	GetByName(ctx context.Context, name string) (*domain.Project, error)

	// List returns all projects with document counts.
	List(ctx context.Context) ([]domain.Project, error)

	// Delete removes a project and its documents.
	Delete(ctx context.Context, id string) error
}

// DocumentService manages documents within a project.
type DocumentService interface {
	// Add stores extracted text as a new document.
	Add(ctx context.Context, projectID, filename, content string) (*domain.Document, error)

	// List returns a project's documents in upload order.
	List(ctx context.Context, projectID string) ([]domain.Document, error)

	// Delete removes a document.
	Delete(ctx context.Context, documentID string) error
}
