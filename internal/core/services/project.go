package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/insyte-labs/insyte-cli/internal/core/domain"
	"github.com/insyte-labs/insyte-cli/internal/core/ports/driven"
	"github.com/insyte-labs/insyte-cli/internal/core/ports/driving"
)

// Ensure ProjectService implements the interface.
var _ driving.ProjectService = (*ProjectService)(nil)

// ProjectService manages the project lifecycle.
type ProjectService struct {
	store driven.ProjectStore
	index driving.IndexService
}

// NewProjectService creates a new project service. The index service is
// optional; when present, deleting a project also drops its cached index.
func NewProjectService(store driven.ProjectStore, index driving.IndexService) *ProjectService {
	return &ProjectService{store: store, index: index}
}

// Create makes a new project with a unique name.
func (s *ProjectService) Create(ctx context.Context, name, description string) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("project name: %w", domain.ErrInvalidInput)
	}

	existing, err := s.store.GetProjectByName(ctx, name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check project name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("project %q: %w", name, domain.ErrAlreadyExists)
	}

	project := &domain.Project{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now(),
	}
	if err := s.store.SaveProject(ctx, project); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	return project, nil
}

// Get retrieves a project by ID.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.store.GetProject(ctx, id)
}

// GetByName retrieves a project by name.
func (s *ProjectService) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	return s.store.GetProjectByName(ctx, strings.TrimSpace(name))
}

// List returns all projects with document counts.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.store.ListProjects(ctx)
}

// Delete removes a project, its documents and any cached index.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteProject(ctx, id); err != nil {
		return err
	}
	if s.index != nil {
		s.index.Invalidate(id)
	}
	return nil
}
