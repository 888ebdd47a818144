// Package memory provides an in-memory ProjectStore, used by tests and as
// a reference implementation of the storage contract.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/insyte-labs/insyte-cli/internal/core/domain"
	"github.com/insyte-labs/insyte-cli/internal/core/ports/driven"
)

// Ensure ProjectStore implements the interface.
var _ driven.ProjectStore = (*ProjectStore)(nil)

// ProjectStore is an in-memory implementation of driven.ProjectStore.
type ProjectStore struct {
	mu        sync.RWMutex
	projects  map[string]domain.Project
	documents map[string]domain.Document
}

// NewProjectStore creates a new in-memory project store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{
		projects:  make(map[string]domain.Project),
		documents: make(map[string]domain.Document),
	}
}

// SaveProject stores a new project.
func (s *ProjectStore) SaveProject(_ context.Context, project *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[project.ID] = *project
	return nil
}

// GetProject retrieves a project by ID.
func (s *ProjectStore) GetProject(_ context.Context, id string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.DocumentCount = s.countDocuments(id)
	return &p, nil
}

// GetProjectByName retrieves a project by its unique name.
func (s *ProjectStore) GetProjectByName(_ context.Context, name string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id := range s.projects {
		p := s.projects[id]
		if p.Name == name {
			p.DocumentCount = s.countDocuments(id)
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListProjects returns all projects ordered by creation time.
func (s *ProjectStore) ListProjects(_ context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Project, 0, len(s.projects))
	for id := range s.projects {
		p := s.projects[id]
		p.DocumentCount = s.countDocuments(id)
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// DeleteProject removes a project and all its documents.
func (s *ProjectStore) DeleteProject(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.projects, id)
	for docID, doc := range s.documents {
		if doc.ProjectID == id {
			delete(s.documents, docID)
		}
	}
	return nil
}

// SaveDocument stores a document under its project.
func (s *ProjectStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ID] = *doc
	return nil
}

// GetDocument retrieves a document by ID.
func (s *ProjectStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// ListDocuments returns a project's documents ordered by upload time, with
// ID as a stable tiebreak.
func (s *ProjectStore) ListDocuments(_ context.Context, projectID string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Document
	for id := range s.documents {
		doc := s.documents[id]
		if doc.ProjectID == projectID {
			result = append(result, doc)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].UploadedAt.Equal(result[j].UploadedAt) {
			return result[i].UploadedAt.Before(result[j].UploadedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// DeleteDocument removes a single document.
func (s *ProjectStore) DeleteDocument(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
	return nil
}

// countDocuments counts a project's documents (caller must hold a lock).
func (s *ProjectStore) countDocuments(projectID string) int {
	n := 0
	for _, doc := range s.documents {
		if doc.ProjectID == projectID {
			n++
		}
	}
	return n
}
