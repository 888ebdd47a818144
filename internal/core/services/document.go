package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/insyte-labs/insyte-cli/internal/core/domain"
	"github.com/insyte-labs/insyte-cli/internal/core/ports/driven"
	"github.com/insyte-labs/insyte-cli/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages documents within a project. It stores already
// extracted text; file-format parsing lives outside the core.
type DocumentService struct {
	store driven.ProjectStore
	index driving.IndexService
}

// NewDocumentService creates a new document service. The index service is
// optional; when present, document changes invalidate the project's cached
// index.
func NewDocumentService(store driven.ProjectStore, index driving.IndexService) *DocumentService {
	return &DocumentService{store: store, index: index}
}

// Add stores extracted text as a new document under the project.
func (s *DocumentService) Add(ctx context.Context, projectID, filename, content string) (*domain.Document, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, fmt.Errorf("filename: %w", domain.ErrInvalidInput)
	}

	// The project must exist before attaching documents to it.
	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	doc := &domain.Document{
		ID:         uuid.New().String(),
		ProjectID:  projectID,
		Filename:   filename,
		FileType:   strings.ToLower(filepath.Ext(filename)),
		Content:    content,
		FileSize:   int64(len(content)),
		UploadedAt: time.Now(),
	}
	if err := s.store.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	if s.index != nil {
		s.index.Invalidate(projectID)
	}
	return doc, nil
}

// List returns a project's documents in upload order.
func (s *DocumentService) List(ctx context.Context, projectID string) ([]domain.Document, error) {
	return s.store.ListDocuments(ctx, projectID)
}

// Delete removes a document and invalidates its project's cached index.
func (s *DocumentService) Delete(ctx context.Context, documentID string) error {
	doc, err := s.store.GetDocument(ctx, documentID)
	if err != nil {
		return err
	}
	if err := s.store.DeleteDocument(ctx, documentID); err != nil {
		return err
	}
	if s.index != nil {
		s.index.Invalidate(doc.ProjectID)
	}
	return nil
}
