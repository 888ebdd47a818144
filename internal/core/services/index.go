package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/insyte-labs/insyte-cli/internal/chunker"
	"github.com/insyte-labs/insyte-cli/internal/core/domain"
	"github.com/insyte-labs/insyte-cli/internal/core/ports/driven"
	"github.com/insyte-labs/insyte-cli/internal/core/ports/driving"
	"github.com/insyte-labs/insyte-cli/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// IndexService builds per-project vector indexes and caches them keyed by
// the project's document-set fingerprint. A cached index is returned
// without any embedding calls as long as the fingerprint is unchanged;
// document changes produce a new fingerprint and force a rebuild.
type IndexService struct {
	store        driven.ProjectStore
	embedder     driven.EmbeddingService
	maxChunkSize int

	mu     sync.Mutex
	cache  map[string]*domain.ProjectIndex // projectID -> last built index
	builds map[string]*sync.Mutex          // projectID -> build lock
}

// NewIndexService creates a new index service. maxChunkSize <= 0 selects
// the default.
func NewIndexService(store driven.ProjectStore, embedder driven.EmbeddingService, maxChunkSize int) *IndexService {
	if maxChunkSize <= 0 {
		maxChunkSize = domain.DefaultMaxChunkSize
	}
	return &IndexService{
		store:        store,
		embedder:     embedder,
		maxChunkSize: maxChunkSize,
		cache:        make(map[string]*domain.ProjectIndex),
		builds:       make(map[string]*sync.Mutex),
	}
}

// BuildIndex returns the index for the project's current document set.
//
// At most one build runs per project at a time: a concurrent caller blocks
// on the project's build lock and then observes the freshly cached index
// instead of duplicating the work. A build publishes its index atomically
// on completion; partial state is never visible to searchers.
func (s *IndexService) BuildIndex(ctx context.Context, projectID string) (*domain.ProjectIndex, error) {
	if s.store == nil {
		return nil, fmt.Errorf("project store unavailable")
	}
	if s.embedder == nil {
		return nil, domain.ErrModelUnavailable
	}

	docs, err := s.store.ListDocuments(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrEmptyIndex
	}

	fingerprint := fingerprintDocuments(docs)

	if idx := s.cachedIndex(projectID, fingerprint); idx != nil {
		logger.Debug("Index cache hit for project %s (%d passages)", projectID, idx.Len())
		return idx, nil
	}

	// Serialize builds per project.
	buildMu := s.buildLock(projectID)
	buildMu.Lock()
	defer buildMu.Unlock()

	// A concurrent builder may have finished while we waited for the lock.
	if idx := s.cachedIndex(projectID, fingerprint); idx != nil {
		return idx, nil
	}

	idx, err := s.build(ctx, projectID, fingerprint, docs)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[projectID] = idx
	s.mu.Unlock()

	return idx, nil
}

// Invalidate drops any cached index for the project.
func (s *IndexService) Invalidate(projectID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, projectID)
}

// build chunks every document in order, batch-embeds the global passage
// sequence and zips vectors with passages.
func (s *IndexService) build(
	ctx context.Context, projectID, fingerprint string, docs []domain.Document,
) (*domain.ProjectIndex, error) {
	logger.Section("Index Build")
	logger.Debug("Project %s: %d documents, max chunk size %d", projectID, len(docs), s.maxChunkSize)

	var passages []domain.Passage
	for _, doc := range docs {
		spans := chunker.Split(doc.Content, s.maxChunkSize)
		for _, span := range spans {
			span.DocumentID = doc.ID
			span.Filename = doc.Filename
			span.Ordinal = len(passages)
			passages = append(passages, span)
		}
		logger.Debug("Document %s (%s): %d passages", doc.ID, doc.Filename, len(spans))
	}

	if len(passages) == 0 {
		return nil, domain.ErrEmptyIndex
	}

	texts := make([]string, len(passages))
	for i, p := range passages {
		texts[i] = p.Text
	}

	logger.Info("Embedding %d passages", len(texts))
	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed passages: %w", err)
	}
	if len(vectors) != len(passages) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d passages", len(vectors), len(passages))
	}

	// Drop passages the embedder could not handle; the build proceeds with
	// the rest. Ordinals are reassigned so the tiebreak order stays dense.
	keptPassages := make([]domain.Passage, 0, len(passages))
	keptVectors := make([][]float32, 0, len(vectors))
	dropped := 0
	for i, vec := range vectors {
		if len(vec) == 0 {
			dropped++
			continue
		}
		p := passages[i]
		p.Ordinal = len(keptPassages)
		keptPassages = append(keptPassages, p)
		keptVectors = append(keptVectors, vec)
	}
	if dropped > 0 {
		logger.Warn("Dropped %d unembeddable passages", dropped)
	}
	if len(keptPassages) == 0 {
		return nil, domain.ErrEmptyIndex
	}

	logger.Info("Index built: %d passages, %d dimensions", len(keptPassages), len(keptVectors[0]))

	return &domain.ProjectIndex{
		ProjectID:   projectID,
		Fingerprint: fingerprint,
		Passages:    keptPassages,
		Vectors:     keptVectors,
	}, nil
}

// cachedIndex returns the cached index when its fingerprint matches.
func (s *IndexService) cachedIndex(projectID, fingerprint string) *domain.ProjectIndex {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.cache[projectID]
	if idx != nil && idx.Fingerprint == fingerprint {
		return idx
	}
	return nil
}

// buildLock returns the per-project build mutex, creating it on first use.
func (s *IndexService) buildLock(projectID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.builds[projectID]
	if !ok {
		m = &sync.Mutex{}
		s.builds[projectID] = m
	}
	return m
}

// fingerprintDocuments hashes the ordered document IDs and content so an
// unchanged document set maps to the same fingerprint.
func fingerprintDocuments(docs []domain.Document) string {
	h := sha256.New()
	for _, doc := range docs {
		h.Write([]byte(doc.ID))
		h.Write([]byte{0})
		h.Write([]byte(doc.Content))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
