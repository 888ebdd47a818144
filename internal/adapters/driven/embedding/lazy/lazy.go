// Package lazy defers embedding service construction until first use.
//
// Commands that never touch search (project create, doc list, ...) should
// not pay for a connectivity check against the embedding backend. The
// wrapper connects on the first Embed/EmbedBatch/Ping call and remembers
// the outcome for the life of the process.
package lazy

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/insyte-labs/insyte-cli/internal/core/domain"
	"github.com/insyte-labs/insyte-cli/internal/core/ports/driven"
)

// Ensure Service implements the interface.
var _ driven.EmbeddingService = (*Service)(nil)

// pingTimeout bounds the connectivity check on first use.
const pingTimeout = 5 * time.Second

// Factory constructs the underlying embedding service.
type Factory func() (driven.EmbeddingService, error)

// Service wraps an EmbeddingService that is built on first use.
type Service struct {
	factory Factory

	// Declared up front so callers can size vectors and report the model
	// without forcing a connection.
	model      string
	dimensions int

	once sync.Once
	svc  driven.EmbeddingService
	err  error
}

// New creates a lazy embedding service. model and dimensions describe the
// configured backend and are reported without connecting to it.
func New(factory Factory, model string, dimensions int) *Service {
	return &Service{
		factory:    factory,
		model:      model,
		dimensions: dimensions,
	}
}

// init builds and pings the underlying service exactly once. A failed
// init sticks: every later call reports the same unavailability. The
// connectivity check runs under its own deadline rather than the first
// caller's context, so a cancelled caller cannot latch a failure for the
// rest of the process.
func (s *Service) init() (driven.EmbeddingService, error) {
	s.once.Do(func() {
		svc, err := s.factory()
		if err != nil {
			s.err = fmt.Errorf("%w: %w", domain.ErrModelUnavailable, err)
			return
		}

		pingCtx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()
		if err := svc.Ping(pingCtx); err != nil {
			svc.Close()
			s.err = fmt.Errorf("%w: %w", domain.ErrModelUnavailable, err)
			return
		}
		s.svc = svc
	})
	return s.svc, s.err
}

// Embed generates an embedding, connecting to the backend if needed.
func (s *Service) Embed(ctx context.Context, text string) ([]float32, error) {
	svc, err := s.init()
	if err != nil {
		return nil, err
	}
	return svc.Embed(ctx, text)
}

// EmbedBatch generates embeddings, connecting to the backend if needed.
func (s *Service) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	svc, err := s.init()
	if err != nil {
		return nil, err
	}
	return svc.EmbedBatch(ctx, texts)
}

// Dimensions returns the configured embedding vector size.
func (s *Service) Dimensions() int {
	return s.dimensions
}

// ModelName returns the configured embedding model name.
func (s *Service) ModelName() string {
	return s.model
}

// Ping forces initialisation and reports backend reachability.
func (s *Service) Ping(_ context.Context) error {
	_, err := s.init()
	return err
}

// Close releases the underlying service if it was ever built.
func (s *Service) Close() error {
	if s.svc != nil {
		return s.svc.Close()
	}
	return nil
}
