package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/talentsift/talentsift/ai"
	"github.com/talentsift/talentsift/catalog"
	"github.com/talentsift/talentsift/core"
)

const (
	defaultBatchSize   = 16
	defaultMaxAttempts = 3
	defaultBaseDelay   = 500 * time.Millisecond
)

// Pipeline builds the serving catalog: it embeds cleaned assessments in
// batches on a worker pool and writes the vectored records to the
// repository. The build is all-or-nothing: any batch failure aborts the
// write so the index is never partially embedded.
type Pipeline struct {
	repository  catalog.Repository
	embedder    ai.Embedder
	pool        *ants.Pool
	batchSize   int
	maxAttempts int
	baseDelay   time.Duration
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many assessments are embedded per model call.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return fmt.Errorf("batch size must be positive, got %d", size)
		}
		p.batchSize = size
		return nil
	}
}

// WithRetry configures retry behavior for embedding calls.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(p *Pipeline) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		p.maxAttempts = maxAttempts
		p.baseDelay = baseDelay
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a catalog build pipeline.
func NewPipeline(repository catalog.Repository, provider ai.AIProvider, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrCatalogRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository:  repository,
		embedder:    provider.Embedder(),
		pool:        pool,
		batchSize:   defaultBatchSize,
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}
	p.logger = p.logger.With("component", "ingestion_pipeline")
	return p, nil
}

// Run embeds every assessment and writes the catalog. It returns the
// number of records written.
func (p *Pipeline) Run(ctx context.Context, assessments []*core.Assessment) (int, error) {
	if len(assessments) == 0 {
		return 0, nil
	}

	started := time.Now()
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for start := 0; start < len(assessments); start += p.batchSize {
		end := start + p.batchSize
		if end > len(assessments) {
			end = len(assessments)
		}
		batch := assessments[start:end]

		wg.Add(1)
		if submitErr := p.pool.Submit(func() {
			defer wg.Done()
			if err := p.embedBatch(ctx, batch); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}); submitErr != nil {
			wg.Done()
			mu.Lock()
			errs = append(errs, submitErr)
			mu.Unlock()
			break
		}
	}
	wg.Wait()

	if len(errs) > 0 {
		return 0, fmt.Errorf("catalog build failed: %w", errors.Join(errs...))
	}

	// All batches succeeded; verify dimensions agree before writing.
	dimension := len(assessments[0].Vector)
	for _, assessment := range assessments {
		if len(assessment.Vector) != dimension {
			return 0, fmt.Errorf("embedding dimensions disagree: %q has %d, expected %d",
				assessment.URL, len(assessment.Vector), dimension)
		}
	}

	if _, err := p.repository.PutAssessments(ctx, assessments...); err != nil {
		return 0, fmt.Errorf("failed to write catalog: %w", err)
	}

	p.logger.Info("catalog built",
		"assessments", len(assessments),
		"dimension", dimension,
		"elapsed", time.Since(started))
	return len(assessments), nil
}

func (p *Pipeline) embedBatch(ctx context.Context, batch []*core.Assessment) error {
	texts := make([]string, len(batch))
	for i, assessment := range batch {
		texts[i] = EmbeddingText(assessment)
	}

	var vectors [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var embedErr error
		vectors, embedErr = p.embedder.EmbedTexts(ctx, texts)
		return embedErr
	}, p.maxAttempts, p.baseDelay)
	if err != nil {
		return fmt.Errorf("failed to embed batch of %d: %w", len(batch), err)
	}
	if len(vectors) != len(batch) {
		return fmt.Errorf("%w: got %d vectors for %d texts", ErrEmbeddingCountMismatch, len(vectors), len(batch))
	}

	for i, assessment := range batch {
		assessment.Vector = core.NormalizeVector(vectors[i])
	}
	return nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// EmbeddingText composes the text embedded for an assessment. Keeping
// name, description, categories and duration in one string lets the
// vector carry all searchable signals.
func EmbeddingText(assessment *core.Assessment) string {
	categories := make([]string, len(assessment.Categories))
	for i, category := range assessment.Categories {
		categories[i] = string(category)
	}
	return fmt.Sprintf("%s. %s. Test type: %s. Duration: %d minutes.",
		assessment.Name, assessment.Description,
		strings.Join(categories, ", "), assessment.Duration)
}
