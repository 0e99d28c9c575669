package catalog

import (
	"context"

	"github.com/talentsift/talentsift/core"
)

// Repository provides access to the assessment catalog.
// Implementations must be thread-safe and support concurrent access.
//
// The catalog is written once by the ingestion pipeline and read-only at
// serving time; there is no mutation path after the index is built.
type Repository interface {
	// PutAssessments stores one or more assessments.
	// Assessments with ID 0 get a content-based ID derived from their URL.
	// Returns the assessments with IDs populated.
	PutAssessments(ctx context.Context, assessments ...*core.Assessment) ([]*core.Assessment, error)

	// GetAssessment retrieves a single assessment by ID.
	// Returns ErrNotFound if the assessment doesn't exist.
	GetAssessment(ctx context.Context, id core.ID) (*core.Assessment, error)

	// GetAssessments retrieves multiple assessments by their IDs.
	// Returns only the assessments that exist (no error for missing ones).
	GetAssessments(ctx context.Context, ids ...core.ID) ([]*core.Assessment, error)

	// All returns every assessment in catalog insertion order.
	All(ctx context.Context) ([]*core.Assessment, error)

	// Count returns the number of assessments in the catalog.
	Count(ctx context.Context) (int, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
