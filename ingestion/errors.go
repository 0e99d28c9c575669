package ingestion

import "errors"

var (
	// ErrCatalogRepositoryRequired is returned when a catalog repository is not provided.
	ErrCatalogRepositoryRequired = errors.New("catalog repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrMalformedCatalog indicates the catalog file could not be parsed.
	ErrMalformedCatalog = errors.New("malformed catalog file")

	// ErrMissingField indicates a catalog record without a required field.
	// Ingestion treats this as fatal rather than skipping the record.
	ErrMissingField = errors.New("catalog record missing required field")

	// ErrUnknownCategory indicates a test_type value outside the taxonomy.
	ErrUnknownCategory = errors.New("unknown category tag")

	// ErrInvalidSupportFlag indicates an adaptive/remote value that is not Yes or No.
	ErrInvalidSupportFlag = errors.New("support flag must be Yes or No")

	// ErrInvalidMaxAttempts is returned when retry is configured with no attempts.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrEmbeddingCountMismatch indicates the embedding model returned a
	// different number of vectors than texts submitted.
	ErrEmbeddingCountMismatch = errors.New("embedding count does not match batch size")
)
