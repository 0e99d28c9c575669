package eval

import "errors"

var (
	// ErrEngineRequired is returned when an evaluator is built without an engine.
	ErrEngineRequired = errors.New("recommendation engine required")

	// ErrDatasetMismatch indicates prediction and ground-truth counts disagree.
	ErrDatasetMismatch = errors.New("predictions and ground truths must align")

	// ErrMalformedDataset indicates the labeled dataset could not be parsed.
	ErrMalformedDataset = errors.New("malformed evaluation dataset")

	// ErrEmptyDataset indicates a dataset with no labeled queries.
	ErrEmptyDataset = errors.New("evaluation dataset has no queries")
)
