package eval

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// LabeledQuery is a single evaluation example: a query with the catalog
// URLs judged relevant to it.
type LabeledQuery struct {
	Query        string   `json:"query"`
	RelevantURLs []string `json:"relevant_urls"`
}

// LoadDataset reads a labeled dataset from a JSON file.
func LoadDataset(path string) ([]LabeledQuery, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	dataset, err := ParseDataset(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dataset, nil
}

// ParseDataset decodes and validates a labeled dataset.
func ParseDataset(r io.Reader) ([]LabeledQuery, error) {
	var dataset []LabeledQuery
	if err := json.NewDecoder(r).Decode(&dataset); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDataset, err)
	}
	if len(dataset) == 0 {
		return nil, ErrEmptyDataset
	}
	for i, example := range dataset {
		if strings.TrimSpace(example.Query) == "" {
			return nil, fmt.Errorf("%w: example %d has an empty query", ErrMalformedDataset, i)
		}
		if len(example.RelevantURLs) == 0 {
			return nil, fmt.Errorf("%w: example %d has no relevant urls", ErrMalformedDataset, i)
		}
	}
	return dataset, nil
}
