package ingestion

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/talentsift/talentsift/core"
)

// rawAssessment mirrors one record of the cleaned catalog JSON produced
// by the data-prep step.
type rawAssessment struct {
	Name            string   `json:"name"`
	URL             string   `json:"url"`
	Description     string   `json:"description"`
	Duration        int      `json:"duration"`
	AdaptiveSupport string   `json:"adaptive_support"`
	RemoteSupport   string   `json:"remote_support"`
	TestType        []string `json:"test_type"`
}

// LoadCatalog reads and validates a cleaned catalog JSON file.
func LoadCatalog(path string) ([]*core.Assessment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	assessments, err := ParseCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return assessments, nil
}

// ParseCatalog decodes a catalog JSON array into validated assessments.
// Records with missing required fields fail the whole parse; a broken
// catalog build should never produce a partial index. Duplicate URLs
// keep the first occurrence.
func ParseCatalog(r io.Reader) ([]*core.Assessment, error) {
	var raw []rawAssessment
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCatalog, err)
	}

	assessments := make([]*core.Assessment, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, record := range raw {
		assessment, err := convertRecord(record)
		if err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i, record.URL, err)
		}
		if seen[assessment.URL] {
			continue
		}
		seen[assessment.URL] = true
		assessments = append(assessments, assessment)
	}
	return assessments, nil
}

func convertRecord(record rawAssessment) (*core.Assessment, error) {
	name := strings.TrimSpace(record.Name)
	url := strings.TrimSpace(record.URL)
	description := strings.TrimSpace(record.Description)

	if url == "" {
		return nil, fmt.Errorf("%w: url", ErrMissingField)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description", ErrMissingField)
	}
	if record.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration", ErrMissingField)
	}
	if len(record.TestType) == 0 {
		return nil, fmt.Errorf("%w: test_type", ErrMissingField)
	}

	categories := make([]core.Category, len(record.TestType))
	for i, tag := range record.TestType {
		category := core.Category(strings.ToLower(strings.TrimSpace(tag)))
		if !core.IsValidCategory(category) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, tag)
		}
		categories[i] = category
	}

	adaptive, err := parseSupportFlag(record.AdaptiveSupport)
	if err != nil {
		return nil, fmt.Errorf("adaptive_support: %w", err)
	}
	remote, err := parseSupportFlag(record.RemoteSupport)
	if err != nil {
		return nil, fmt.Errorf("remote_support: %w", err)
	}

	assessment := &core.Assessment{
		Id:          core.IDFromContent(url),
		URL:         url,
		Name:        name,
		Description: description,
		Duration:    record.Duration,
		Adaptive:    adaptive,
		Remote:      remote,
		Categories:  categories,
	}
	if err := core.ValidateAssessment(assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

func parseSupportFlag(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidSupportFlag, value)
	}
}
