package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated from content so that identical catalog URLs
// always map to the same ID.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Category classifies an assessment within the fixed catalog taxonomy.
type Category string

const (
	// CategoryTechnical covers knowledge and skills tests (programming, SQL, tools).
	CategoryTechnical Category = "technical"
	// CategoryCognitive covers general ability tests (reasoning, numeracy, verbal).
	CategoryCognitive Category = "cognitive"
	// CategoryBehavioral covers personality and behavior questionnaires.
	CategoryBehavioral Category = "behavioral"
	// CategoryDomain covers role or industry specific assessments.
	CategoryDomain Category = "domain"
)

// Categories lists every valid taxonomy category.
var Categories = []Category{
	CategoryTechnical,
	CategoryCognitive,
	CategoryBehavioral,
	CategoryDomain,
}

// IsValidCategory reports whether c is part of the taxonomy.
func IsValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Assessment represents a single catalog test item.
// The Vector field is populated by the ingestion pipeline and remains
// immutable once the catalog is loaded for serving.
type Assessment struct {
	Id          ID
	URL         string
	Name        string
	Description string
	Duration    int // minutes
	Adaptive    bool
	Remote      bool
	Categories  []Category
	Vector      []float32
}

// HasCategory reports whether the assessment carries the given category tag.
func (a *Assessment) HasCategory(c Category) bool {
	for _, tag := range a.Categories {
		if tag == c {
			return true
		}
	}
	return false
}

// Candidate is a retrieved assessment with its retrieval rank and scores.
// Candidates are always ordered by the most recently applied score;
// ties fall back to the original retrieval rank.
type Candidate struct {
	AssessmentId ID
	Rank         int     // 0-based position in the original retrieval order
	Similarity   float32 // bounded similarity derived from vector distance
	Reranked     bool
	RerankScore  float32
}

// Recommendation is the read-only output projection of an Assessment.
// It is never mutated after construction.
type Recommendation struct {
	URL         string     `json:"url"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Duration    int        `json:"duration"`
	Adaptive    bool       `json:"adaptive_support"`
	Remote      bool       `json:"remote_support"`
	Categories  []Category `json:"test_type"`
}

// NewRecommendation projects an Assessment into its output view.
func NewRecommendation(a *Assessment) Recommendation {
	categories := make([]Category, len(a.Categories))
	copy(categories, a.Categories)
	return Recommendation{
		URL:         a.URL,
		Name:        a.Name,
		Description: a.Description,
		Duration:    a.Duration,
		Adaptive:    a.Adaptive,
		Remote:      a.Remote,
		Categories:  categories,
	}
}
