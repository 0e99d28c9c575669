package core

import (
	"errors"
	"testing"
)

func validAssessment() *Assessment {
	return &Assessment{
		Id:          IDFromContent("https://example.com/catalog/java-8"),
		URL:         "https://example.com/catalog/java-8",
		Name:        "Java 8",
		Description: "Measures knowledge of Java 8 language features.",
		Duration:    25,
		Adaptive:    false,
		Remote:      true,
		Categories:  []Category{CategoryTechnical},
	}
}

func TestValidateAssessment(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Assessment)
		wantErr error
	}{
		{
			name:    "valid assessment",
			mutate:  func(a *Assessment) {},
			wantErr: nil,
		},
		{
			name:    "empty url",
			mutate:  func(a *Assessment) { a.URL = "  " },
			wantErr: ErrEmptyURL,
		},
		{
			name:    "empty name",
			mutate:  func(a *Assessment) { a.Name = "" },
			wantErr: ErrEmptyName,
		},
		{
			name:    "empty description",
			mutate:  func(a *Assessment) { a.Description = "" },
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "zero duration",
			mutate:  func(a *Assessment) { a.Duration = 0 },
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "negative duration",
			mutate:  func(a *Assessment) { a.Duration = -5 },
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "no categories",
			mutate:  func(a *Assessment) { a.Categories = nil },
			wantErr: ErrNoCategories,
		},
		{
			name:    "unknown category",
			mutate:  func(a *Assessment) { a.Categories = []Category{"astrology"} },
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAssessment()
			tt.mutate(a)

			err := ValidateAssessment(a)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssessment() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidAssessment) {
				t.Errorf("ValidateAssessment() error = %v, want wrapped ErrInvalidAssessment", err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssessment() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAssessment_Nil(t *testing.T) {
	if err := ValidateAssessment(nil); !errors.Is(err, ErrInvalidAssessment) {
		t.Errorf("ValidateAssessment(nil) error = %v, want ErrInvalidAssessment", err)
	}
}

func TestValidateQueryText(t *testing.T) {
	if err := ValidateQueryText("need a SQL-skilled analyst"); err != nil {
		t.Errorf("ValidateQueryText() error = %v, want nil", err)
	}

	for _, text := range []string{"", "   ", "\t\n"} {
		if err := ValidateQueryText(text); !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("ValidateQueryText(%q) error = %v, want ErrEmptyQuery", text, err)
		}
	}
}
