package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentsift/talentsift/core"
)

const validCatalogJSON = `[
	{
		"name": "Java Programming Test",
		"url": "https://example.com/catalog/java",
		"description": "Core Java knowledge for developers.",
		"duration": 40,
		"adaptive_support": "No",
		"remote_support": "Yes",
		"test_type": ["technical"]
	},
	{
		"name": "Workplace Personality Profile",
		"url": "https://example.com/catalog/personality",
		"description": "Behavioral tendencies at work.",
		"duration": 25,
		"adaptive_support": "Yes",
		"remote_support": "Yes",
		"test_type": ["behavioral", "cognitive"]
	}
]`

func TestParseCatalog(t *testing.T) {
	assessments, err := ParseCatalog(strings.NewReader(validCatalogJSON))
	require.NoError(t, err)
	require.Len(t, assessments, 2)

	java := assessments[0]
	assert.Equal(t, "Java Programming Test", java.Name)
	assert.Equal(t, "https://example.com/catalog/java", java.URL)
	assert.Equal(t, 40, java.Duration)
	assert.False(t, java.Adaptive)
	assert.True(t, java.Remote)
	assert.Equal(t, []core.Category{core.CategoryTechnical}, java.Categories)
	assert.Equal(t, core.IDFromContent(java.URL), java.Id)
	assert.Empty(t, java.Vector, "vectors are populated by the pipeline, not the loader")

	personality := assessments[1]
	assert.True(t, personality.Adaptive)
	assert.Equal(t, []core.Category{core.CategoryBehavioral, core.CategoryCognitive}, personality.Categories)
}

func TestParseCatalog_DuplicateURLKeepsFirst(t *testing.T) {
	doubled := `[
		{"name": "First", "url": "https://example.com/x", "description": "first copy",
		 "duration": 10, "adaptive_support": "No", "remote_support": "Yes", "test_type": ["technical"]},
		{"name": "Second", "url": "https://example.com/x", "description": "second copy",
		 "duration": 20, "adaptive_support": "No", "remote_support": "Yes", "test_type": ["technical"]}
	]`
	assessments, err := ParseCatalog(strings.NewReader(doubled))
	require.NoError(t, err)
	require.Len(t, assessments, 1)
	assert.Equal(t, "First", assessments[0].Name)
}

func TestParseCatalog_NormalizesCategoryCase(t *testing.T) {
	input := `[
		{"name": "Test", "url": "https://example.com/x", "description": "d",
		 "duration": 10, "adaptive_support": "no", "remote_support": "YES", "test_type": ["Technical"]}
	]`
	assessments, err := ParseCatalog(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []core.Category{core.CategoryTechnical}, assessments[0].Categories)
	assert.True(t, assessments[0].Remote)
}

func TestParseCatalog_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr error
	}{
		{
			name:    "not json",
			json:    `not a catalog`,
			wantErr: ErrMalformedCatalog,
		},
		{
			name: "missing name",
			json: `[{"url": "https://example.com/x", "description": "d",
				"duration": 10, "adaptive_support": "No", "remote_support": "Yes", "test_type": ["technical"]}]`,
			wantErr: ErrMissingField,
		},
		{
			name: "missing url",
			json: `[{"name": "n", "description": "d",
				"duration": 10, "adaptive_support": "No", "remote_support": "Yes", "test_type": ["technical"]}]`,
			wantErr: ErrMissingField,
		},
		{
			name: "zero duration",
			json: `[{"name": "n", "url": "https://example.com/x", "description": "d",
				"duration": 0, "adaptive_support": "No", "remote_support": "Yes", "test_type": ["technical"]}]`,
			wantErr: ErrMissingField,
		},
		{
			name: "empty test type",
			json: `[{"name": "n", "url": "https://example.com/x", "description": "d",
				"duration": 10, "adaptive_support": "No", "remote_support": "Yes", "test_type": []}]`,
			wantErr: ErrMissingField,
		},
		{
			name: "unknown category",
			json: `[{"name": "n", "url": "https://example.com/x", "description": "d",
				"duration": 10, "adaptive_support": "No", "remote_support": "Yes", "test_type": ["psychometric"]}]`,
			wantErr: ErrUnknownCategory,
		},
		{
			name: "bad support flag",
			json: `[{"name": "n", "url": "https://example.com/x", "description": "d",
				"duration": 10, "adaptive_support": "maybe", "remote_support": "Yes", "test_type": ["technical"]}]`,
			wantErr: ErrInvalidSupportFlag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog(strings.NewReader(tt.json))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
