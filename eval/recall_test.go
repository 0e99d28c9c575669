package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecallAtK(t *testing.T) {
	tests := []struct {
		name      string
		predicted []string
		relevant  []string
		k         int
		want      float64
	}{
		{
			name:      "all relevant found",
			predicted: []string{"a", "b", "c"},
			relevant:  []string{"a", "b"},
			k:         3,
			want:      1.0,
		},
		{
			name:      "half found",
			predicted: []string{"a", "x", "y"},
			relevant:  []string{"a", "b"},
			k:         3,
			want:      0.5,
		},
		{
			name:      "relevant below cutoff",
			predicted: []string{"x", "y", "a"},
			relevant:  []string{"a"},
			k:         2,
			want:      0.0,
		},
		{
			name:      "no relevant urls",
			predicted: []string{"a"},
			relevant:  nil,
			k:         10,
			want:      0.0,
		},
		{
			name:      "k beyond predictions",
			predicted: []string{"a"},
			relevant:  []string{"a", "b"},
			k:         10,
			want:      0.5,
		},
		{
			name:      "zero k",
			predicted: []string{"a"},
			relevant:  []string{"a"},
			k:         0,
			want:      0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RecallAtK(tt.predicted, tt.relevant, tt.k), 1e-9)
		})
	}
}

func TestMeanRecallAtK(t *testing.T) {
	predictions := [][]string{
		{"a", "b"},
		{"x", "y"},
	}
	groundTruths := [][]string{
		{"a"},      // recall 1.0
		{"a", "b"}, // recall 0.0
	}

	mean, err := MeanRecallAtK(predictions, groundTruths, 10)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mean, 1e-9)
}

func TestMeanRecallAtK_Mismatch(t *testing.T) {
	_, err := MeanRecallAtK([][]string{{"a"}}, nil, 10)
	assert.ErrorIs(t, err, ErrDatasetMismatch)
}

func TestMeanRecallAtK_Empty(t *testing.T) {
	mean, err := MeanRecallAtK(nil, nil, 10)
	require.NoError(t, err)
	assert.Zero(t, mean)
}
