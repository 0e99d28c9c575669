package recommend

import (
	"testing"

	"github.com/talentsift/talentsift/core"
)

func TestInferEmphasis(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		profile    EmphasisProfile
		leadership bool
	}{
		{
			name:    "technical heavy",
			query:   "Hiring Java developers who can write SQL and Python",
			profile: EmphasisTechnicalHeavy,
		},
		{
			name:    "behavioral heavy",
			query:   "Looking for strong communication and teamwork with good collaboration",
			profile: EmphasisBehavioralHeavy,
		},
		{
			name:    "balanced when signals even",
			query:   "Python developer with collaboration and communication strengths",
			profile: EmphasisBalanced,
		},
		{
			name:    "no signals",
			query:   "someone great for our open role",
			profile: EmphasisBalanced,
		},
		{
			name:       "leadership trigger",
			query:      "Engineering manager for the platform team",
			profile:    EmphasisTechnicalHeavy,
			leadership: true,
		},
		{
			name:       "leadership without category lean",
			query:      "Head of operations",
			profile:    EmphasisBalanced,
			leadership: true,
		},
		{
			name:    "punctuation and case ignored",
			query:   "DEVELOPER, CODING!",
			profile: EmphasisTechnicalHeavy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emphasis := InferEmphasis(tt.query)
			if emphasis.Profile != tt.profile {
				t.Errorf("expected profile %q, got %q (weights %v)", tt.profile, emphasis.Profile, emphasis.Weights)
			}
			if emphasis.Leadership != tt.leadership {
				t.Errorf("expected leadership=%v, got %v", tt.leadership, emphasis.Leadership)
			}
		})
	}
}

func TestInferEmphasis_Deterministic(t *testing.T) {
	query := "Java developer with stakeholder communication"
	first := InferEmphasis(query)
	second := InferEmphasis(query)
	if first.Profile != second.Profile || first.Leadership != second.Leadership {
		t.Errorf("emphasis not deterministic: %+v vs %+v", first, second)
	}
	for category, weight := range first.Weights {
		if second.Weights[category] != weight {
			t.Errorf("weight for %s differs: %f vs %f", category, weight, second.Weights[category])
		}
	}
	if _, ok := first.Weights[core.CategoryTechnical]; !ok {
		t.Error("expected technical weight for developer query")
	}
}
