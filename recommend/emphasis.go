// Copyright 2025 Talentsift Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package recommend

import "github.com/talentsift/talentsift/core"

// EmphasisProfile classifies the category leaning of a query.
type EmphasisProfile string

const (
	EmphasisTechnicalHeavy  EmphasisProfile = "technical-heavy"
	EmphasisBehavioralHeavy EmphasisProfile = "behavioral-heavy"
	EmphasisBalanced        EmphasisProfile = "balanced"
)

// Emphasis captures the category signals inferred from a query by
// simple keyword analysis. It drives the category balancer, never the
// vector retrieval itself.
type Emphasis struct {
	Profile    EmphasisProfile
	Leadership bool
	Weights    map[core.Category]float64
}

// categoryTriggers maps keywords to the category they signal. Extending
// emphasis detection means adding rows here, not editing control flow.
var categoryTriggers = map[string]core.Category{
	"developer":   core.CategoryTechnical,
	"developers":  core.CategoryTechnical,
	"engineer":    core.CategoryTechnical,
	"engineers":   core.CategoryTechnical,
	"engineering": core.CategoryTechnical,
	"programmer":  core.CategoryTechnical,
	"programmers": core.CategoryTechnical,
	"programming": core.CategoryTechnical,
	"coding":      core.CategoryTechnical,
	"software":    core.CategoryTechnical,
	"technical":   core.CategoryTechnical,
	"java":        core.CategoryTechnical,
	"python":      core.CategoryTechnical,
	"javascript":  core.CategoryTechnical,
	"sql":         core.CategoryTechnical,
	"backend":     core.CategoryTechnical,
	"frontend":    core.CategoryTechnical,
	"fullstack":   core.CategoryTechnical,
	"devops":      core.CategoryTechnical,
	"data":        core.CategoryTechnical,

	"reasoning":  core.CategoryCognitive,
	"cognitive":  core.CategoryCognitive,
	"aptitude":   core.CategoryCognitive,
	"numerical":  core.CategoryCognitive,
	"verbal":     core.CategoryCognitive,
	"logical":    core.CategoryCognitive,
	"analytical": core.CategoryCognitive,

	"personality":   core.CategoryBehavioral,
	"behavioral":    core.CategoryBehavioral,
	"behavioural":   core.CategoryBehavioral,
	"collaboration": core.CategoryBehavioral,
	"collaborate":   core.CategoryBehavioral,
	"teamwork":      core.CategoryBehavioral,
	"communication": core.CategoryBehavioral,
	"interpersonal": core.CategoryBehavioral,
	"culture":       core.CategoryBehavioral,
	"motivation":    core.CategoryBehavioral,
	"stakeholder":   core.CategoryBehavioral,
	"stakeholders":  core.CategoryBehavioral,

	"sales":      core.CategoryDomain,
	"marketing":  core.CategoryDomain,
	"finance":    core.CategoryDomain,
	"accounting": core.CategoryDomain,
	"legal":      core.CategoryDomain,
	"clerical":   core.CategoryDomain,
	"admin":      core.CategoryDomain,
	"support":    core.CategoryDomain,
}

// leadershipTriggers marks queries that call for people-leadership,
// which forces at least one behavioral item into the result.
var leadershipTriggers = map[string]bool{
	"manager":    true,
	"managers":   true,
	"managerial": true,
	"management": true,
	"lead":       true,
	"leads":      true,
	"leader":     true,
	"leaders":    true,
	"leadership": true,
	"supervisor": true,
	"director":   true,
	"head":       true,
}

// InferEmphasis derives category emphasis from query text using the
// trigger tables. The same text always yields the same emphasis.
func InferEmphasis(text string) Emphasis {
	weights := make(map[core.Category]float64)
	leadership := false

	for _, token := range tokenizeAndFilter(text) {
		if category, ok := categoryTriggers[token]; ok {
			weights[category]++
		}
		if leadershipTriggers[token] {
			leadership = true
		}
	}

	profile := EmphasisBalanced
	technical := weights[core.CategoryTechnical] + weights[core.CategoryDomain]
	behavioral := weights[core.CategoryBehavioral]
	switch {
	case technical > 0 && technical >= 2*behavioral:
		profile = EmphasisTechnicalHeavy
	case behavioral > 0 && behavioral >= 2*technical:
		profile = EmphasisBehavioralHeavy
	}

	return Emphasis{
		Profile:    profile,
		Leadership: leadership,
		Weights:    weights,
	}
}
