package redundancy

import (
	"fmt"

	"github.com/phraselift/combogen/pkg/combogen/classify"
)

// Opportunity gain constants
const (
	gainPerCluster = 5
	maxGain        = 20
)

// Opportunity is one missing semantic-cluster suggestion
type Opportunity struct {
	Cluster       string // "category+benefit", "action+category", "time+benefit"
	Suggestion    string
	Example       string // one synthesized combo filling the gap
	EstimatedGain int
}

// OpportunityReport lists missing clusters and the capped score gain
type OpportunityReport struct {
	Opportunities []Opportunity
	EstimatedGain int
}

// IdentifyOpportunities checks for semantic-cluster combinations absent
// from the existing combos even though the metadata carries both halves
// of the cluster. metaTokens is the concatenated title+subtitle token
// list; existing holds the token lists of combos already present.
func IdentifyOpportunities(metaTokens []string, existing [][]string, cls *classify.Classifier) OpportunityReport {
	var report OpportunityReport

	clusters := []struct {
		name       string
		available  func() ([]string, []string)
		covered    func(tokens []string) bool
		suggestion string
	}{
		{
			name: "category+benefit",
			available: func() ([]string, []string) {
				return cls.CategoryMatches(metaTokens), cls.BenefitMatches(metaTokens)
			},
			covered: func(tokens []string) bool {
				return cls.HasCategory(tokens) && cls.HasBenefit(tokens)
			},
			suggestion: "Combine a category keyword with a benefit keyword",
		},
		{
			name: "action+category",
			available: func() ([]string, []string) {
				return cls.VerbMatches(metaTokens), cls.CategoryMatches(metaTokens)
			},
			covered: func(tokens []string) bool {
				return cls.HasVerb(tokens) && cls.HasCategory(tokens)
			},
			suggestion: "Pair a call-to-action verb with a category keyword",
		},
		{
			name: "time+benefit",
			available: func() ([]string, []string) {
				return cls.TimeHintMatches(metaTokens), cls.BenefitMatches(metaTokens)
			},
			covered: func(tokens []string) bool {
				return cls.HasTimeHint(tokens) && cls.HasBenefit(tokens)
			},
			suggestion: "Add a time hint next to a benefit keyword",
		},
	}

	for _, cluster := range clusters {
		first, second := cluster.available()
		if len(first) == 0 || len(second) == 0 {
			continue // metadata lacks the ingredients, nothing to suggest
		}

		present := false
		for _, tokens := range existing {
			if cluster.covered(tokens) {
				present = true
				break
			}
		}
		if present {
			continue
		}

		example := first[0] + " " + second[0]
		report.Opportunities = append(report.Opportunities, Opportunity{
			Cluster:       cluster.name,
			Suggestion:    fmt.Sprintf("%s (e.g. %q)", cluster.suggestion, example),
			Example:       example,
			EstimatedGain: gainPerCluster,
		})
		report.EstimatedGain += gainPerCluster
	}

	if report.EstimatedGain > maxGain {
		report.EstimatedGain = maxGain
	}
	return report
}
