// Package cards turns scored combos into the structured recommendation
// records the presentation layer consumes.
package cards

import (
	"crypto/rand"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/phraselift/combogen/pkg/combogen/combo"
	"github.com/phraselift/combogen/pkg/combogen/priority"
)

// Builder constructs recommendation cards
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a new card builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Card is a structured, explainable recommendation
type Card struct {
	ID             string
	Combo          string
	Suggestion     string
	Priority       int
	Quality        priority.DataQuality
	ScoreBreakdown map[string]float64
	Explain        Explain
}

// Explain provides transparency into why a combo was recommended
type Explain struct {
	Tokens        []string
	Tier          string
	Source        combo.Source
	Intent        string
	CanStrengthen bool
}

// Build creates a card for one scored combo
func (b *Builder) Build(sc priority.Scored) Card {
	return Card{
		ID:         ulid.MustNew(ulid.Now(), b.entropy).String(),
		Combo:      sc.Combo.Text,
		Suggestion: suggestion(sc),
		Priority:   sc.Breakdown.Total,
		Quality:    sc.Breakdown.Quality,
		ScoreBreakdown: map[string]float64{
			"strength":    sc.Breakdown.Strength,
			"popularity":  sc.Breakdown.Popularity,
			"opportunity": sc.Breakdown.Opportunity,
			"trend":       sc.Breakdown.Trend,
			"intent":      sc.Breakdown.Intent,
		},
		Explain: Explain{
			Tokens:        sc.Combo.Tokens,
			Tier:          sc.Combo.Tier.String(),
			Source:        sc.Combo.Source,
			Intent:        string(sc.Combo.Intent),
			CanStrengthen: sc.Combo.CanStrengthen,
		},
	}
}

// BuildAll creates cards for a whole selection, preserving its order
func (b *Builder) BuildAll(sel priority.Selection) []Card {
	out := make([]Card, 0, len(sel.Combos))
	for _, sc := range sel.Combos {
		out = append(out, b.Build(sc))
	}
	return out
}

func suggestion(sc priority.Scored) string {
	c := sc.Combo
	switch {
	case !c.Exists && c.CanStrengthen:
		return fmt.Sprintf("Add %q to the title: every word already appears in your metadata", c.Text)
	case !c.Exists:
		return fmt.Sprintf("Consider adding %q to your metadata", c.Text)
	case c.CanStrengthen:
		return fmt.Sprintf("Consolidate %q into the title to upgrade its %s placement", c.Text, c.Tier)
	default:
		return fmt.Sprintf("%q is already at full strength in the title", c.Text)
	}
}
