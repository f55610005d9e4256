package config

import (
	"fmt"

	"github.com/phraselift/combogen/pkg/combogen/classify"
	"github.com/phraselift/combogen/pkg/combogen/ingest"
	"github.com/phraselift/combogen/pkg/combogen/priority"
)

// Loader loads all configuration files and constructs components.
// Every path is optional; absent paths fall back to built-in defaults so
// the library works with zero files on disk. Malformed files fail fast;
// they are config errors, not runtime data conditions.
type Loader struct {
	StoplistPath    string
	KeywordSetsPath string
	WeightsPath     string
	Brand           string // brand tokens are supplied per app, not per file
}

// Components holds all loaded configuration components
type Components struct {
	Tokenizer  *ingest.Tokenizer
	Classifier *classify.Classifier
	Weights    priority.Weights
}

// Load reads the configuration files and returns initialized components
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	stops := DefaultStopwords()
	if l.StoplistPath != "" {
		stoplist, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		stops = stoplist.Terms
	}
	comp.Tokenizer = ingest.NewTokenizer(stops)

	sets := DefaultKeywordSets()
	if l.KeywordSetsPath != "" {
		loaded, err := LoadKeywordSets(l.KeywordSetsPath)
		if err != nil {
			return nil, fmt.Errorf("load keyword sets: %w", err)
		}
		sets = *loaded
	}
	tokenizer := ingest.NewTokenizer(nil)
	comp.Classifier = classify.New(classify.KeywordSets{
		Brand:     append(sets.Brand, tokenizer.Tokenize(l.Brand)...),
		Category:  sets.Category,
		Benefit:   sets.Benefit,
		Verbs:     sets.Verbs,
		TimeHints: sets.TimeHints,
		Stopwords: stops,
	})

	comp.Weights = priority.DefaultWeights()
	if l.WeightsPath != "" {
		w, err := LoadWeights(l.WeightsPath)
		if err != nil {
			return nil, fmt.Errorf("load weights: %w", err)
		}
		comp.Weights = priority.Weights{
			Strength:    w.Strength,
			Popularity:  w.Popularity,
			Opportunity: w.Opportunity,
			Trend:       w.Trend,
			Intent:      w.Intent,
		}
	}

	return comp, nil
}
