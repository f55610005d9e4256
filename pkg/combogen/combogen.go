// Package combogen is the keyword combination generation and priority
// scoring engine: it enumerates candidate 2–4 word search phrases from an
// app's title, subtitle, and keywords field, places each one against the
// metadata, and ranks the result with external search signals.
//
// The whole pipeline is pure, synchronous computation over short strings.
// Calls share no state and are safe to run concurrently.
package combogen

import (
	"github.com/phraselift/combogen/pkg/combogen/cards"
	"github.com/phraselift/combogen/pkg/combogen/classify"
	"github.com/phraselift/combogen/pkg/combogen/generate"
	"github.com/phraselift/combogen/pkg/combogen/ingest"
	"github.com/phraselift/combogen/pkg/combogen/priority"
	"github.com/phraselift/combogen/pkg/combogen/redundancy"
)

// Engine is the main analysis facade
type Engine struct {
	tokenizer  *ingest.Tokenizer
	classifier *classify.Classifier
	scorer     *priority.Scorer
	builder    *cards.Builder
	genOpts    generate.Options
}

// Options configures an Engine instance
type Options struct {
	Tokenizer  *ingest.Tokenizer
	Classifier *classify.Classifier
	Weights    priority.Weights
	Generation generate.Options
}

// New creates an Engine with the given dependencies. A nil tokenizer or
// zero weights fall back to workable defaults.
func New(opts Options) *Engine {
	if opts.Tokenizer == nil {
		opts.Tokenizer = ingest.NewTokenizer(nil)
	}
	if opts.Classifier == nil {
		opts.Classifier = classify.New(classify.KeywordSets{})
	}
	if opts.Weights.Sum() == 0 {
		opts.Weights = priority.DefaultWeights()
	}
	return &Engine{
		tokenizer:  opts.Tokenizer,
		classifier: opts.Classifier,
		scorer:     priority.NewScorer(opts.Weights),
		builder:    cards.New(),
		genOpts:    opts.Generation,
	}
}

// AnalysisRequest carries one app's metadata triple
type AnalysisRequest struct {
	Title         string
	Subtitle      string
	KeywordsField string // comma-separated, App-Store style
	BrandName     string // optional; filters branded missing-combo recommendations
}

// Analyze runs the full generation pipeline on a metadata triple:
// tokenize, generate combos across all sources, place each against the
// metadata, classify, and split existing from missing. Empty inputs
// degrade to an empty analysis, never an error.
func (e *Engine) Analyze(req AnalysisRequest) generate.Analysis {
	fields := generate.FieldTokens{
		Title:    e.tokenizer.Tokenize(req.Title),
		Subtitle: e.tokenizer.Tokenize(req.Subtitle),
		Keywords: e.tokenizer.Tokenize(req.KeywordsField),
	}
	brand := e.tokenizer.Tokenize(req.BrandName)
	return generate.AnalyzeAll(fields, e.classifier, brand, e.genOpts)
}

// Prioritize scores every analyzed combo with the external ranking and
// popularity signals and selects the top slate. ranking is keyed by combo
// text, popularity by lowercase keyword; either may be empty.
func (e *Engine) Prioritize(a generate.Analysis, ranking map[string]priority.RankingData, popularity map[string]priority.PopularityData, limit int) priority.Selection {
	scored := make([]priority.Scored, 0, len(a.All))
	for _, ac := range a.All {
		var rd *priority.RankingData
		if r, ok := ranking[ac.Text]; ok {
			rd = &r
		}
		scored = append(scored, priority.Scored{
			Combo:     ac,
			Breakdown: e.scorer.Score(ac, rd, popularity),
		})
	}
	return priority.SelectTop(scored, limit)
}

// BuildCards renders a prioritized selection as recommendation cards
func (e *Engine) BuildCards(sel priority.Selection) []cards.Card {
	return e.builder.BuildAll(sel)
}

// Redundancy reports combos wasting tokens on repeated prefixes or
// suffixes among the existing combos.
func (e *Engine) Redundancy(a generate.Analysis) redundancy.Report {
	texts := make([]string, 0, len(a.Existing))
	for _, ac := range a.Existing {
		texts = append(texts, ac.Text)
	}
	return redundancy.FindRedundant(texts)
}

// Opportunities surfaces semantic-cluster combinations the metadata could
// support but no existing combo covers.
func (e *Engine) Opportunities(req AnalysisRequest, a generate.Analysis) redundancy.OpportunityReport {
	metaTokens := append(e.tokenizer.Tokenize(req.Title), e.tokenizer.Tokenize(req.Subtitle)...)
	existing := make([][]string, 0, len(a.Existing))
	for _, ac := range a.Existing {
		existing = append(existing, ac.Tokens)
	}
	return redundancy.IdentifyOpportunities(metaTokens, existing, e.classifier)
}
