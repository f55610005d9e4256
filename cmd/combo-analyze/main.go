// combo-analyze runs the combo generation and priority scoring pipeline
// against one app's metadata and prints the result as JSON.
//
// Metadata comes from flags, or from a saved app product page via -page.
// External ranking/popularity signals can be supplied as a JSON file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/phraselift/combogen/internal/appmeta"
	"github.com/phraselift/combogen/pkg/combogen"
	"github.com/phraselift/combogen/pkg/combogen/config"
	"github.com/phraselift/combogen/pkg/combogen/generate"
	"github.com/phraselift/combogen/pkg/combogen/priority"
)

// signals is the optional external-data file format
type signals struct {
	Ranking    map[string]priority.RankingData    `json:"ranking"`    // keyed by combo text
	Popularity map[string]priority.PopularityData `json:"popularity"` // keyed by keyword
}

type comboJSON struct {
	Text           string  `json:"text"`
	Tier           string  `json:"tier"`
	Source         string  `json:"source"`
	Exists         bool    `json:"exists"`
	Consecutive    bool    `json:"consecutive"`
	CanStrengthen  bool    `json:"can_strengthen"`
	StrategicValue float64 `json:"strategic_value"`
	TailLength     string  `json:"tail_length"`
	Intent         string  `json:"intent"`
	FillerRatio    float64 `json:"filler_ratio"`
	Priority       *int    `json:"priority,omitempty"`
	Quality        string  `json:"quality,omitempty"`
}

type reportJSON struct {
	Title            string         `json:"title"`
	Subtitle         string         `json:"subtitle"`
	TotalGenerated   int            `json:"total_generated"`
	LimitReached     bool           `json:"limit_reached"`
	ExistingCount    int            `json:"existing_count"`
	MissingCount     int            `json:"missing_count"`
	CoveragePercent  float64        `json:"coverage_percent"`
	TierCounts       map[string]int `json:"tier_counts"`
	Existing         []comboJSON    `json:"existing"`
	Missing          []comboJSON    `json:"missing"`
	RecommendedToAdd []comboJSON    `json:"recommended_to_add"`
	Prioritized      []comboJSON    `json:"prioritized,omitempty"`
	Truncated        bool           `json:"truncated,omitempty"`
}

func main() {
	var (
		title       = flag.String("title", "", "App title")
		subtitle    = flag.String("subtitle", "", "App subtitle")
		keywords    = flag.String("keywords", "", "Keywords field (comma-separated)")
		brand       = flag.String("brand", "", "Optional brand name to exclude from recommendations")
		page        = flag.String("page", "", "Optional: saved app product page (HTML) to extract metadata from")
		stoplistCfg = flag.String("stoplist", "", "Optional stoplist YAML file")
		keywordCfg  = flag.String("keyword-sets", "", "Optional keyword-sets YAML file")
		weightsCfg  = flag.String("weights", "", "Optional scoring-weights YAML file")
		signalsPath = flag.String("signals", "", "Optional ranking/popularity signals JSON file")
		prioritize  = flag.Bool("prioritize", false, "Score combos and include the ranked slate")
		limit       = flag.Int("limit", 0, "Slate size limit (default 500)")
	)
	flag.Parse()

	if *page != "" {
		f, err := os.Open(*page)
		if err != nil {
			log.Fatalf("open page: %v", err)
		}
		meta, err := appmeta.Extract(f)
		f.Close()
		if err != nil {
			log.Fatalf("extract metadata: %v", err)
		}
		if *title == "" {
			*title = meta.Title
		}
		if *subtitle == "" {
			*subtitle = meta.Subtitle
		}
		if *keywords == "" {
			*keywords = meta.Keywords
		}
	}
	if *title == "" {
		log.Fatal("--title or --page required")
	}

	loader := config.Loader{
		StoplistPath:    *stoplistCfg,
		KeywordSetsPath: *keywordCfg,
		WeightsPath:     *weightsCfg,
		Brand:           *brand,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}

	engine := combogen.New(combogen.Options{
		Tokenizer:  components.Tokenizer,
		Classifier: components.Classifier,
		Weights:    components.Weights,
	})

	req := combogen.AnalysisRequest{
		Title:         *title,
		Subtitle:      *subtitle,
		KeywordsField: *keywords,
		BrandName:     *brand,
	}
	analysis := engine.Analyze(req)

	report := reportJSON{
		Title:            *title,
		Subtitle:         *subtitle,
		TotalGenerated:   analysis.Stats.TotalGenerated,
		LimitReached:     analysis.Stats.LimitReached,
		ExistingCount:    analysis.Stats.ExistingCount,
		MissingCount:     analysis.Stats.MissingCount,
		CoveragePercent:  analysis.Stats.CoveragePercent,
		TierCounts:       analysis.Stats.TierCounts,
		Existing:         toJSON(analysis.Existing),
		Missing:          toJSON(analysis.Missing),
		RecommendedToAdd: toJSON(analysis.RecommendedToAdd),
	}

	if *prioritize {
		var sig signals
		if *signalsPath != "" {
			data, err := os.ReadFile(*signalsPath)
			if err != nil {
				log.Fatalf("read signals: %v", err)
			}
			if err := json.Unmarshal(data, &sig); err != nil {
				log.Fatalf("parse signals: %v", err)
			}
		}

		selection := engine.Prioritize(analysis, sig.Ranking, sig.Popularity, *limit)
		report.Truncated = selection.Truncated
		for _, sc := range selection.Combos {
			cj := toComboJSON(sc.Combo)
			total := sc.Breakdown.Total
			cj.Priority = &total
			cj.Quality = string(sc.Breakdown.Quality)
			report.Prioritized = append(report.Prioritized, cj)
		}
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("encode report: %v", err)
	}
	fmt.Println(string(out))
}

func toJSON(combos []generate.AnalyzedCombo) []comboJSON {
	out := make([]comboJSON, 0, len(combos))
	for _, ac := range combos {
		out = append(out, toComboJSON(ac))
	}
	return out
}

func toComboJSON(ac generate.AnalyzedCombo) comboJSON {
	return comboJSON{
		Text:           ac.Text,
		Tier:           ac.Tier.String(),
		Source:         string(ac.Source),
		Exists:         ac.Exists,
		Consecutive:    ac.Consecutive,
		CanStrengthen:  ac.CanStrengthen,
		StrategicValue: ac.StrategicValue,
		TailLength:     string(ac.TailLength),
		Intent:         string(ac.Intent),
		FillerRatio:    ac.Features.FillerRatio,
	}
}
