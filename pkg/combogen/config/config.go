package config

import (
	"fmt"
	"math"
	"os"

	"github.com/phraselift/combogen/pkg/combogen/internalerr"
	"gopkg.in/yaml.v3"
)

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}

// KeywordSets represents the classifier keyword list configuration
type KeywordSets struct {
	Brand     []string `yaml:"brand"`
	Category  []string `yaml:"category"`
	Benefit   []string `yaml:"benefit"`
	Verbs     []string `yaml:"verbs"`
	TimeHints []string `yaml:"time_hints"`
}

// LoadKeywordSets loads classifier keyword lists from a YAML file
func LoadKeywordSets(path string) (*KeywordSets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var ks KeywordSets
	if err := yaml.Unmarshal(data, &ks); err != nil {
		return nil, err
	}

	return &ks, nil
}

// Weights represents the priority scoring weight configuration
type Weights struct {
	Strength    float64 `yaml:"strength"`
	Popularity  float64 `yaml:"popularity"`
	Opportunity float64 `yaml:"opportunity"`
	Trend       float64 `yaml:"trend"`
	Intent      float64 `yaml:"intent"`
}

// LoadWeights loads scoring weights from a YAML file. The five weights
// must sum to 1.0; anything else is a configuration error.
func LoadWeights(path string) (*Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var w Weights
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, err
	}

	sum := w.Strength + w.Popularity + w.Opportunity + w.Trend + w.Intent
	if math.Abs(sum-1.0) > 1e-9 {
		return nil, fmt.Errorf("%w: scoring weights sum to %v, want 1.0", internalerr.ErrInvalidConfig, sum)
	}

	return &w, nil
}
