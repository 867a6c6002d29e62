package match

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// WeightedRatioScorer scores query/title similarity with fuzzywuzzy's
// weighted ratio, which blends full, partial, and token-sorted comparisons
// into a single 0-100 confidence. It implements port.TitleScorer.
type WeightedRatioScorer struct{}

// NewWeightedRatioScorer creates the default title scorer.
func NewWeightedRatioScorer() WeightedRatioScorer {
	return WeightedRatioScorer{}
}

// Score returns the weighted-ratio similarity between query and candidate.
func (WeightedRatioScorer) Score(query, candidate string) int {
	return fuzzy.WRatio(query, candidate)
}
