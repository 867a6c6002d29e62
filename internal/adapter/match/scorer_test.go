package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreIdenticalStrings(t *testing.T) {
	scorer := NewWeightedRatioScorer()
	assert.Equal(t, 100, scorer.Score("Inception", "Inception"))
}

func TestScoreBounds(t *testing.T) {
	scorer := NewWeightedRatioScorer()

	for _, pair := range [][2]string{
		{"Inception", "Incepton"},
		{"The Dark Knight", "dark knight"},
		{"xzqvw", "The Notebook"},
		{"", "Inception"},
	} {
		s := scorer.Score(pair[0], pair[1])
		assert.GreaterOrEqual(t, s, 0, "score(%q, %q)", pair[0], pair[1])
		assert.LessOrEqual(t, s, 100, "score(%q, %q)", pair[0], pair[1])
	}
}

func TestScoreTypoStaysAboveThreshold(t *testing.T) {
	scorer := NewWeightedRatioScorer()
	assert.GreaterOrEqual(t, scorer.Score("Incepton", "Inception"), 50)
}

func TestScoreNoiseStaysBelowThreshold(t *testing.T) {
	scorer := NewWeightedRatioScorer()
	assert.Less(t, scorer.Score("xzqvwkjh", "Inception"), 50)
}
