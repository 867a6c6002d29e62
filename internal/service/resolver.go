package service

import (
	"strings"

	"github.com/arturoeanton/go-movie-recommender/internal/catalog"
	"github.com/arturoeanton/go-movie-recommender/internal/domain"
	"github.com/arturoeanton/go-movie-recommender/internal/port"
)

// DefaultFuzzyThreshold is the minimum 0-100 scorer confidence for a fuzzy
// match to be accepted.
const DefaultFuzzyThreshold = 50

// TitleResolver maps a free-text query to the single best catalog entry
// using three stages in strict priority order: exact title equality,
// substring containment, then fuzzy scoring. The first stage with any
// candidate wins.
type TitleResolver struct {
	catalog   *catalog.Catalog
	scorer    port.TitleScorer
	threshold int
}

// NewTitleResolver creates a resolver over the given catalog. threshold
// bounds the fuzzy stage; values outside 0-100 fall back to the default.
func NewTitleResolver(c *catalog.Catalog, scorer port.TitleScorer, threshold int) *TitleResolver {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultFuzzyThreshold
	}
	return &TitleResolver{catalog: c, scorer: scorer, threshold: threshold}
}

// Resolve returns the best match for query, or port.ErrMovieNotFound when
// no stage produces an acceptable candidate. Not-found is a normal outcome,
// not an exceptional one: callers still record it in the search history.
func (r *TitleResolver) Resolve(query string) (domain.ResolvedMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.ResolvedMatch{}, port.ErrMovieNotFound
	}

	if idx, ok := r.bestExact(query); ok {
		return r.match(idx, domain.StageExact, 0, query), nil
	}

	if idx, ok := r.bestSubstring(query); ok {
		return r.match(idx, domain.StageSubstring, 0, query), nil
	}

	title, score, ok := r.bestFuzzyTitle(query)
	if !ok {
		return domain.ResolvedMatch{}, port.ErrMovieNotFound
	}
	// The scorer picked a title string; re-run the exact stage against it so
	// the usual vote tie-break applies when several entries share the title.
	idx, ok := r.bestExact(title)
	if !ok {
		return domain.ResolvedMatch{}, port.ErrMovieNotFound
	}
	return r.match(idx, domain.StageFuzzy, score, query), nil
}

// bestExact returns the highest-voted entry whose title equals query,
// case-insensitively.
func (r *TitleResolver) bestExact(query string) (int, bool) {
	return r.bestByVotes(func(title string) bool {
		return strings.EqualFold(title, query)
	})
}

// bestSubstring returns the highest-voted entry whose title contains query,
// case-insensitively.
func (r *TitleResolver) bestSubstring(query string) (int, bool) {
	needle := strings.ToLower(query)
	return r.bestByVotes(func(title string) bool {
		return strings.Contains(strings.ToLower(title), needle)
	})
}

// bestByVotes scans the catalog for titles accepted by match and picks the
// candidate with the most votes. The vote count is a deliberate popularity
// prior for sequels and re-releases sharing a title.
func (r *TitleResolver) bestByVotes(match func(title string) bool) (int, bool) {
	best, found := -1, false
	for i, m := range r.catalog.Movies() {
		if !match(m.PrimaryTitle) {
			continue
		}
		if !found || m.NumVotes > r.catalog.Movie(best).NumVotes {
			best = i
		}
		found = true
	}
	return best, found
}

// bestFuzzyTitle scans every catalog title with the scorer and returns the
// highest-scoring title, provided it reaches the acceptance threshold.
func (r *TitleResolver) bestFuzzyTitle(query string) (string, int, bool) {
	bestTitle, bestScore := "", -1
	for _, m := range r.catalog.Movies() {
		if s := r.scorer.Score(query, m.PrimaryTitle); s > bestScore {
			bestTitle, bestScore = m.PrimaryTitle, s
		}
	}
	if bestScore < r.threshold {
		return "", 0, false
	}
	return bestTitle, bestScore, true
}

func (r *TitleResolver) match(idx int, stage domain.MatchStage, score int, query string) domain.ResolvedMatch {
	return domain.ResolvedMatch{
		Movie: r.catalog.Movie(idx),
		Index: idx,
		Stage: stage,
		Score: score,
		Query: query,
	}
}
