package service

import (
	"sort"

	"github.com/arturoeanton/go-movie-recommender/internal/catalog"
	"github.com/arturoeanton/go-movie-recommender/internal/domain"
)

// selfSimilarity marks the query entry's own score so it can never appear
// in the top results, even when other entries tie at 1.0.
const selfSimilarity = -1

// Ranker computes content-similarity rankings over the frozen catalog.
type Ranker struct {
	catalog *catalog.Catalog
}

// NewRanker creates a ranker over the given catalog.
func NewRanker(c *catalog.Catalog) *Ranker {
	return &Ranker{catalog: c}
}

// Rank returns the topN catalog entries most similar to the entry at index,
// ordered by descending cosine similarity. The query entry itself is always
// excluded, so the result holds min(topN, catalogSize-1) entries. Ordering
// among equal scores follows catalog order; callers must not rely on it.
func (r *Ranker) Rank(index, topN int) []domain.Recommendation {
	if topN < 1 {
		return nil
	}

	scores := r.catalog.Similarities(index)
	scores[index] = selfSimilarity

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if max := len(order) - 1; topN > max {
		topN = max
	}

	recs := make([]domain.Recommendation, 0, topN)
	for _, idx := range order[:topN] {
		m := r.catalog.Movie(idx)
		recs = append(recs, domain.Recommendation{
			Title:      m.PrimaryTitle,
			Year:       m.StartYear,
			Genres:     m.Genres,
			Rating:     m.AverageRating,
			Similarity: scores[idx],
		})
	}
	return recs
}
