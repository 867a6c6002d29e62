package port

import (
	"context"

	"github.com/arturoeanton/go-movie-recommender/internal/domain"
)

// TitleScorer rates how closely a free-text query resembles a candidate
// title on a 0-100 scale. The resolver's fuzzy stage is pluggable through
// this interface so the scoring implementation can be swapped without
// touching resolution logic.
type TitleScorer interface {
	Score(query, candidate string) int
}

// EnrichmentStore fetches the supplementary movie fields kept only in the
// relational store. Implementations are read-only.
type EnrichmentStore interface {
	MovieDetails(ctx context.Context, tconst string) (domain.MovieDetails, error)
}

// HistoryStore persists and reads the append-only search history.
type HistoryStore interface {
	EnsureHistoryTable(ctx context.Context) error
	InsertSearch(ctx context.Context, query string, matchedTitle *string) error
	RecentSearches(ctx context.Context, limit int) ([]domain.SearchRecord, error)
}
