package service

import (
	"context"
	"time"

	"github.com/arturoeanton/go-movie-recommender/internal/domain"
)

// fakeHistoryStore is an in-memory port.HistoryStore. Failures are injected
// through insertErr and recentErr.
type fakeHistoryStore struct {
	records   []domain.SearchRecord
	insertErr error
	recentErr error
}

func (f *fakeHistoryStore) EnsureHistoryTable(context.Context) error { return nil }

func (f *fakeHistoryStore) InsertSearch(_ context.Context, query string, matchedTitle *string) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.records = append(f.records, domain.SearchRecord{
		ID:           int64(len(f.records) + 1),
		SearchQuery:  query,
		MatchedTitle: matchedTitle,
		SearchedAt:   time.Now(),
	})
	return nil
}

func (f *fakeHistoryStore) RecentSearches(_ context.Context, limit int) ([]domain.SearchRecord, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	var out []domain.SearchRecord
	for i := len(f.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.records[i])
	}
	return out, nil
}

// fakeEnrichmentStore is an in-memory port.EnrichmentStore keyed by tconst.
type fakeEnrichmentStore struct {
	details map[string]domain.MovieDetails
	err     error
}

func (f *fakeEnrichmentStore) MovieDetails(_ context.Context, tconst string) (domain.MovieDetails, error) {
	if f.err != nil {
		return domain.MovieDetails{}, f.err
	}
	return f.details[tconst], nil
}
