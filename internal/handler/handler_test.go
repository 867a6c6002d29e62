package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-movie-recommender/internal/adapter/match"
	"github.com/arturoeanton/go-movie-recommender/internal/domain"
	"github.com/arturoeanton/go-movie-recommender/internal/service"
	"github.com/arturoeanton/go-movie-recommender/internal/testsupport"
)

// fakeHistoryStore is an in-memory history store with injectable failures.
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

// fakeEnrichmentStore serves canned details keyed by tconst.
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

func newTestApp(t *testing.T, enrichment *fakeEnrichmentStore, history *fakeHistoryStore) *fiber.App {
	t.Helper()

	cat := testsupport.SampleCatalog(t)
	resolver := service.NewTitleResolver(cat, match.NewWeightedRatioScorer(), service.DefaultFuzzyThreshold)
	ranker := service.NewRanker(cat)
	historyService := service.NewHistoryService(history)
	recommendService := service.NewRecommendService(resolver, ranker, historyService)
	searchService := service.NewSearchService(resolver, enrichment, historyService)

	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	api := app.Group("/api/v1")
	NewMovieHandler(recommendService, searchService, 10).Register(api)
	NewHistoryHandler(historyService).Register(api)
	return app
}

func doRequest(t *testing.T, app *fiber.App, url string, out any) int {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), "body: %s", body)
	}
	return resp.StatusCode
}
