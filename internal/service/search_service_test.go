package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-movie-recommender/internal/adapter/match"
	"github.com/arturoeanton/go-movie-recommender/internal/domain"
	"github.com/arturoeanton/go-movie-recommender/internal/port"
	"github.com/arturoeanton/go-movie-recommender/internal/testsupport"
)

func strp(v string) *string { return &v }
func intpt(v int) *int      { return &v }

func newSearchService(t *testing.T, enrichment *fakeEnrichmentStore, history *fakeHistoryStore) *SearchService {
	t.Helper()
	resolver := NewTitleResolver(testsupport.SampleCatalog(t), match.NewWeightedRatioScorer(), DefaultFuzzyThreshold)
	return NewSearchService(resolver, enrichment, NewHistoryService(history))
}

func TestSearchEnriched(t *testing.T) {
	enrichment := &fakeEnrichmentStore{details: map[string]domain.MovieDetails{
		"tt0468569": {
			OriginalTitle:  strp("The Dark Knight"),
			RuntimeMinutes: intpt(152),
			Cast: []domain.CastMember{
				{Name: "Christian Bale", Role: "actor", Characters: strp(`["Bruce Wayne"]`)},
				{Name: "Heath Ledger", Role: "actor", Characters: strp(`["Joker"]`)},
			},
		},
	}}
	history := &fakeHistoryStore{}
	s := newSearchService(t, enrichment, history)

	result, err := s.Search(context.Background(), "The Dark Knight")
	require.NoError(t, err)

	assert.Equal(t, domain.Enriched, result.Enrichment)
	assert.Equal(t, domain.Written, result.HistoryOutcome)
	require.NotNil(t, result.Details.RuntimeMinutes)
	assert.Equal(t, 152, *result.Details.RuntimeMinutes)
	require.Len(t, result.Details.Cast, 2)
	assert.Equal(t, "Christian Bale", result.Details.Cast[0].Name)

	require.Len(t, history.records, 1)
	require.NotNil(t, history.records[0].MatchedTitle)
	assert.Equal(t, "The Dark Knight", *history.records[0].MatchedTitle)
}

func TestSearchDegradesWhenStoreUnreachable(t *testing.T) {
	enrichment := &fakeEnrichmentStore{err: errors.New("connection refused")}
	history := &fakeHistoryStore{}
	s := newSearchService(t, enrichment, history)

	result, err := s.Search(context.Background(), "Inception")
	require.NoError(t, err, "enrichment failure must not fail the request")

	assert.Equal(t, domain.Degraded, result.Enrichment)
	assert.Nil(t, result.Details.OriginalTitle)
	assert.Nil(t, result.Details.RuntimeMinutes)
	assert.NotNil(t, result.Details.Cast)
	assert.Empty(t, result.Details.Cast)
	assert.Equal(t, "Inception", result.Match.Movie.PrimaryTitle)
}

func TestSearchEmptyDetailsGetEmptyCast(t *testing.T) {
	// A reachable store with no rows still yields a non-nil empty cast.
	enrichment := &fakeEnrichmentStore{details: map[string]domain.MovieDetails{}}
	s := newSearchService(t, enrichment, &fakeHistoryStore{})

	result, err := s.Search(context.Background(), "Inception")
	require.NoError(t, err)
	assert.Equal(t, domain.Enriched, result.Enrichment)
	assert.NotNil(t, result.Details.Cast)
	assert.Empty(t, result.Details.Cast)
}

func TestSearchNotFoundRecordsNullTitle(t *testing.T) {
	history := &fakeHistoryStore{}
	s := newSearchService(t, &fakeEnrichmentStore{}, history)

	_, err := s.Search(context.Background(), "xzqvwkjh")
	assert.ErrorIs(t, err, port.ErrMovieNotFound)

	require.Len(t, history.records, 1)
	assert.Equal(t, "xzqvwkjh", history.records[0].SearchQuery)
	assert.Nil(t, history.records[0].MatchedTitle)
}

func TestSearchHistoryDropDoesNotFailRequest(t *testing.T) {
	history := &fakeHistoryStore{insertErr: errors.New("connection refused")}
	s := newSearchService(t, &fakeEnrichmentStore{}, history)

	result, err := s.Search(context.Background(), "Inception")
	require.NoError(t, err)
	assert.Equal(t, domain.Dropped, result.HistoryOutcome)
}

func TestSearchFuzzyMarksMatch(t *testing.T) {
	s := newSearchService(t, &fakeEnrichmentStore{}, &fakeHistoryStore{})

	result, err := s.Search(context.Background(), "Incepton")
	require.NoError(t, err)
	assert.True(t, result.Match.UsedFuzzy())
	assert.Equal(t, "Incepton", result.Match.Query)
	assert.Equal(t, "Inception", result.Match.Movie.PrimaryTitle)
}
