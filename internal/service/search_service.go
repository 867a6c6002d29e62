package service

import (
	"context"
	"log/slog"

	"github.com/arturoeanton/go-movie-recommender/internal/domain"
	"github.com/arturoeanton/go-movie-recommender/internal/port"
)

// SearchResult is the outcome of a resolve-and-enrich request. When the
// relational store is unreachable, Enrichment is Degraded and Details holds
// absent fields with an empty cast; the result is still usable.
type SearchResult struct {
	Match          domain.ResolvedMatch
	Details        domain.MovieDetails
	Enrichment     domain.EnrichmentOutcome
	HistoryOutcome domain.WriteOutcome
}

// SearchService resolves a title and enriches the match from the relational
// store. Enrichment is best-effort; resolution is not.
type SearchService struct {
	resolver *TitleResolver
	store    port.EnrichmentStore
	history  *HistoryService
}

// NewSearchService creates a new search service.
func NewSearchService(resolver *TitleResolver, store port.EnrichmentStore, history *HistoryService) *SearchService {
	return &SearchService{resolver: resolver, store: store, history: history}
}

// Search resolves title to its best catalog match and attaches extended
// metadata and cast from the relational store. Store failures degrade to an
// empty details block instead of failing the request. Every query lands in
// the search history, failed resolutions with a null matched title.
func (s *SearchService) Search(ctx context.Context, title string) (SearchResult, error) {
	match, err := s.resolver.Resolve(title)
	if err != nil {
		s.history.Record(ctx, title, nil)
		return SearchResult{}, err
	}

	details, enrichment := s.enrich(ctx, match.Movie.Tconst)
	outcome := s.history.Record(ctx, title, &match.Movie.PrimaryTitle)

	slog.Info("search resolved",
		"query", title,
		"matched", match.Movie.PrimaryTitle,
		"stage", match.Stage,
		"enrichment", enrichment,
	)

	return SearchResult{
		Match:          match,
		Details:        details,
		Enrichment:     enrichment,
		HistoryOutcome: outcome,
	}, nil
}

// enrich converts any store failure into an explicit Degraded outcome with
// absent fields, keeping the catalog-backed response intact.
func (s *SearchService) enrich(ctx context.Context, tconst string) (domain.MovieDetails, domain.EnrichmentOutcome) {
	details, err := s.store.MovieDetails(ctx, tconst)
	if err != nil {
		slog.Warn("enrichment degraded", "tconst", tconst, "error", err)
		return domain.MovieDetails{Cast: []domain.CastMember{}}, domain.Degraded
	}
	if details.Cast == nil {
		details.Cast = []domain.CastMember{}
	}
	return details, domain.Enriched
}
