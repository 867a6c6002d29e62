package service

import (
	"context"
	"log/slog"

	"github.com/arturoeanton/go-movie-recommender/internal/domain"
)

// RecommendResult is the outcome of a resolve-and-rank request.
type RecommendResult struct {
	Match           domain.ResolvedMatch
	Recommendations []domain.Recommendation
	HistoryOutcome  domain.WriteOutcome
}

// RecommendService resolves a title and ranks the catalog against it.
type RecommendService struct {
	resolver *TitleResolver
	ranker   *Ranker
	history  *HistoryService
}

// NewRecommendService creates a new recommendation service.
func NewRecommendService(resolver *TitleResolver, ranker *Ranker, history *HistoryService) *RecommendService {
	return &RecommendService{resolver: resolver, ranker: ranker, history: history}
}

// Recommend resolves title and returns the topN most similar movies. Every
// request is recorded in the search history, including failed resolutions,
// which are logged with a null matched title before the not-found error is
// returned.
func (s *RecommendService) Recommend(ctx context.Context, title string, topN int) (RecommendResult, error) {
	match, err := s.resolver.Resolve(title)
	if err != nil {
		s.history.Record(ctx, title, nil)
		return RecommendResult{}, err
	}

	recs := s.ranker.Rank(match.Index, topN)
	outcome := s.history.Record(ctx, title, &match.Movie.PrimaryTitle)

	slog.Info("recommendations computed",
		"query", title,
		"matched", match.Movie.PrimaryTitle,
		"stage", match.Stage,
		"results", len(recs),
	)

	return RecommendResult{
		Match:           match,
		Recommendations: recs,
		HistoryOutcome:  outcome,
	}, nil
}
