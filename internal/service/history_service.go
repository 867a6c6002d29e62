package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arturoeanton/go-movie-recommender/internal/domain"
	"github.com/arturoeanton/go-movie-recommender/internal/port"
)

// DefaultHistoryLimit is used when the caller does not ask for a specific
// number of records.
const DefaultHistoryLimit = 50

// maxHistoryLimit caps a single history read.
const maxHistoryLimit = 500

// HistoryService wraps the history store with the failure policy the search
// path needs: writes are fire-and-forget, reads surface their errors.
type HistoryService struct {
	store port.HistoryStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(store port.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Record appends a search outcome to the history. matchedTitle is nil when
// resolution failed. A store failure is logged and reported as Dropped; it
// must never fail the request that triggered the write.
func (s *HistoryService) Record(ctx context.Context, query string, matchedTitle *string) domain.WriteOutcome {
	if err := s.store.InsertSearch(ctx, query, matchedTitle); err != nil {
		slog.Warn("search history write dropped", "query", query, "error", err)
		return domain.Dropped
	}
	return domain.Written
}

// Recent returns up to limit history records, most recent first. Unlike
// Record, a store failure here is surfaced: retrieval is the whole point of
// the call.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	if limit < 1 || limit > maxHistoryLimit {
		return nil, port.ErrInvalidHistoryLimit
	}
	records, err := s.store.RecentSearches(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrHistoryUnavailable, err)
	}
	return records, nil
}
