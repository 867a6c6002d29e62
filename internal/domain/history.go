package domain

import "time"

// SearchRecord is one row of the append-only search history. MatchedTitle is
// nil when resolution failed. Records are never updated or deleted here.
type SearchRecord struct {
	ID           int64     `json:"id"`
	SearchQuery  string    `json:"search_query"`
	MatchedTitle *string   `json:"matched_title"`
	SearchedAt   time.Time `json:"searched_at"`
}

// WriteOutcome marks whether a history write landed or was dropped because
// the store was unavailable. Dropped is a normal, non-fatal outcome.
type WriteOutcome string

const (
	Written WriteOutcome = "written"
	Dropped WriteOutcome = "dropped"
)
