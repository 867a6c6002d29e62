package port

import "errors"

// Sentinel errors used across ports.
var (
	ErrMovieNotFound       = errors.New("movie not found")
	ErrHistoryUnavailable  = errors.New("search history unavailable")
	ErrCatalogMisaligned   = errors.New("catalog entries and matrix rows are misaligned")
	ErrInvalidHistoryLimit = errors.New("history limit must be between 1 and 500")
)
