package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/arturoeanton/go-movie-recommender/internal/domain"
)

// PostgresStore handles all relational database operations: enrichment
// reads against the IMDb tables and the append-only search history. Every
// operation acquires a connection from the pool and releases it when done.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection pool and returns a store instance.
// The connection is lazy: a database that is down at startup only fails the
// individual operations that touch it, which the services degrade around.
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresStore{db: db}, nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Ping checks database reachability.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// --- Enrichment ---

// MovieDetails returns the extended metadata and ordered cast for a movie.
// Fields missing from the store stay nil; cast order follows the stored
// billing order.
func (s *PostgresStore) MovieDetails(ctx context.Context, tconst string) (domain.MovieDetails, error) {
	var details domain.MovieDetails

	query := `SELECT original_title, runtime_minutes FROM movies WHERE tconst = $1`

	var originalTitle sql.NullString
	var runtimeMinutes sql.NullInt64
	err := s.db.QueryRowContext(ctx, query, tconst).Scan(&originalTitle, &runtimeMinutes)
	switch {
	case err == sql.ErrNoRows:
		// No metadata row is not a failure: the movie simply has no extras.
	case err != nil:
		return domain.MovieDetails{}, fmt.Errorf("movie details: %w", err)
	default:
		if originalTitle.Valid {
			details.OriginalTitle = &originalTitle.String
		}
		if runtimeMinutes.Valid {
			v := int(runtimeMinutes.Int64)
			details.RuntimeMinutes = &v
		}
	}

	cast, err := s.cast(ctx, tconst)
	if err != nil {
		return domain.MovieDetails{}, err
	}
	details.Cast = cast
	return details, nil
}

// cast returns the billed principals of a movie with their names resolved,
// ordered by billing position.
func (s *PostgresStore) cast(ctx context.Context, tconst string) ([]domain.CastMember, error) {
	query := `SELECT n.primary_name, p.category, p.characters
	          FROM principals p
	          JOIN names n ON p.nconst = n.nconst
	          WHERE p.tconst = $1
	          ORDER BY p.ordering`

	rows, err := s.db.QueryContext(ctx, query, tconst)
	if err != nil {
		return nil, fmt.Errorf("list cast: %w", err)
	}
	defer rows.Close()

	var cast []domain.CastMember
	for rows.Next() {
		var member domain.CastMember
		var characters sql.NullString
		if err := rows.Scan(&member.Name, &member.Role, &characters); err != nil {
			return nil, fmt.Errorf("scan cast member: %w", err)
		}
		if characters.Valid {
			member.Characters = &characters.String
		}
		cast = append(cast, member)
	}
	return cast, rows.Err()
}

// --- Search history ---

// EnsureHistoryTable creates the search_history table if it does not exist.
// Safe to call on every startup.
func (s *PostgresStore) EnsureHistoryTable(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS search_history (
	              id SERIAL PRIMARY KEY,
	              search_query VARCHAR(512) NOT NULL,
	              matched_title VARCHAR(512),
	              searched_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	          )`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("ensure history table: %w", err)
	}
	return nil
}

// InsertSearch appends one history record. matchedTitle is nil when
// resolution failed.
func (s *PostgresStore) InsertSearch(ctx context.Context, query string, matchedTitle *string) error {
	stmt := `INSERT INTO search_history (search_query, matched_title) VALUES ($1, $2)`
	if _, err := s.db.ExecContext(ctx, stmt, query, matchedTitle); err != nil {
		return fmt.Errorf("insert search: %w", err)
	}
	return nil
}

// RecentSearches returns up to limit history records, newest first.
func (s *PostgresStore) RecentSearches(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	query := `SELECT id, search_query, matched_title, searched_at
	          FROM search_history ORDER BY searched_at DESC LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list search history: %w", err)
	}
	defer rows.Close()

	var records []domain.SearchRecord
	for rows.Next() {
		var r domain.SearchRecord
		var matched sql.NullString
		if err := rows.Scan(&r.ID, &r.SearchQuery, &matched, &r.SearchedAt); err != nil {
			return nil, fmt.Errorf("scan search record: %w", err)
		}
		if matched.Valid {
			r.MatchedTitle = &matched.String
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
