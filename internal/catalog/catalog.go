package catalog

import (
	"fmt"

	"github.com/arturoeanton/go-movie-recommender/internal/domain"
	"github.com/arturoeanton/go-movie-recommender/internal/port"
)

// Catalog is the immutable in-memory snapshot of movie records plus the
// aligned TF-IDF matrix. Movie i corresponds exactly to matrix row i. It is
// built once at startup and safely shared by all requests without locking.
type Catalog struct {
	movies []domain.Movie
	matrix *Matrix
}

// New pairs movies with their feature matrix, enforcing the row-alignment
// invariant.
func New(movies []domain.Movie, matrix *Matrix) (*Catalog, error) {
	if matrix.Rows() != len(movies) {
		return nil, fmt.Errorf("%w: %d movies vs %d matrix rows",
			port.ErrCatalogMisaligned, len(movies), matrix.Rows())
	}
	return &Catalog{movies: movies, matrix: matrix}, nil
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.movies) }

// Movie returns the entry at catalog row i.
func (c *Catalog) Movie(i int) domain.Movie { return c.movies[i] }

// Movies returns the ordered entry sequence. Callers must treat it as
// read-only.
func (c *Catalog) Movies() []domain.Movie { return c.movies }

// Cosine returns the cosine similarity between the feature rows of entries
// i and j.
func (c *Catalog) Cosine(i, j int) float64 { return c.matrix.Cosine(i, j) }

// Similarities computes the cosine similarity of entry i against every
// catalog entry, including itself.
func (c *Catalog) Similarities(i int) []float64 {
	scores := make([]float64, len(c.movies))
	for j := range scores {
		scores[j] = c.matrix.Cosine(i, j)
	}
	return scores
}
