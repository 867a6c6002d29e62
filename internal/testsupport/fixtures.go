// Package testsupport provides catalog fixtures shared by tests.
package testsupport

import (
	"testing"

	"github.com/arturoeanton/go-movie-recommender/internal/catalog"
	"github.com/arturoeanton/go-movie-recommender/internal/domain"
)

// DenseMatrix converts dense rows into a validated sparse matrix. All rows
// must have the same length.
func DenseMatrix(t *testing.T, rows [][]float64) *catalog.Matrix {
	t.Helper()

	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}

	rowPtr := make([]int, 0, len(rows)+1)
	rowPtr = append(rowPtr, 0)
	var colIdx []int
	var vals []float64
	for _, row := range rows {
		for j, v := range row {
			if v != 0 {
				colIdx = append(colIdx, j)
				vals = append(vals, v)
			}
		}
		rowPtr = append(rowPtr, len(vals))
	}

	m, err := catalog.NewMatrix(len(rows), cols, rowPtr, colIdx, vals)
	if err != nil {
		t.Fatalf("build fixture matrix: %v", err)
	}
	return m
}

// BuildCatalog pairs movies with dense feature rows.
func BuildCatalog(t *testing.T, movies []domain.Movie, rows [][]float64) *catalog.Catalog {
	t.Helper()

	c, err := catalog.New(movies, DenseMatrix(t, rows))
	if err != nil {
		t.Fatalf("build fixture catalog: %v", err)
	}
	return c
}

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

// SampleCatalog returns a small catalog of well-known movies with feature
// vectors derived from their genres, director, and decade. Columns, in
// order: action, crime, drama, sci-fi, thriller, romance, christophernolan,
// 2000s, 2010s.
func SampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	movies := []domain.Movie{
		{
			Tconst:        "tt0468569",
			PrimaryTitle:  "The Dark Knight",
			StartYear:     intp(2008),
			Genres:        []string{"Action", "Crime", "Drama"},
			AverageRating: floatp(9.0),
			NumVotes:      2500000,
			DirectorNames: "ChristopherNolan",
			Soup:          "Action Crime Drama ChristopherNolan 2000s",
		},
		{
			Tconst:        "tt0372784",
			PrimaryTitle:  "Batman Begins",
			StartYear:     intp(2005),
			Genres:        []string{"Action", "Crime", "Drama"},
			AverageRating: floatp(8.2),
			NumVotes:      1400000,
			DirectorNames: "ChristopherNolan",
			Soup:          "Action Crime Drama ChristopherNolan 2000s",
		},
		{
			Tconst:        "tt1375666",
			PrimaryTitle:  "Inception",
			StartYear:     intp(2010),
			Genres:        []string{"Action", "Sci-Fi", "Thriller"},
			AverageRating: floatp(8.8),
			NumVotes:      2300000,
			DirectorNames: "ChristopherNolan",
			Soup:          "Action Sci-Fi Thriller ChristopherNolan 2010s",
		},
		{
			Tconst:        "tt0482571",
			PrimaryTitle:  "The Prestige",
			StartYear:     intp(2006),
			Genres:        []string{"Drama", "Thriller"},
			AverageRating: floatp(8.5),
			NumVotes:      1300000,
			DirectorNames: "ChristopherNolan",
			Soup:          "Drama Thriller ChristopherNolan 2000s",
		},
		{
			Tconst:        "tt0332280",
			PrimaryTitle:  "The Notebook",
			StartYear:     intp(2004),
			Genres:        []string{"Drama", "Romance"},
			AverageRating: floatp(7.8),
			NumVotes:      560000,
			DirectorNames: "NickCassavetes",
			Soup:          "Drama Romance 2000s",
		},
	}

	rows := [][]float64{
		//                     act  cri  dra  sci  thr  rom  nolan 00s  10s
		/* The Dark Knight */ {1, 1, 1, 0, 0, 0, 1, 1, 0},
		/* Batman Begins   */ {1, 1, 1, 0, 0, 0, 1, 1, 0},
		/* Inception       */ {1, 0, 0, 1, 1, 0, 1, 0, 1},
		/* The Prestige    */ {0, 0, 1, 0, 1, 0, 1, 1, 0},
		/* The Notebook    */ {0, 0, 1, 0, 0, 1, 0, 1, 0},
	}

	return BuildCatalog(t, movies, rows)
}

// DuplicateTitleCatalog returns two entries sharing one title with very
// different vote counts, for tie-break tests.
func DuplicateTitleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	movies := []domain.Movie{
		{
			Tconst:       "tt0000001",
			PrimaryTitle: "Inception",
			StartYear:    intp(1999),
			Genres:       []string{"Drama"},
			NumVotes:     100,
		},
		{
			Tconst:       "tt0000002",
			PrimaryTitle: "Inception",
			StartYear:    intp(2010),
			Genres:       []string{"Action", "Sci-Fi"},
			NumVotes:     5000,
		},
	}

	rows := [][]float64{
		{1, 0},
		{0, 1},
	}

	return BuildCatalog(t, movies, rows)
}
