package catalog

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/arturoeanton/go-movie-recommender/internal/domain"
)

// moviesArtifact is the on-disk shape of the frozen movie table.
type moviesArtifact struct {
	Version int            `json:"version"`
	Movies  []domain.Movie `json:"movies"`
}

// matrixArtifact is the on-disk shape of the frozen TF-IDF matrix, stored
// in CSR form alongside the movie table it was vectorized from.
type matrixArtifact struct {
	Rows   int       `json:"rows"`
	Cols   int       `json:"cols"`
	RowPtr []int     `json:"rowPtr"`
	ColIdx []int     `json:"colIdx"`
	Vals   []float64 `json:"vals"`
}

// Load reads both halves of the versioned catalog artifact and pairs them.
// Any missing file, decode failure, or row misalignment is fatal: the
// process cannot serve without a consistent snapshot.
func Load(moviesPath, matrixPath string) (*Catalog, error) {
	var movies moviesArtifact
	if err := decodeFile(moviesPath, &movies); err != nil {
		return nil, fmt.Errorf("load movie table: %w", err)
	}

	var mat matrixArtifact
	if err := decodeFile(matrixPath, &mat); err != nil {
		return nil, fmt.Errorf("load feature matrix: %w", err)
	}

	matrix, err := NewMatrix(mat.Rows, mat.Cols, mat.RowPtr, mat.ColIdx, mat.Vals)
	if err != nil {
		return nil, fmt.Errorf("build feature matrix: %w", err)
	}

	return New(movies.Movies, matrix)
}

func decodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
