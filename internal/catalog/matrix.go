package catalog

import (
	"fmt"
	"math"
)

// Matrix is a frozen sparse TF-IDF matrix in compressed-sparse-row form:
// row i spans vals[rowPtr[i]:rowPtr[i+1]], with column indices in colIdx
// sorted ascending within each row. Never mutated after construction.
type Matrix struct {
	rows   int
	cols   int
	rowPtr []int
	colIdx []int
	vals   []float64
	norms  []float64
}

// NewMatrix validates the CSR arrays and precomputes per-row norms.
func NewMatrix(rows, cols int, rowPtr, colIdx []int, vals []float64) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("negative matrix dimensions %dx%d", rows, cols)
	}
	if len(rowPtr) != rows+1 {
		return nil, fmt.Errorf("rowPtr length %d, want %d", len(rowPtr), rows+1)
	}
	if len(colIdx) != len(vals) {
		return nil, fmt.Errorf("colIdx length %d does not match vals length %d", len(colIdx), len(vals))
	}
	if rows > 0 && (rowPtr[0] != 0 || rowPtr[rows] != len(vals)) {
		return nil, fmt.Errorf("rowPtr bounds [%d,%d] do not span %d values", rowPtr[0], rowPtr[rows], len(vals))
	}
	for i := 0; i < rows; i++ {
		if rowPtr[i] > rowPtr[i+1] {
			return nil, fmt.Errorf("rowPtr decreases at row %d", i)
		}
		for k := rowPtr[i]; k < rowPtr[i+1]; k++ {
			if colIdx[k] < 0 || colIdx[k] >= cols {
				return nil, fmt.Errorf("row %d references column %d outside 0..%d", i, colIdx[k], cols-1)
			}
			if k > rowPtr[i] && colIdx[k] <= colIdx[k-1] {
				return nil, fmt.Errorf("row %d has unsorted column indices", i)
			}
		}
	}

	m := &Matrix{rows: rows, cols: cols, rowPtr: rowPtr, colIdx: colIdx, vals: vals}
	m.norms = make([]float64, rows)
	for i := 0; i < rows; i++ {
		var sum float64
		for k := rowPtr[i]; k < rowPtr[i+1]; k++ {
			sum += vals[k] * vals[k]
		}
		m.norms[i] = math.Sqrt(sum)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the vocabulary size.
func (m *Matrix) Cols() int { return m.cols }

// Dot computes the sparse dot product of rows i and j.
func (m *Matrix) Dot(i, j int) float64 {
	var dot float64
	a, aEnd := m.rowPtr[i], m.rowPtr[i+1]
	b, bEnd := m.rowPtr[j], m.rowPtr[j+1]
	for a < aEnd && b < bEnd {
		switch {
		case m.colIdx[a] < m.colIdx[b]:
			a++
		case m.colIdx[a] > m.colIdx[b]:
			b++
		default:
			dot += m.vals[a] * m.vals[b]
			a++
			b++
		}
	}
	return dot
}

// Cosine computes the cosine similarity of rows i and j. An all-zero row
// has similarity 0 against everything, including itself.
func (m *Matrix) Cosine(i, j int) float64 {
	if m.norms[i] == 0 || m.norms[j] == 0 {
		return 0
	}
	return m.Dot(i, j) / (m.norms[i] * m.norms[j])
}
