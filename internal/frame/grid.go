// internal/frame/grid.go
package frame

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrShapeMismatch means a flat frame cannot fill rows x cols exactly.
var ErrShapeMismatch = errors.New("shape mismatch")

// Grid is a rows x cols matrix of raw tactile intensities.
type Grid struct {
	m *mat.Dense
}

// Reshape lays flat out row-major into a rows x cols grid.
func Reshape(flat []uint16, rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: invalid dims %dx%d", ErrShapeMismatch, rows, cols)
	}
	if len(flat) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for %dx%d grid", ErrShapeMismatch, len(flat), rows, cols)
	}

	data := make([]float64, len(flat))
	for i, v := range flat {
		data[i] = float64(v)
	}
	return &Grid{m: mat.NewDense(rows, cols, data)}, nil
}

// Dims returns rows, cols.
func (g *Grid) Dims() (int, int) {
	return g.m.Dims()
}

// At returns the raw value at row r, column c.
func (g *Grid) At(r, c int) float64 {
	return g.m.At(r, c)
}

// Values returns a row-major copy of the grid.
func (g *Grid) Values() []int {
	rows, cols := g.m.Dims()
	out := make([]int, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, int(g.m.At(r, c)))
		}
	}
	return out
}

// Max returns the largest cell value.
func (g *Grid) Max() float64 {
	return mat.Max(g.m)
}

// String formats the grid as aligned rows, one per line.
func (g *Grid) String() string {
	return fmt.Sprintf("%v", mat.Formatted(g.m, mat.Squeeze()))
}
