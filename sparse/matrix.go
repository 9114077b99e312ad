// Package sparse implements the COO-style accumulating matrix that
// MatrixEquation assembles into, and the linear-solver seam the
// assembled system hands off to: callers only ever need solve(A,b) ->
// x.
//
// Entries accumulate under Add the same way the source's Eigen
// triplet/coeffRef pattern does; ZeroRow additionally supports the
// strong-Dirichlet row-wipe boundary conditions need, which a pure
// append-only triplet cannot express without a dense pass.
package sparse

import "gonum.org/v1/gonum/mat"

// Matrix is an nrows x ncols matrix stored as a row-bucketed map of
// column -> value. Rows with no entries cost nothing.
type Matrix struct {
	nrows, ncols int
	rows         map[int]map[int]float64
}

// NewMatrix allocates an empty nrows x ncols Matrix.
func NewMatrix(nrows, ncols int) *Matrix {
	return &Matrix{nrows: nrows, ncols: ncols, rows: make(map[int]map[int]float64)}
}

// Dims returns (nrows, ncols).
func (m *Matrix) Dims() (int, int) { return m.nrows, m.ncols }

// Add accumulates v into entry (i,j), matching the element-assembly
// convention of "A[i,j] +=". Out-of-range indices panic: a physics
// bug that miscomputes start_row/start_col should fail loudly rather
// than silently corrupt the system.
func (m *Matrix) Add(i, j int, v float64) {
	m.checkBounds(i, j)
	row := m.rows[i]
	if row == nil {
		row = make(map[int]float64)
		m.rows[i] = row
	}
	row[j] += v
}

// Get returns the current value of entry (i,j), or 0 if unset.
func (m *Matrix) Get(i, j int) float64 {
	m.checkBounds(i, j)
	row, ok := m.rows[i]
	if !ok {
		return 0
	}
	return row[j]
}

// ZeroRow erases every entry accumulated so far in row i. Contributions
// added to row i *after* this call are kept; this is what lets the
// flux -> zero -> dirichlet boundary application order work: flux
// terms written before ZeroRow vanish, dirichlet terms written after
// it land.
func (m *Matrix) ZeroRow(i int) {
	if i < 0 || i >= m.nrows {
		panic("sparse: row index out of range")
	}
	delete(m.rows, i)
}

// Clear empties every entry while preserving nrows/ncols, for re-use
// across MatrixEquation.iterate_solution calls.
func (m *Matrix) Clear() {
	m.rows = make(map[int]map[int]float64)
}

// NNZ returns the number of explicitly stored entries.
func (m *Matrix) NNZ() int {
	n := 0
	for _, row := range m.rows {
		n += len(row)
	}
	return n
}

func (m *Matrix) checkBounds(i, j int) {
	if i < 0 || i >= m.nrows || j < 0 || j >= m.ncols {
		panic("sparse: index out of range")
	}
}

// MulVec returns A·v as a new Vector, without ever densifying A.
func (m *Matrix) MulVec(v Vector) Vector {
	if len(v) != m.ncols {
		panic("sparse: matrix/vector size mismatch")
	}
	out := NewVector(m.nrows)
	for i, row := range m.rows {
		var sum float64
		for j, val := range row {
			sum += val * v[j]
		}
		out[i] = sum
	}
	return out
}

// Dense materialises the matrix as a gonum *mat.Dense, the form the
// default solver consumes.
func (m *Matrix) Dense() *mat.Dense {
	d := mat.NewDense(m.nrows, m.ncols, nil)
	for i, row := range m.rows {
		for j, v := range row {
			d.Set(i, j, v)
		}
	}
	return d
}

// Vector is a dense right-hand-side or solution vector. It is a plain
// []float64 slice; the type exists only to give AddAt a clear home.
type Vector []float64

// NewVector allocates a zeroed Vector of length n.
func NewVector(n int) Vector { return make(Vector, n) }

// AddAt accumulates v into entry i, mirroring Matrix.Add for the
// dense right-hand-side / generation-term vectors every physics fills.
func (v Vector) AddAt(i int, val float64) { v[i] += val }

// Clear zeroes every entry in place.
func (v Vector) Clear() {
	for i := range v {
		v[i] = 0
	}
}
