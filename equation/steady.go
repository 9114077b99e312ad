// Package equation implements the MatrixEquation abstraction: it
// concatenates one or more Physics into a single global linear
// system, owns the system's storage, drives the linear solve, and
// writes the result back into the bound Variables.
package equation

import (
	"github.com/cpmech/gofem1d/ferr"
	"github.com/cpmech/gofem1d/field"
	"github.com/cpmech/gofem1d/physics"
	"github.com/cpmech/gofem1d/sparse"
)

// Steady owns A (sparse N×N), b and x (dense N) for Ax = b, where N is
// the sum of every distinct Variable-Field's point count across the
// physics it was built from.
type Steady struct {
	physicsList []physics.Steady
	fields      []*field.VariableField // distinct fields, first-encountered order

	n int
	a *sparse.Matrix
	b sparse.Vector
	x sparse.Vector

	solver sparse.Solver
}

// NewSteady assembles the row/column layout: start_row is a prefix
// sum over each physics's variable-field point counts; start_col is a
// prefix sum over each *distinct* variable field (in first-encountered
// order), since several physics may solve for the same field.
func NewSteady(physicsList []physics.Steady, solverName string) (*Steady, error) {
	solver, ok := sparse.Get(solverName)
	if !ok {
		return nil, ferr.New(ferr.InvalidReference, "equation: unknown linear solver %q", solverName)
	}

	eq := &Steady{physicsList: physicsList, solver: solver}

	row := 0
	seen := make(map[*field.VariableField]bool)
	col := 0
	for _, p := range physicsList {
		blockSize := 0
		for _, f := range p.VariableFields() {
			blockSize += f.NumPointField()
			if !seen[f] {
				seen[f] = true
				f.StartCol = col
				col += f.NumPointField()
				eq.fields = append(eq.fields, f)
			}
		}
		p.SetStartRow(row)
		row += blockSize
	}
	if row != col {
		return nil, ferr.New(ferr.InvalidReference, "equation: physics row width %d does not match variable-field column width %d", row, col)
	}

	eq.n = row
	eq.a = sparse.NewMatrix(eq.n, eq.n)
	eq.b = sparse.NewVector(eq.n)
	eq.x = sparse.NewVector(eq.n)
	return eq, nil
}

// X returns the current solution vector (read-only view).
func (eq *Steady) X() sparse.Vector { return eq.x }

// IterateSolution clears A and b, refills them from every physics,
// solves Ax=b and overwrites x. On a numeric failure, x is left
// exactly as it was before the call.
func (eq *Steady) IterateSolution() error {
	eq.a.Clear()
	eq.b.Clear()
	for _, p := range eq.physicsList {
		if err := p.MatrixFill(eq.a, eq.b, eq.x); err != nil {
			return err
		}
	}
	xNew, err := eq.solver.Solve(eq.a, eq.b)
	if err != nil {
		return err
	}
	eq.x = xNew
	return nil
}

// StoreSolution writes x back into every distinct Variable-Field's
// underlying Variables.
func (eq *Steady) StoreSolution() {
	for _, f := range eq.fields {
		for _, v := range f.Members() {
			for _, pt := range v.MeshOf().Points {
				fid, ok := f.Fid(pt.Gid)
				if !ok {
					continue
				}
				v.Set(pt.Did, eq.x[f.StartCol+fid])
			}
		}
	}
}
