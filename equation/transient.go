package equation

import (
	"github.com/cpmech/gofem1d/ferr"
	"github.com/cpmech/gofem1d/field"
	"github.com/cpmech/gofem1d/physics"
	"github.com/cpmech/gofem1d/sparse"
)

// Transient owns A, C (sparse N×N), d and x_last_timestep (dense N)
// for the backward-Euler system A·x(t+1) = C·x(t) + d.
type Transient struct {
	physicsList []physics.Transient
	fields      []*field.VariableField

	n         int
	a, c      *sparse.Matrix
	d         sparse.Vector
	x, xLast  sparse.Vector

	solver sparse.Solver
}

// NewTransient lays out rows/columns exactly like NewSteady.
func NewTransient(physicsList []physics.Transient, solverName string) (*Transient, error) {
	solver, ok := sparse.Get(solverName)
	if !ok {
		return nil, ferr.New(ferr.InvalidReference, "equation: unknown linear solver %q", solverName)
	}

	eq := &Transient{physicsList: physicsList, solver: solver}

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
	eq.c = sparse.NewMatrix(eq.n, eq.n)
	eq.d = sparse.NewVector(eq.n)
	eq.x = sparse.NewVector(eq.n)
	eq.xLast = sparse.NewVector(eq.n)
	return eq, nil
}

// X returns the current solution vector (read-only view).
func (eq *Transient) X() sparse.Vector { return eq.x }

// IterateSolution clears A, C, d; refills them from every physics;
// forms rhs = C·x_last + d; and solves A·x_new = rhs.
func (eq *Transient) IterateSolution(dt float64) error {
	eq.a.Clear()
	eq.c.Clear()
	eq.d.Clear()
	for _, p := range eq.physicsList {
		if err := p.MatrixFill(eq.a, eq.c, eq.d, eq.x, eq.xLast, dt); err != nil {
			return err
		}
	}

	rhs := eq.c.MulVec(eq.xLast)
	for i := range rhs {
		rhs[i] += eq.d[i]
	}

	xNew, err := eq.solver.Solve(eq.a, rhs)
	if err != nil {
		return err
	}
	eq.x = xNew
	return nil
}

// StoreSolution writes x back into every distinct Variable-Field's
// underlying Variables (identical to the steady variant).
func (eq *Transient) StoreSolution() {
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

// NextTimestep advances the stored history: x_last <- x.
func (eq *Transient) NextTimestep() {
	copy(eq.xLast, eq.x)
}
