package sparse

import (
	"math"

	"github.com/cpmech/gofem1d/ferr"
	"gonum.org/v1/gonum/mat"
)

// Solver is the seam between the assembled linear system and whatever
// factors it: MatrixEquation only ever calls solve(A,b) -> x. Swapping
// in a sparse direct solver (e.g. gosl/la's umfpack/mumps wrappers)
// only requires a new Solver, never a change to MatrixEquation.
type Solver interface {
	Solve(a *Matrix, b Vector) (Vector, error)
}

// registry of named solvers, following the allocator-map idiom
// (name -> factory function).
var registry = map[string]func() Solver{
	"dense": func() Solver { return DenseLUSolver{} },
}

// Register adds a named Solver factory to the registry.
func Register(name string, factory func() Solver) { registry[name] = factory }

// Get looks up a Solver by name.
func Get(name string) (Solver, bool) {
	factory, ok := registry[name]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// DenseLUSolver densifies A and factors it with gonum's LU
// decomposition. Adequate for the problem sizes a 1D line2 mesh
// produces; a client solving very large assemblies should Register a
// solver backed by a real sparse factorization instead.
type DenseLUSolver struct{}

// Solve implements Solver.
func (DenseLUSolver) Solve(a *Matrix, b Vector) (Vector, error) {
	n, m := a.Dims()
	if n != m {
		return nil, ferr.New(ferr.NumericFailure, "matrix is not square: %dx%d", n, m)
	}
	if n != len(b) {
		return nil, ferr.New(ferr.NumericFailure, "matrix/rhs size mismatch: %d vs %d", n, len(b))
	}

	var x mat.Dense
	bv := mat.NewDense(n, 1, append(Vector(nil), b...))
	if err := x.Solve(a.Dense(), bv); err != nil {
		return nil, ferr.New(ferr.NumericFailure, "linear solve failed (system is likely singular or ill-conditioned): %v", err)
	}

	out := NewVector(n)
	for i := 0; i < n; i++ {
		v := x.At(i, 0)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ferr.New(ferr.NumericFailure, "solution contains NaN/Inf at row %d (system is likely singular or ill-conditioned)", i)
		}
		out[i] = v
	}
	return out, nil
}
