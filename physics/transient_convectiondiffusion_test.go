package physics

import (
	"math"
	"testing"

	"github.com/cpmech/gofem1d/boundary"
	"github.com/cpmech/gofem1d/field"
	"github.com/cpmech/gofem1d/integral"
	"github.com/cpmech/gofem1d/sparse"
)

// a zero-velocity transient run with no boundary conditions should
// reduce A and C to (a/dt)*NiNj + b*stiffness and (a/dt)*NiNj
// respectively; backward-Euler with vanishing convection is the
// simplest check that the two matrices were assembled consistently.
func TestTransientMatrixFillReducesToDiffusionWithoutVelocity(tst *testing.T) {
	m := buildUniformMesh(tst, 1)
	store := integral.New(m)
	bnd, err := boundary.New(nil, nil, nil, nil, nil, nil)
	if err != nil {
		tst.Fatalf("unexpected boundary error: %v", err)
	}
	dom, err := NewDomain(m, bnd, store)
	if err != nil {
		tst.Fatal(err)
	}

	value := field.NewVariable(m, 0)
	valueField := field.NewVariableField([]*field.Variable{value})
	valueField.StartCol = 0

	derv := field.NewScalarField([]*field.Scalar{field.NewScalar(m, 1)})
	diff := field.NewScalarField([]*field.Scalar{field.NewScalar(m, 1)})
	vel := field.NewScalarField([]*field.Scalar{field.NewScalar(m, 0)})
	gen := field.NewScalarField([]*field.Scalar{field.NewScalar(m, 0)})

	phys, err := NewTransientConvectionDiffusion([]Domain{dom}, valueField, derv, diff, vel, gen)
	if err != nil {
		tst.Fatalf("unexpected physics error: %v", err)
	}
	phys.SetStartRow(0)

	n := valueField.NumPointField()
	a := sparse.NewMatrix(n, n)
	c := sparse.NewMatrix(n, n)
	d := sparse.NewVector(n)
	x := sparse.NewVector(n)
	xLast := sparse.NewVector(n)
	dt := 0.5

	if err := phys.MatrixFill(a, c, d, x, xLast, dt); err != nil {
		tst.Fatalf("unexpected matrix_fill error: %v", err)
	}

	// element [0,1]: NiNj = [[1/3,1/6],[1/6,1/3]], stiffness = [[1,-1],[-1,1]].
	if !closeF(a.Get(0, 0), 1.0/3/dt+1, 1e-9) {
		tst.Fatalf("expected a[0,0] = (1/3)/dt + 1, got %g", a.Get(0, 0))
	}
	if !closeF(c.Get(0, 0), 1.0/3/dt, 1e-9) {
		tst.Fatalf("expected c[0,0] = (1/3)/dt, got %g", c.Get(0, 0))
	}
	if !closeF(a.Get(0, 1)-c.Get(0, 1), -1, 1e-9) {
		tst.Fatalf("expected a-c off diagonal to equal the pure stiffness term, got %g", a.Get(0, 1)-c.Get(0, 1))
	}
}

func TestTransientZeroesRowsBeforeDirichlet(tst *testing.T) {
	m := buildUniformMesh(tst, 1)
	store := integral.New(m)
	bnd, err := boundary.New(nil, nil, nil, []int{0}, []int{0}, []int{0})
	if err != nil {
		tst.Fatal(err)
	}
	if err := bnd.SetCondition(0, boundary.Dirichlet, []float64{7}); err != nil {
		tst.Fatal(err)
	}
	dom, err := NewDomain(m, bnd, store)
	if err != nil {
		tst.Fatal(err)
	}

	value := field.NewVariable(m, 0)
	valueField := field.NewVariableField([]*field.Variable{value})
	valueField.StartCol = 0

	derv := field.NewScalarField([]*field.Scalar{field.NewScalar(m, 1)})
	diff := field.NewScalarField([]*field.Scalar{field.NewScalar(m, 1)})
	vel := field.NewScalarField([]*field.Scalar{field.NewScalar(m, 0)})
	gen := field.NewScalarField([]*field.Scalar{field.NewScalar(m, 0)})

	phys, err := NewTransientConvectionDiffusion([]Domain{dom}, valueField, derv, diff, vel, gen)
	if err != nil {
		tst.Fatal(err)
	}
	phys.SetStartRow(0)

	n := valueField.NumPointField()
	a := sparse.NewMatrix(n, n)
	c := sparse.NewMatrix(n, n)
	d := sparse.NewVector(n)
	x := sparse.NewVector(n)
	xLast := sparse.NewVector(n)

	if err := phys.MatrixFill(a, c, d, x, xLast, 1.0); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	fid0, _ := valueField.Fid(0)
	if a.Get(fid0, fid0) != 1 {
		tst.Fatalf("expected dirichlet row pinned to 1, got %g", a.Get(fid0, fid0))
	}
	if c.Get(fid0, fid0) != 0 {
		tst.Fatalf("expected c row zeroed by the dirichlet condition, got %g", c.Get(fid0, fid0))
	}
	if d[fid0] != 7 {
		tst.Fatalf("expected d[0] = 7, got %g", d[fid0])
	}
}

// at steady state the backward-Euler pair (A, C) collapses to (A-C)x=d,
// since the mass term (derivative/dt)*NiNj is identical in both and
// cancels; what's left is the discrete convection-diffusion operator
// that velx[i]*NiDNj + sum_k velx[k]*NiNjDNk is responsible for. For a
// uniform velocity field the consistent convection matrix reduces to
// the mesh-independent [[-1/2,1/2],[-1/2,1/2]] pattern (NiNjDNk vanishes
// because a constant field's derivative, summed over the partition of
// unity, is zero), which turns the interior rows into the classic
// geometric recurrence u_i = A + B*r^i with r = (b+Vh/2)/(b-Vh/2). This
// test solves that reduced system directly and checks it against the
// closed form of the recurrence, exercising the convection terms with
// nonzero velocity and a neumann boundary, neither of which the other
// transient tests in this package drive.
func TestTransientConvectionDiffusionSteadyStateMatchesRecurrence(tst *testing.T) {
	n := 10
	m := buildUniformMesh(tst, n)
	store := integral.New(m)

	const (
		b    = 1.0  // diffusion
		V    = 2.0  // uniform velocity
		u0   = 50.0 // left dirichlet value
		flux = 5.0  // right neumann flux: b*u'(1)
	)

	bnd, err := boundary.New([]int{n - 1}, []int{1}, []int{0}, []int{0}, []int{0}, []int{1})
	if err != nil {
		tst.Fatalf("unexpected boundary error: %v", err)
	}
	if err := bnd.SetCondition(0, boundary.Neumann, []float64{flux}); err != nil {
		tst.Fatal(err)
	}
	if err := bnd.SetCondition(1, boundary.Dirichlet, []float64{u0}); err != nil {
		tst.Fatal(err)
	}
	dom, err := NewDomain(m, bnd, store)
	if err != nil {
		tst.Fatalf("unexpected domain error: %v", err)
	}

	value := field.NewVariable(m, 0)
	valueField := field.NewVariableField([]*field.Variable{value})
	valueField.StartCol = 0

	derv := field.NewScalarField([]*field.Scalar{field.NewScalar(m, 1)})
	diff := field.NewScalarField([]*field.Scalar{field.NewScalar(m, b)})
	vel := field.NewScalarField([]*field.Scalar{field.NewScalar(m, V)})
	gen := field.NewScalarField([]*field.Scalar{field.NewScalar(m, 0)})

	phys, err := NewTransientConvectionDiffusion([]Domain{dom}, valueField, derv, diff, vel, gen)
	if err != nil {
		tst.Fatalf("unexpected physics error: %v", err)
	}
	phys.SetStartRow(0)

	size := valueField.NumPointField()
	a := sparse.NewMatrix(size, size)
	c := sparse.NewMatrix(size, size)
	d := sparse.NewVector(size)
	x := sparse.NewVector(size)
	xLast := sparse.NewVector(size)

	if err := phys.MatrixFill(a, c, d, x, xLast, 1.0); err != nil {
		tst.Fatalf("unexpected matrix_fill error: %v", err)
	}

	steady := sparse.NewMatrix(size, size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			steady.Add(i, j, a.Get(i, j)-c.Get(i, j))
		}
	}

	solver, _ := sparse.Get("dense")
	sol, err := solver.Solve(steady, d)
	if err != nil {
		tst.Fatalf("unexpected solve error: %v", err)
	}

	h := 1.0 / float64(n)
	alpha := b + V*h/2
	beta := b - V*h/2
	r := alpha / beta
	// B from the neumann closure at node n: u_n - u_{n-1} = B*r^(n-1)*(r-1) = flux*h/alpha
	bCoeff := flux * h / (alpha * math.Pow(r, float64(n-1)) * (r - 1))
	aCoeff := u0 - bCoeff

	for i := 0; i <= n; i++ {
		fid, _ := valueField.Fid(i)
		want := aCoeff + bCoeff*math.Pow(r, float64(i))
		if !closeF(sol[fid], want, 1e-6) {
			tst.Fatalf("node %d: expected %g from the discrete recurrence, got %g", i, want, sol[fid])
		}
	}
}
