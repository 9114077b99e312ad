// Package driver implements the outer run loops: the Picard
// fixed-point loop for steady physics with nonlinear coefficients, and
// the fixed-timestep loop for transient physics. Logging goes through
// gosl/io.Pf; convergence is measured with the Euclidean (L2) norm.
package driver

import (
	"github.com/cpmech/gofem1d/equation"
	"github.com/cpmech/gofem1d/ferr"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// Config holds the client-supplied knobs a run loop needs.
type Config struct {
	MaxIter      int     // iteration cap (steady Picard loop)
	Tol          float64 // L2 convergence threshold on ||x_new - x_old||
	Dt           float64 // timestep length (transient only)
	NumTimesteps int     // number of timesteps to run (transient only)
	Verbose      bool
}

// RunSteady drives equation.Steady through Picard iteration: refill
// and solve, measure the L2 change in x, repeat until it drops below
// cfg.Tol or cfg.MaxIter is exhausted. The caller is expected to
// mutate nonlinear Scalars (e.g. from the just-updated Variables)
// between calls to eq.IterateSolution by wiring a recompute callback;
// RunSteady itself only drives the fixed-point loop and does not know
// about coefficient recomputation.
func RunSteady(eq *equation.Steady, cfg Config, recompute func()) (iters int, residual float64, err error) {
	for iters = 0; iters < cfg.MaxIter; iters++ {
		if recompute != nil {
			recompute()
		}
		xOld := append([]float64(nil), eq.X()...)
		if err := eq.IterateSolution(); err != nil {
			return iters, residual, err
		}
		diff := make([]float64, len(xOld))
		for i := range xOld {
			diff[i] = eq.X()[i] - xOld[i]
		}
		residual = floats.Norm(diff, 2)
		eq.StoreSolution()
		if cfg.Verbose {
			io.Pf(">> Picard iteration %d: residual = %v\n", iters, residual)
		}
		if residual < cfg.Tol {
			return iters + 1, residual, nil
		}
	}
	return iters, residual, ferr.New(ferr.NonConvergence, "Picard loop did not converge within %d iterations (final residual %v, tol %v)", cfg.MaxIter, residual, cfg.Tol)
}

// RunTransient drives equation.Transient through cfg.NumTimesteps
// backward-Euler steps, storing the solution and advancing x_last
// after each one.
func RunTransient(eq *equation.Transient, cfg Config) error {
	for step := 0; step < cfg.NumTimesteps; step++ {
		if err := eq.IterateSolution(cfg.Dt); err != nil {
			return err
		}
		eq.StoreSolution()
		eq.NextTimestep()
		if cfg.Verbose {
			io.Pf(">> timestep %d/%d done (dt=%v)\n", step+1, cfg.NumTimesteps, cfg.Dt)
		}
	}
	return nil
}
