// Package physics implements the Galerkin element-stencil
// contributions each equation form assembles: given an Integrator's
// precomputed integrals, a Variable-Field to solve for, and several
// Scalar-Field coefficients, it fills rows [start_row, start_row+N) of
// the global matrix equation.
package physics

import (
	"github.com/cpmech/gofem1d/boundary"
	"github.com/cpmech/gofem1d/integral"
	"github.com/cpmech/gofem1d/mesh"
)

// Domain bundles one Mesh with the Boundary and IntegralStore built
// over it. A Physics covers one or more disjoint Domains; grouping
// the three together (rather than three parallel slices, as the
// source's MeshPhysicsGroup/BoundaryPhysicsGroup/IntegralPhysicsGroup
// do) keeps them from drifting out of alignment.
type Domain struct {
	Mesh      *mesh.Mesh
	Boundary  *boundary.Boundary
	Integrals *integral.Store
}

// NewDomain builds a Domain and evaluates the basis-function
// derivatives its IntegralStore needs before any EvaluateXxx call.
func NewDomain(m *mesh.Mesh, b *boundary.Boundary, store *integral.Store) (Domain, error) {
	if err := store.EvaluateDerivatives(); err != nil {
		return Domain{}, err
	}
	return Domain{Mesh: m, Boundary: b, Integrals: store}, nil
}
