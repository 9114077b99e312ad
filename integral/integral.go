// Package integral computes the per-element Galerkin test-function
// integrals that the physics layer needs to assemble its local
// stencils, using 2-point Gauss quadrature on linear two-node
// (line2) elements.
//
// The source this package is grounded on appends into growable
// vectors on every call, so re-evaluating an integral duplicates its
// entries. Store instead pre-sizes every array to the element count
// and overwrites in place, making every Evaluate* method idempotent.
package integral

import (
	"math"

	"github.com/cpmech/gofem1d/ferr"
	"github.com/cpmech/gofem1d/mesh"
)

// quadrature point locations on the reference interval [-1,+1]; the
// two-point Gauss rule has unit weights once the Jacobian is folded in.
var gaussPoints = [2]float64{-1.0 / math.Sqrt(3.0), 1.0 / math.Sqrt(3.0)}

// refN evaluates the i-th line2 reference basis function at a.
func refN(i int, a float64) float64 {
	if i == 0 {
		return 0.5 * (1 - a)
	}
	return 0.5 * (1 + a)
}

// refDN returns the i-th reference basis function's derivative
// w.r.t. a; constant over the element since the basis is linear.
func refDN(i int) float64 {
	if i == 0 {
		return -0.5
	}
	return 0.5
}

// Store caches, per element of one Mesh, the Galerkin integrals the
// physics packages assemble from. All arrays are indexed
// [elementDid][i], [elementDid][i][j] or [elementDid][i][j][k] with
// i,j,k in {0,1}.
type Store struct {
	mesh *mesh.Mesh

	jacobianDet [][2]float64 // [elemDid][quadPt]
	n           [][2][2]float64 // [elemDid][quadPt][i]
	dndx        [][2][2]float64 // [elemDid][quadPt][i]

	derivsReady bool

	Ni             [][2]float64       // ∫ N_i
	DNi            [][2]float64       // ∫ dN_i/dx
	NiNj           [][2][2]float64    // ∫ N_i N_j
	NiDNj          [][2][2]float64    // ∫ N_i dN_j/dx
	DivNiDivNj     [][2][2]float64    // ∫ dN_i/dx dN_j/dx
	NiNjDNk        [][2][2][2]float64 // ∫ N_i N_j dN_k/dx
}

// New allocates a Store sized to mesh's element count. No integral
// arrays are populated until EvaluateDerivatives and the wanted
// EvaluateXxx methods are called.
func New(m *mesh.Mesh) *Store {
	n := m.NumElems()
	return &Store{
		mesh:        m,
		jacobianDet: make([][2]float64, n),
		n:           make([][2][2]float64, n),
		dndx:        make([][2][2]float64, n),
	}
}

// EvaluateDerivatives computes, for every element, the isoparametric
// Jacobian, basis functions and physical-space derivatives at both
// Gauss points. It must be called once before any EvaluateXxx method,
// and is itself idempotent (re-running overwrites, never duplicates).
//
// An element whose two endpoints coincide has a zero Jacobian; that
// is reported as ferr.InvalidTopology rather than silently dividing
// by zero and propagating NaN downstream.
func (s *Store) EvaluateDerivatives() error {
	for eDid, e := range s.mesh.Elems {
		p0did, _ := s.mesh.PointDid(e.P0Gid)
		p1did, _ := s.mesh.PointDid(e.P1Gid)
		x0 := s.mesh.Points[p0did].X
		x1 := s.mesh.Points[p1did].X
		dxda := 0.5 * (x1 - x0)
		if dxda == 0 {
			return ferr.New(ferr.InvalidTopology, "degenerate element at did=%d: coincident endpoints (x=%g)", eDid, x0)
		}
		jDet := dxda
		jInv := 1.0 / dxda
		for l, a := range gaussPoints {
			s.jacobianDet[eDid][l] = jDet
			for i := 0; i < 2; i++ {
				s.n[eDid][l][i] = refN(i, a)
				s.dndx[eDid][l][i] = refDN(i) * jInv
			}
		}
	}
	s.derivsReady = true
	return nil
}

func (s *Store) ensureDerivs() error {
	if !s.derivsReady {
		return ferr.New(ferr.InvalidReference, "integral.Store: EvaluateDerivatives must be called before any integral is evaluated")
	}
	return nil
}

// EvaluateNi computes ∫ N_i over every element.
func (s *Store) EvaluateNi() error {
	if err := s.ensureDerivs(); err != nil {
		return err
	}
	s.Ni = make([][2]float64, len(s.mesh.Elems))
	for e := range s.mesh.Elems {
		for i := 0; i < 2; i++ {
			var v float64
			for l := 0; l < 2; l++ {
				v += s.jacobianDet[e][l] * s.n[e][l][i]
			}
			s.Ni[e][i] = v
		}
	}
	return nil
}

// EvaluateDNi computes ∫ dN_i/dx over every element.
func (s *Store) EvaluateDNi() error {
	if err := s.ensureDerivs(); err != nil {
		return err
	}
	s.DNi = make([][2]float64, len(s.mesh.Elems))
	for e := range s.mesh.Elems {
		for i := 0; i < 2; i++ {
			var v float64
			for l := 0; l < 2; l++ {
				v += s.jacobianDet[e][l] * s.dndx[e][l][i]
			}
			s.DNi[e][i] = v
		}
	}
	return nil
}

// EvaluateNiNj computes ∫ N_i N_j over every element.
func (s *Store) EvaluateNiNj() error {
	if err := s.ensureDerivs(); err != nil {
		return err
	}
	s.NiNj = make([][2][2]float64, len(s.mesh.Elems))
	for e := range s.mesh.Elems {
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				var v float64
				for l := 0; l < 2; l++ {
					v += s.jacobianDet[e][l] * s.n[e][l][i] * s.n[e][l][j]
				}
				s.NiNj[e][i][j] = v
			}
		}
	}
	return nil
}

// EvaluateNiDNj computes ∫ N_i dN_j/dx over every element.
func (s *Store) EvaluateNiDNj() error {
	if err := s.ensureDerivs(); err != nil {
		return err
	}
	s.NiDNj = make([][2][2]float64, len(s.mesh.Elems))
	for e := range s.mesh.Elems {
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				var v float64
				for l := 0; l < 2; l++ {
					v += s.jacobianDet[e][l] * s.n[e][l][i] * s.dndx[e][l][j]
				}
				s.NiDNj[e][i][j] = v
			}
		}
	}
	return nil
}

// EvaluateDivNiDivNj computes ∫ dN_i/dx dN_j/dx over every element.
func (s *Store) EvaluateDivNiDivNj() error {
	if err := s.ensureDerivs(); err != nil {
		return err
	}
	s.DivNiDivNj = make([][2][2]float64, len(s.mesh.Elems))
	for e := range s.mesh.Elems {
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				var v float64
				for l := 0; l < 2; l++ {
					v += s.jacobianDet[e][l] * s.dndx[e][l][i] * s.dndx[e][l][j]
				}
				s.DivNiDivNj[e][i][j] = v
			}
		}
	}
	return nil
}

// EvaluateNiNjDNk computes ∫ N_i N_j dN_k/dx over every element.
func (s *Store) EvaluateNiNjDNk() error {
	if err := s.ensureDerivs(); err != nil {
		return err
	}
	s.NiNjDNk = make([][2][2][2]float64, len(s.mesh.Elems))
	for e := range s.mesh.Elems {
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				for k := 0; k < 2; k++ {
					var v float64
					for l := 0; l < 2; l++ {
						v += s.jacobianDet[e][l] * s.n[e][l][i] * s.n[e][l][j] * s.dndx[e][l][k]
					}
					s.NiNjDNk[e][i][j][k] = v
				}
			}
		}
	}
	return nil
}
