package field

import "github.com/cpmech/gofem1d/mesh"

// Scalar holds a per-point numeric field over a single Mesh that
// represents a *known* coefficient. Unlike Variable, a Scalar is
// never overwritten by MatrixEquation.store_solution; the client may
// still mutate it between iterate_solution calls to express
// coefficients that depend on the current Variable state (Picard
// iteration).
type Scalar struct {
	mesh   *mesh.Mesh
	values []float64
}

// NewScalar builds a Scalar over mesh, initialised to init at every point.
func NewScalar(m *mesh.Mesh, init float64) *Scalar {
	v := make([]float64, m.NumPoints())
	for i := range v {
		v[i] = init
	}
	return &Scalar{mesh: m, values: v}
}

// MeshOf returns the Mesh this Scalar is bound to.
func (s *Scalar) MeshOf() *mesh.Mesh { return s.mesh }

// At returns the value at the point with domain id did.
func (s *Scalar) At(did int) float64 { return s.values[did] }

// Set overwrites the value at the point with domain id did.
func (s *Scalar) Set(did int, v float64) { s.values[did] = v }

// Len returns the number of points in the domain.
func (s *Scalar) Len() int { return len(s.values) }
