package field

import "github.com/cpmech/gofem1d/mesh"

// Variable holds a per-point numeric field over a single Mesh that
// represents an *unknown* solved for by a MatrixEquation. It is
// exclusive-write during store_solution and exclusive-read elsewhere.
type Variable struct {
	mesh   *mesh.Mesh
	values []float64
}

// NewVariable builds a Variable over mesh, initialised to init (the
// initial guess) at every point.
func NewVariable(m *mesh.Mesh, init float64) *Variable {
	v := make([]float64, m.NumPoints())
	for i := range v {
		v[i] = init
	}
	return &Variable{mesh: m, values: v}
}

// MeshOf returns the Mesh this Variable is bound to.
func (v *Variable) MeshOf() *mesh.Mesh { return v.mesh }

// At returns the value at the point with domain id did.
func (v *Variable) At(did int) float64 { return v.values[did] }

// Set overwrites the value at the point with domain id did. Called by
// MatrixEquation.StoreSolution once a solve has produced a new x.
func (v *Variable) Set(did int, val float64) { v.values[did] = val }

// Len returns the number of points in the domain.
func (v *Variable) Len() int { return len(v.values) }
