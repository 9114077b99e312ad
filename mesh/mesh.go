// Package mesh holds the point and element connectivity of a single 1D
// domain made of line2 (two-node linear) elements.
//
// A Mesh is immutable once built: points and elements are loaded from
// CSV once (see iocsv.LoadMeshPoints/LoadMeshElements) and never
// mutated afterwards. Global ids
// (gid) are unique across every domain in a simulation; domain ids
// (did) are dense zero-based indices local to one Mesh.
package mesh

import "github.com/cpmech/gofem1d/ferr"

// Point is a single node of a line2 mesh, identified globally by Gid
// and locally (within its Mesh) by Did.
type Point struct {
	Gid int     // global id, unique across all meshes
	Did int     // dense domain-local index, 0..N-1
	X   float64 // coordinate
}

// Element is a line2 segment [X(P0Gid), X(P1Gid)]. No ordering between
// the endpoints is assumed; the Jacobian determinant ½(x1-x0) must be
// nonzero for the element to be usable by the Integrator.
type Element struct {
	Gid    int // global id
	Did    int // dense domain-local index, 0..N-1
	P0Gid  int // global id of the left-ish point
	P1Gid  int // global id of the right-ish point
}

// Mesh is the set of points and elements of one domain, with the
// bijective gid<->did maps needed to cross-reference Scalars,
// Variables, Boundaries and IntegralStores defined over it.
type Mesh struct {
	Points  []Point
	Elems   []Element
	gidToDid map[int]int // point gid -> did
	eidToDid map[int]int // element gid -> did
}

// NumPoints returns the number of points in the domain.
func (m *Mesh) NumPoints() int { return len(m.Points) }

// NumElems returns the number of elements in the domain.
func (m *Mesh) NumElems() int { return len(m.Elems) }

// PointDid returns the domain id of the point with the given global id.
func (m *Mesh) PointDid(gid int) (int, bool) {
	did, ok := m.gidToDid[gid]
	return did, ok
}

// ElemDid returns the domain id of the element with the given global id.
func (m *Mesh) ElemDid(gid int) (int, bool) {
	did, ok := m.eidToDid[gid]
	return did, ok
}

// New builds a Mesh from parallel slices of point/element data and
// validates its structural invariants: every element must reference
// points that exist in this mesh, point gids must be unique, and the
// mesh must contain at least one element.
//
// pointGid[k]/pointX[k] describe point k; elemGid[k]/elemP0[k]/elemP1[k]
// describe element k. did is assigned by input order.
func New(pointGid []int, pointX []float64, elemGid, elemP0, elemP1 []int) (*Mesh, error) {
	if len(pointGid) != len(pointX) {
		return nil, ferr.New(ferr.MalformedInput, "point gid/position_x length mismatch: %d vs %d", len(pointGid), len(pointX))
	}
	if len(elemGid) != len(elemP0) || len(elemGid) != len(elemP1) {
		return nil, ferr.New(ferr.MalformedInput, "element gid/p0/p1 length mismatch")
	}
	if len(elemGid) == 0 {
		return nil, ferr.New(ferr.InvalidTopology, "mesh has no elements")
	}

	m := &Mesh{
		gidToDid: make(map[int]int, len(pointGid)),
		eidToDid: make(map[int]int, len(elemGid)),
	}
	m.Points = make([]Point, len(pointGid))
	for did, gid := range pointGid {
		if _, dup := m.gidToDid[gid]; dup {
			return nil, ferr.New(ferr.MalformedInput, "duplicate point gid %d", gid)
		}
		m.Points[did] = Point{Gid: gid, Did: did, X: pointX[did]}
		m.gidToDid[gid] = did
	}

	m.Elems = make([]Element, len(elemGid))
	for did, gid := range elemGid {
		if _, dup := m.eidToDid[gid]; dup {
			return nil, ferr.New(ferr.MalformedInput, "duplicate element gid %d", gid)
		}
		p0, p1 := elemP0[did], elemP1[did]
		if _, ok := m.gidToDid[p0]; !ok {
			return nil, ferr.New(ferr.InvalidTopology, "element gid %d references unknown point gid %d", gid, p0)
		}
		if _, ok := m.gidToDid[p1]; !ok {
			return nil, ferr.New(ferr.InvalidTopology, "element gid %d references unknown point gid %d", gid, p1)
		}
		m.Elems[did] = Element{Gid: gid, Did: did, P0Gid: p0, P1Gid: p1}
		m.eidToDid[gid] = did
	}
	return m, nil
}
