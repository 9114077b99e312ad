package field

import (
	"sort"

	"github.com/cpmech/gofem1d/mesh"
)

// Member is anything a Field can group: a Scalar or a Variable, both
// of which live on exactly one Mesh.
type Member interface {
	MeshOf() *mesh.Mesh
}

// Field unions the same logical quantity (e.g. "temperature") across
// several disjoint meshes into one dense, zero-based field-id (fid)
// space. fid assignment is a pure function of the input gids: collect
// the union of every member mesh's point gids, sort ascending, and
// number them 0..M-1 in that order — so the mapping is deterministic
// given the input alone.
type Field[T Member] struct {
	members       []T
	byMesh        map[*mesh.Mesh]T
	pointGidVec   []int       // fid -> gid
	gidToFid      map[int]int // gid -> fid
	numPointField int

	// StartCol is the column offset this Field occupies in the global
	// matrix equation. Unset (-1) until MatrixEquation assigns it.
	StartCol int
}

// NewField groups members into one Field and assigns fids.
func NewField[T Member](members []T) *Field[T] {
	f := &Field[T]{
		members:  members,
		byMesh:   make(map[*mesh.Mesh]T, len(members)),
		gidToFid: make(map[int]int),
		StartCol: -1,
	}
	for _, m := range members {
		f.byMesh[m.MeshOf()] = m
	}

	gidSet := make(map[int]struct{})
	for _, m := range members {
		mm := m.MeshOf()
		for _, p := range mm.Points {
			gidSet[p.Gid] = struct{}{}
		}
	}
	gids := make([]int, 0, len(gidSet))
	for g := range gidSet {
		gids = append(gids, g)
	}
	sort.Ints(gids)

	f.pointGidVec = gids
	for fid, gid := range gids {
		f.gidToFid[gid] = fid
	}
	f.numPointField = len(gids)
	return f
}

// NumPointField returns the number of distinct points spanned by this Field.
func (f *Field[T]) NumPointField() int { return f.numPointField }

// PointGidVec returns fid -> gid (read-only view).
func (f *Field[T]) PointGidVec() []int { return f.pointGidVec }

// Fid returns the field-local index of the point with global id gid.
func (f *Field[T]) Fid(gid int) (int, bool) {
	fid, ok := f.gidToFid[gid]
	return fid, ok
}

// MemberFor returns the Scalar/Variable bound to the given Mesh, as
// retrieved by Physics while iterating its mesh group.
func (f *Field[T]) MemberFor(m *mesh.Mesh) (T, bool) {
	v, ok := f.byMesh[m]
	return v, ok
}

// Members returns every Scalar/Variable grouped by this Field.
func (f *Field[T]) Members() []T { return f.members }

// ScalarField is a Field grouping known-coefficient Scalars.
type ScalarField = Field[*Scalar]

// VariableField is a Field grouping unknown Variables.
type VariableField = Field[*Variable]

// NewScalarField groups Scalars into one ScalarField.
func NewScalarField(scalars []*Scalar) *ScalarField { return NewField(scalars) }

// NewVariableField groups Variables into one VariableField.
func NewVariableField(vars []*Variable) *VariableField { return NewField(vars) }
