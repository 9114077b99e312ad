package physics

import (
	"github.com/cpmech/gofem1d/boundary"
	"github.com/cpmech/gofem1d/ferr"
	"github.com/cpmech/gofem1d/field"
	"github.com/cpmech/gofem1d/mesh"
	"github.com/cpmech/gofem1d/sparse"
)

// elementIndices resolves one element's two endpoints to the domain
// id (did, for indexing Scalar/Variable coefficients local to mesh)
// and the field id (fid, for indexing matrix rows/columns via
// valueField) every matrix_fill element loop needs.
func elementIndices(m *mesh.Mesh, valueField *field.VariableField, e mesh.Element) (fid, did [2]int, err error) {
	gids := [2]int{e.P0Gid, e.P1Gid}
	for k, gid := range gids {
		d, ok := m.PointDid(gid)
		if !ok {
			return fid, did, ferr.New(ferr.InvalidTopology, "element gid %d: point gid %d not found in mesh", e.Gid, gid)
		}
		f, ok := valueField.Fid(gid)
		if !ok {
			return fid, did, ferr.New(ferr.InvalidReference, "element gid %d: point gid %d not covered by the value field", e.Gid, gid)
		}
		did[k] = d
		fid[k] = f
	}
	return fid, did, nil
}

// boundaryIndices resolves a boundary element's two endpoint fids,
// given only the flux/value element's own local index is meaningful.
func boundaryIndices(m *mesh.Mesh, valueField *field.VariableField, elemGid int) (fid [2]int, err error) {
	did, ok := m.ElemDid(elemGid)
	if !ok {
		return fid, ferr.New(ferr.InvalidTopology, "boundary element gid %d not found in mesh", elemGid)
	}
	e := m.Elems[did]
	fid, _, err = elementIndices(m, valueField, e)
	return fid, err
}

// applyFluxBoundary applies every Neumann/Robin condition registered
// against d.Boundary.Flux: Neumann adds a constant flux to b; Robin
// adds a constant term to b and a coefficient term to a. Both
// matrix_fill variants (steady and transient) share this exact
// contract, matching steady's sign for the Robin stiffness term.
func applyFluxBoundary(d Domain, valueField *field.VariableField, row int, a *sparse.Matrix, b sparse.Vector) error {
	for _, el := range d.Boundary.Flux {
		if el.LocalIdx == -1 {
			continue
		}
		cfg, ok := d.Boundary.Config(el.ConfigID)
		if !ok {
			return ferr.New(ferr.InvalidReference, "flux boundary element gid %d references unknown config %d", el.ElemGid, el.ConfigID)
		}
		fid, err := boundaryIndices(d.Mesh, valueField, el.ElemGid)
		if err != nil {
			return err
		}
		matRow := row + fid[el.LocalIdx]
		switch cfg.Kind {
		case boundary.Neumann:
			b.AddAt(matRow, cfg.Params[0])
		case boundary.Robin:
			matCol := valueField.StartCol + fid[el.LocalIdx]
			b.AddAt(matRow, cfg.Params[0])
			a.Add(matRow, matCol, -cfg.Params[1])
		default:
			return ferr.New(ferr.MalformedInput, "flux boundary element gid %d: kind %s is not valid on the flux list", el.ElemGid, cfg.Kind)
		}
	}
	return nil
}

// zeroValueBoundaryRows wipes every row tagged by d.Boundary.Value in
// a (and, for transient physics, the companion c matrix) and resets
// the matching b/d entry to zero, ahead of applyDirichletBoundary.
func zeroValueBoundaryRows(d Domain, valueField *field.VariableField, row int, a *sparse.Matrix, b sparse.Vector, c *sparse.Matrix) error {
	for _, el := range d.Boundary.Value {
		if el.LocalIdx == -1 {
			continue
		}
		fid, err := boundaryIndices(d.Mesh, valueField, el.ElemGid)
		if err != nil {
			return err
		}
		matRow := row + fid[el.LocalIdx]
		a.ZeroRow(matRow)
		if c != nil {
			c.ZeroRow(matRow)
		}
		b[matRow] = 0
	}
	return nil
}

// applyDirichletBoundary enforces every Dirichlet condition registered
// against d.Boundary.Value by pinning a[row,col]=1 (col being the
// point's column in valueField) and b[row]=value.
// Value-list elements whose config is not Dirichlet are skipped, not
// rejected: the value list may carry other kinds (e.g. a Robin
// element needing its row zeroed but not a unit diagonal). Must run
// after zeroValueBoundaryRows.
func applyDirichletBoundary(d Domain, valueField *field.VariableField, row int, a *sparse.Matrix, b sparse.Vector) error {
	for _, el := range d.Boundary.Value {
		if el.LocalIdx == -1 {
			continue
		}
		cfg, ok := d.Boundary.Config(el.ConfigID)
		if !ok {
			return ferr.New(ferr.InvalidReference, "value boundary element gid %d references unknown config %d", el.ElemGid, el.ConfigID)
		}
		if cfg.Kind != boundary.Dirichlet {
			continue
		}
		fid, err := boundaryIndices(d.Mesh, valueField, el.ElemGid)
		if err != nil {
			return err
		}
		matRow := row + fid[el.LocalIdx]
		matCol := valueField.StartCol + fid[el.LocalIdx]
		a.Add(matRow, matCol, 1)
		b.AddAt(matRow, cfg.Params[0])
	}
	return nil
}
