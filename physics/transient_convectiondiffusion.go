package physics

import (
	"github.com/cpmech/gofem1d/ferr"
	"github.com/cpmech/gofem1d/field"
	"github.com/cpmech/gofem1d/sparse"
)

// TransientConvectionDiffusion implements the single-component
// transient convection-diffusion equation:
//
//	a * du/dt = -d/dx(-b * du/dx + u*v) + c
//
// Value is u, DerivativeCoefficient is a, Diffusion is b, VelocityX is
// v, Generation is c. The source this is grounded on reads a's
// per-point values from the diffusion coefficient Scalar instead of a
// dedicated one (a copy-paste artifact); DerivativeCoefficient here is
// wired to its own field so a genuinely independent coefficient is
// honoured.
type TransientConvectionDiffusion struct {
	startRowHolder

	Domains               []Domain
	Value                 *field.VariableField
	DerivativeCoefficient *field.ScalarField
	Diffusion             *field.ScalarField
	VelocityX             *field.ScalarField
	Generation            *field.ScalarField
}

// NewTransientConvectionDiffusion builds the physics and evaluates
// every integral matrix_fill needs across all Domains.
func NewTransientConvectionDiffusion(domains []Domain, value *field.VariableField, derivativeCoefficient, diffusion, velocityX, generation *field.ScalarField) (*TransientConvectionDiffusion, error) {
	p := &TransientConvectionDiffusion{
		startRowHolder:        newStartRowHolder(),
		Domains:               domains,
		Value:                 value,
		DerivativeCoefficient: derivativeCoefficient,
		Diffusion:             diffusion,
		VelocityX:             velocityX,
		Generation:            generation,
	}
	for _, d := range domains {
		if _, ok := value.MemberFor(d.Mesh); !ok {
			return nil, ferr.New(ferr.InvalidReference, "transient convection-diffusion: value field missing a Variable over a physics domain")
		}
		if _, ok := derivativeCoefficient.MemberFor(d.Mesh); !ok {
			return nil, ferr.New(ferr.InvalidReference, "transient convection-diffusion: derivative coefficient field missing a Scalar over a physics domain")
		}
		if _, ok := diffusion.MemberFor(d.Mesh); !ok {
			return nil, ferr.New(ferr.InvalidReference, "transient convection-diffusion: diffusion coefficient field missing a Scalar over a physics domain")
		}
		if _, ok := velocityX.MemberFor(d.Mesh); !ok {
			return nil, ferr.New(ferr.InvalidReference, "transient convection-diffusion: velocity field missing a Scalar over a physics domain")
		}
		if _, ok := generation.MemberFor(d.Mesh); !ok {
			return nil, ferr.New(ferr.InvalidReference, "transient convection-diffusion: generation coefficient field missing a Scalar over a physics domain")
		}
		if err := d.Integrals.EvaluateNi(); err != nil {
			return nil, err
		}
		if err := d.Integrals.EvaluateDivNiDivNj(); err != nil {
			return nil, err
		}
		if err := d.Integrals.EvaluateNiDNj(); err != nil {
			return nil, err
		}
		if err := d.Integrals.EvaluateNiNj(); err != nil {
			return nil, err
		}
		if err := d.Integrals.EvaluateNiNjDNk(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// VariableFields implements Transient.
func (p *TransientConvectionDiffusion) VariableFields() []*field.VariableField {
	return []*field.VariableField{p.Value}
}

// MatrixFill implements Transient, assembling the backward-Euler
// system A x(t+1) = C x(t) + d for every element of every Domain, then
// applying boundary conditions in the flux -> zero-row -> dirichlet
// order shared with SteadyDiffusion.
func (p *TransientConvectionDiffusion) MatrixFill(a, c *sparse.Matrix, d sparse.Vector, x, xLast sparse.Vector, dt float64) error {
	for _, dom := range p.Domains {
		derv, _ := p.DerivativeCoefficient.MemberFor(dom.Mesh)
		diff, _ := p.Diffusion.MemberFor(dom.Mesh)
		vel, _ := p.VelocityX.MemberFor(dom.Mesh)
		gen, _ := p.Generation.MemberFor(dom.Mesh)

		for _, e := range dom.Mesh.Elems {
			fid, did, err := elementIndices(dom.Mesh, p.Value, e)
			if err != nil {
				return err
			}
			velx := [2]float64{vel.At(did[0]), vel.At(did[1])}

			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					row := p.row + fid[i]
					col := p.Value.StartCol + fid[j]

					var dvelxdx float64
					for k := 0; k < 2; k++ {
						dvelxdx += velx[k] * dom.Integrals.NiNjDNk[e.Did][i][j][k]
					}

					massTerm := (derv.At(did[i]) / dt) * dom.Integrals.NiNj[e.Did][i][j]
					a.Add(row, col, massTerm+
						diff.At(did[i])*dom.Integrals.DivNiDivNj[e.Did][i][j]+
						velx[i]*dom.Integrals.NiDNj[e.Did][i][j]+
						dvelxdx)
					c.Add(row, col, massTerm)
				}
			}
			for i := 0; i < 2; i++ {
				row := p.row + fid[i]
				d.AddAt(row, gen.At(did[i])*dom.Integrals.Ni[e.Did][i])
			}
		}

		if err := applyFluxBoundary(dom, p.Value, p.row, a, d); err != nil {
			return err
		}
		if err := zeroValueBoundaryRows(dom, p.Value, p.row, a, d, c); err != nil {
			return err
		}
		if err := applyDirichletBoundary(dom, p.Value, p.row, a, d); err != nil {
			return err
		}
	}
	return nil
}
