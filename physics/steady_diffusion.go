package physics

import (
	"github.com/cpmech/gofem1d/ferr"
	"github.com/cpmech/gofem1d/field"
	"github.com/cpmech/gofem1d/sparse"
)

// SteadyDiffusion implements the single-component steady-state
// diffusion equation:
//
//	0 = -d/dx(-b * du/dx) + c
//
// Value is u (solved for), Diffusion is b, Generation is c. All three
// must be defined over the same set of Domains.
type SteadyDiffusion struct {
	startRowHolder

	Domains    []Domain
	Value      *field.VariableField
	Diffusion  *field.ScalarField
	Generation *field.ScalarField
}

// NewSteadyDiffusion builds a SteadyDiffusion physics and evaluates
// the integrals matrix_fill needs: ∫Ni and ∫∇Ni·∇Nj over every Domain.
func NewSteadyDiffusion(domains []Domain, value *field.VariableField, diffusion, generation *field.ScalarField) (*SteadyDiffusion, error) {
	p := &SteadyDiffusion{startRowHolder: newStartRowHolder(), Domains: domains, Value: value, Diffusion: diffusion, Generation: generation}
	for _, d := range domains {
		if _, ok := value.MemberFor(d.Mesh); !ok {
			return nil, ferr.New(ferr.InvalidReference, "steady diffusion: value field has no Variable over a physics domain")
		}
		if _, ok := diffusion.MemberFor(d.Mesh); !ok {
			return nil, ferr.New(ferr.InvalidReference, "steady diffusion: diffusion coefficient field has no Scalar over a physics domain")
		}
		if _, ok := generation.MemberFor(d.Mesh); !ok {
			return nil, ferr.New(ferr.InvalidReference, "steady diffusion: generation coefficient field has no Scalar over a physics domain")
		}
		if err := d.Integrals.EvaluateNi(); err != nil {
			return nil, err
		}
		if err := d.Integrals.EvaluateDivNiDivNj(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// VariableFields implements Steady.
func (p *SteadyDiffusion) VariableFields() []*field.VariableField { return []*field.VariableField{p.Value} }

// MatrixFill implements Steady, assembling -d/dx(b du/dx) into A and c
// into b for every element of every Domain, then applying boundary
// conditions in the contractual flux -> zero-row -> dirichlet order.
func (p *SteadyDiffusion) MatrixFill(a *sparse.Matrix, b sparse.Vector, x sparse.Vector) error {
	for _, d := range p.Domains {
		diffcoeff, _ := p.Diffusion.MemberFor(d.Mesh)
		gencoeff, _ := p.Generation.MemberFor(d.Mesh)

		for _, e := range d.Mesh.Elems {
			fid, did, err := elementIndices(d.Mesh, p.Value, e)
			if err != nil {
				return err
			}
			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					row := p.row + fid[i]
					col := p.Value.StartCol + fid[j]
					a.Add(row, col, diffcoeff.At(did[i])*d.Integrals.DivNiDivNj[e.Did][i][j])
				}
			}
			for i := 0; i < 2; i++ {
				row := p.row + fid[i]
				b.AddAt(row, gencoeff.At(did[i])*d.Integrals.Ni[e.Did][i])
			}
		}

		if err := applyFluxBoundary(d, p.Value, p.row, a, b); err != nil {
			return err
		}
		if err := zeroValueBoundaryRows(d, p.Value, p.row, a, b, nil); err != nil {
			return err
		}
		if err := applyDirichletBoundary(d, p.Value, p.row, a, b); err != nil {
			return err
		}
	}
	return nil
}
