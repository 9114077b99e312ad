package main

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gofem1d/boundary"
	"github.com/cpmech/gofem1d/config"
	"github.com/cpmech/gofem1d/driver"
	"github.com/cpmech/gofem1d/equation"
	"github.com/cpmech/gofem1d/ferr"
	"github.com/cpmech/gofem1d/field"
	"github.com/cpmech/gofem1d/integral"
	"github.com/cpmech/gofem1d/iocsv"
	"github.com/cpmech/gofem1d/mesh"
	"github.com/cpmech/gofem1d/physics"
)

// buildDomains loads every mesh+boundary pair a PhysicsFile names and
// registers its boundary configs, returning one physics.Domain per
// DomainFile entry.
func buildDomains(pf config.PhysicsFile) ([]physics.Domain, error) {
	domains := make([]physics.Domain, len(pf.Domains))
	for i, df := range pf.Domains {
		pointGid, pointX, err := iocsv.LoadMeshPoints(df.PointsFile)
		if err != nil {
			return nil, err
		}
		elemGid, elemP0, elemP1, err := iocsv.LoadMeshElements(df.ElementsFile)
		if err != nil {
			return nil, err
		}
		m, err := mesh.New(pointGid, pointX, elemGid, elemP0, elemP1)
		if err != nil {
			return nil, err
		}

		var fluxElemGid, fluxLocalIdx, fluxConfigID []int
		if df.FluxFile != "" {
			fluxElemGid, fluxLocalIdx, fluxConfigID, err = iocsv.LoadBoundaryElements(df.FluxFile)
			if err != nil {
				return nil, err
			}
		}
		var valueElemGid, valueLocalIdx, valueConfigID []int
		if df.ValueFile != "" {
			valueElemGid, valueLocalIdx, valueConfigID, err = iocsv.LoadBoundaryElements(df.ValueFile)
			if err != nil {
				return nil, err
			}
		}
		bnd, err := boundary.New(fluxElemGid, fluxLocalIdx, fluxConfigID, valueElemGid, valueLocalIdx, valueConfigID)
		if err != nil {
			return nil, err
		}
		for _, bc := range pf.BoundaryConfigs {
			kind, err := parseKind(bc.Kind)
			if err != nil {
				return nil, err
			}
			if err := bnd.SetCondition(bc.ID, kind, bc.Params); err != nil {
				return nil, err
			}
		}

		store := integral.New(m)
		dom, err := physics.NewDomain(m, bnd, store)
		if err != nil {
			return nil, err
		}
		domains[i] = dom
	}
	return domains, nil
}

func parseKind(s string) (boundary.Kind, error) {
	switch s {
	case "dirichlet":
		return boundary.Dirichlet, nil
	case "neumann":
		return boundary.Neumann, nil
	case "robin":
		return boundary.Robin, nil
	default:
		return 0, ferr.New(ferr.MalformedInput, "unknown boundary kind %q", s)
	}
}

// meshesOf returns the Mesh of every Domain, for building uniform
// Variable/Scalar fields over a physics's domains.
func meshesOf(domains []physics.Domain) []*mesh.Mesh {
	out := make([]*mesh.Mesh, len(domains))
	for i, d := range domains {
		out[i] = d.Mesh
	}
	return out
}

// runSteadyDiffusion builds and solves one steady_diffusion physics,
// returning its per-domain Variables and Meshes so the caller can
// write output.
func runSteadyDiffusion(pf config.PhysicsFile, run *config.Run) ([]*field.Variable, []*mesh.Mesh, error) {
	domains, err := buildDomains(pf)
	if err != nil {
		return nil, nil, err
	}
	meshes := meshesOf(domains)

	variables := make([]*field.Variable, len(meshes))
	diffusions := make([]*field.Scalar, len(meshes))
	generations := make([]*field.Scalar, len(meshes))
	for i, m := range meshes {
		variables[i] = field.NewVariable(m, pf.InitialValue)
		diffusions[i] = field.NewScalar(m, pf.Diffusion)
		generations[i] = field.NewScalar(m, pf.Generation)
	}
	valueField := field.NewVariableField(variables)
	diffField := field.NewScalarField(diffusions)
	genField := field.NewScalarField(generations)

	phys, err := physics.NewSteadyDiffusion(domains, valueField, diffField, genField)
	if err != nil {
		return nil, nil, err
	}
	eq, err := equation.NewSteady([]physics.Steady{phys}, run.Solver)
	if err != nil {
		return nil, nil, err
	}
	cfg := driver.Config{MaxIter: run.MaxIter, Tol: run.Tol, Verbose: run.Verbose}
	if _, _, err := driver.RunSteady(eq, cfg, nil); err != nil {
		return nil, nil, err
	}
	return variables, meshes, nil
}

// runTransientConvectionDiffusion builds and solves one
// transient_convection_diffusion physics, writing one output CSV per
// timestep when pf.OutputFile is set (the path's "*" is substituted
// with the timestep index).
func runTransientConvectionDiffusion(pf config.PhysicsFile, run *config.Run) ([]*field.Variable, []*mesh.Mesh, error) {
	domains, err := buildDomains(pf)
	if err != nil {
		return nil, nil, err
	}
	meshes := meshesOf(domains)

	variables := make([]*field.Variable, len(meshes))
	derivs := make([]*field.Scalar, len(meshes))
	diffusions := make([]*field.Scalar, len(meshes))
	velocities := make([]*field.Scalar, len(meshes))
	generations := make([]*field.Scalar, len(meshes))
	for i, m := range meshes {
		variables[i] = field.NewVariable(m, pf.InitialValue)
		derivs[i] = field.NewScalar(m, pf.DerivativeCoeff)
		diffusions[i] = field.NewScalar(m, pf.Diffusion)
		velocities[i] = field.NewScalar(m, pf.VelocityX)
		generations[i] = field.NewScalar(m, pf.Generation)
	}
	valueField := field.NewVariableField(variables)
	dervField := field.NewScalarField(derivs)
	diffField := field.NewScalarField(diffusions)
	velField := field.NewScalarField(velocities)
	genField := field.NewScalarField(generations)

	phys, err := physics.NewTransientConvectionDiffusion(domains, valueField, dervField, diffField, velField, genField)
	if err != nil {
		return nil, nil, err
	}
	eq, err := equation.NewTransient([]physics.Transient{phys}, run.Solver)
	if err != nil {
		return nil, nil, err
	}

	for step := 0; step < run.NumTimesteps; step++ {
		if err := eq.IterateSolution(run.Dt); err != nil {
			return nil, nil, err
		}
		eq.StoreSolution()
		if pf.OutputFile != "" {
			for i, v := range variables {
				if err := iocsv.WriteVariableTimestepCSV(pf.OutputFile, step, meshes[i], v); err != nil {
					return nil, nil, err
				}
			}
		}
		eq.NextTimestep()
	}
	return variables, meshes, nil
}

// runAll executes every physics in run in turn and writes
// pf.OutputFile (when set) for steady physics; transient physics
// write per-timestep output from inside runTransientConvectionDiffusion.
func runAll(run *config.Run) error {
	for _, pf := range run.Physics {
		switch pf.Kind {
		case "steady_diffusion":
			variables, meshes, err := runSteadyDiffusion(pf, run)
			if err != nil {
				return err
			}
			if pf.OutputFile != "" {
				if err := writeVariableOutput(pf.OutputFile, meshes, variables); err != nil {
					return err
				}
			}
		case "transient_convection_diffusion":
			if _, _, err := runTransientConvectionDiffusion(pf, run); err != nil {
				return err
			}
		default:
			return ferr.New(ferr.MalformedInput, "unknown physics kind %q", pf.Kind)
		}
	}
	return nil
}

// writeVariableOutput writes one CSV per domain. A single-domain
// physics writes exactly path; a multi-domain physics (e.g. the
// two-domain Robin scenario) gets a "-<domain index>" suffix inserted
// before the extension so domains don't clobber each other's output.
func writeVariableOutput(path string, meshes []*mesh.Mesh, variables []*field.Variable) error {
	for i, m := range meshes {
		if err := iocsv.WriteVariableCSV(outputPathFor(path, i, len(meshes)), m, variables[i]); err != nil {
			return err
		}
	}
	return nil
}

func outputPathFor(path string, domainIdx, numDomains int) string {
	if numDomains == 1 {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return base + "-" + strconv.Itoa(domainIdx) + ext
}
