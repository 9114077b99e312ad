// Package config reads the JSON run file a driver invocation is
// pointed at: which CSV files to load, which physics to build, and
// the driver.Config knobs to run with. It decodes JSON via
// os.ReadFile + encoding/json, returning errors instead of
// panicking to match this module's error taxonomy.
package config

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gofem1d/ferr"
)

// DomainFile names the CSV files describing one Mesh and the
// Boundary built over it.
type DomainFile struct {
	PointsFile   string `json:"points_file"`
	ElementsFile string `json:"elements_file"`
	FluxFile     string `json:"flux_file,omitempty"`
	ValueFile    string `json:"value_file,omitempty"`
}

// BoundaryConfigFile is one boundary-condition registration: a kind
// (dirichlet/neumann/robin) plus the parameters that kind needs.
type BoundaryConfigFile struct {
	ID     int       `json:"id"`
	Kind   string    `json:"kind"`
	Params []float64 `json:"params"`
}

// PhysicsFile describes one physics to build: its domains, its
// boundary configs, and either "steady_diffusion" or
// "transient_convection_diffusion". Scalar coefficients that are
// uniform across a run can be given inline; spatially varying ones
// are left at their zero value and expected to be set by the caller
// (e.g. a Picard recompute callback) before the first solve.
type PhysicsFile struct {
	Kind             string                `json:"kind"`
	Domains          []DomainFile          `json:"domains"`
	BoundaryConfigs  []BoundaryConfigFile  `json:"boundary_configs"`
	InitialValue     float64               `json:"initial_value"`
	Diffusion        float64               `json:"diffusion"`
	Generation       float64               `json:"generation"`
	DerivativeCoeff  float64               `json:"derivative_coefficient"`
	VelocityX        float64               `json:"velocity_x"`
	OutputFile       string                `json:"output_file,omitempty"`
}

// Run is the top-level run file: the driver.Config knobs plus the
// list of physics. Each physics is built and solved in turn with its
// own MatrixEquation.
type Run struct {
	MaxIter      int           `json:"max_iter"`
	Tol          float64       `json:"tol"`
	Dt           float64       `json:"dt"`
	NumTimesteps int           `json:"num_timesteps"`
	Verbose      bool          `json:"verbose"`
	Solver       string        `json:"solver"`
	Physics      []PhysicsFile `json:"physics"`
}

// Read loads and decodes a run file from path.
func Read(path string) (*Run, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, ferr.New(ferr.MalformedInput, "cannot read run file %q: %v", path, err)
	}
	var r Run
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, ferr.New(ferr.MalformedInput, "cannot unmarshal run file %q: %v", path, err)
	}
	if r.Solver == "" {
		r.Solver = "dense"
	}
	if len(r.Physics) == 0 {
		return nil, ferr.New(ferr.MalformedInput, "run file %q declares no physics", path)
	}
	return &r, nil
}
