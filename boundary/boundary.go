// Package boundary holds per-element boundary tags (flux/value) and
// the typed boundary-condition configurations they point to.
//
// A Boundary is built once from the flux and value element lists of a
// single Mesh, then configured via SetCondition before assembly. It
// is read-only during a solve; only the registered BoundaryConfig
// table is mutated, and only before the first matrix fill.
package boundary

import "github.com/cpmech/gofem1d/ferr"

// Kind enumerates the supported boundary-condition types. Using an
// enumerated tag instead of the source's bare strings lets
// SetCondition validate arity once, at registration, rather than on
// every assembly pass.
type Kind int

const (
	// Dirichlet fixes the unknown to params[0].
	Dirichlet Kind = iota
	// Neumann imposes a flux of params[0].
	Neumann
	// Robin imposes params[0] + params[1]*u.
	Robin
)

func (k Kind) String() string {
	switch k {
	case Dirichlet:
		return "dirichlet"
	case Neumann:
		return "neumann"
	case Robin:
		return "robin"
	default:
		return "unknown"
	}
}

// arity returns the number of real parameters a Kind requires.
func (k Kind) arity() int {
	switch k {
	case Dirichlet:
		return 1
	case Neumann:
		return 1
	case Robin:
		return 2
	default:
		return -1
	}
}

// Config is a registered boundary-condition record: a Kind plus its
// ordered parameter list. Dirichlet = [value]; Neumann = [flux];
// Robin = [constant_term, coefficient_on_u].
type Config struct {
	Kind   Kind
	Params []float64
}

// Element ties one element (by local point index 0, 1 or -1) to a
// registered Config. LocalIdx == -1 marks a padding row kept only for
// file alignment; it must be skipped during assembly.
type Element struct {
	ElemGid  int
	LocalIdx int // 0, 1, or -1 (invalid/ignored)
	ConfigID int
}

// Boundary groups the flux and value boundary elements of one Mesh
// together with the table of registered Configs they reference.
type Boundary struct {
	Flux    []Element
	Value   []Element
	configs map[int]Config
}

// New builds a Boundary from parallel flux/value element descriptions.
// LocalIdx values outside {0, 1, -1} are rejected as malformed input.
func New(fluxElemGid, fluxLocalIdx, fluxConfigID []int, valueElemGid, valueLocalIdx, valueConfigID []int) (*Boundary, error) {
	b := &Boundary{configs: make(map[int]Config)}
	var err error
	b.Flux, err = buildElements(fluxElemGid, fluxLocalIdx, fluxConfigID)
	if err != nil {
		return nil, err
	}
	b.Value, err = buildElements(valueElemGid, valueLocalIdx, valueConfigID)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func buildElements(elemGid, localIdx, configID []int) ([]Element, error) {
	if len(elemGid) != len(localIdx) || len(elemGid) != len(configID) {
		return nil, ferr.New(ferr.MalformedInput, "boundary element column length mismatch")
	}
	out := make([]Element, len(elemGid))
	for i := range elemGid {
		if localIdx[i] != 0 && localIdx[i] != 1 && localIdx[i] != -1 {
			return nil, ferr.New(ferr.MalformedInput, "boundary element %d: local point index %d not in {0,1,-1}", elemGid[i], localIdx[i])
		}
		out[i] = Element{ElemGid: elemGid[i], LocalIdx: localIdx[i], ConfigID: configID[i]}
	}
	return out, nil
}

// SetCondition registers (or overwrites) a BoundaryConfig under id,
// validating the parameter arity against kind.
func (b *Boundary) SetCondition(id int, kind Kind, params []float64) error {
	if kind.arity() != len(params) {
		return ferr.New(ferr.MalformedInput, "boundary config %d: kind %s expects %d params, got %d", id, kind, kind.arity(), len(params))
	}
	if b.configs == nil {
		b.configs = make(map[int]Config)
	}
	cp := make([]float64, len(params))
	copy(cp, params)
	b.configs[id] = Config{Kind: kind, Params: cp}
	return nil
}

// Config returns the boundary condition registered under id.
func (b *Boundary) Config(id int) (Config, bool) {
	c, ok := b.configs[id]
	return c, ok
}
