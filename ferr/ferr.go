// Package ferr defines the error taxonomy shared by every package in
// gofem1d. Each category maps to a distinct failure mode of the FEM
// pipeline: malformed input data, topology that cannot be assembled,
// dangling references between fields and physics, numeric breakdown of
// the linear solve, and outer-loop non-convergence.
package ferr

import "fmt"

// Category tags an error with the taxonomy bucket it belongs to.
type Category int

const (
	// MalformedInput marks CSV parse failures, missing columns, bad
	// gids, duplicate points, unknown boundary kinds, wrong arity.
	MalformedInput Category = iota
	// InvalidTopology marks element-to-point references that don't
	// resolve, empty meshes, or degenerate (zero-Jacobian) elements.
	InvalidTopology
	// InvalidReference marks Fields/Physics wired against
	// inconsistent meshes, or start_row/start_col read before being set.
	InvalidReference
	// NumericFailure marks a singular system or a solution containing
	// NaN/Inf.
	NumericFailure
	// NonConvergence marks an outer loop that exhausted its iteration
	// budget without reaching tolerance. Not fatal to the core.
	NonConvergence
)

func (c Category) String() string {
	switch c {
	case MalformedInput:
		return "MalformedInput"
	case InvalidTopology:
		return "InvalidTopology"
	case InvalidReference:
		return "InvalidReference"
	case NumericFailure:
		return "NumericFailure"
	case NonConvergence:
		return "NonConvergence"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by gofem1d. It carries a
// Category so callers can branch on failure class without parsing
// strings.
type Error struct {
	Cat Category
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Cat, e.Msg)
}

// New builds an *Error in the given category with a printf-style message.
func New(cat Category, format string, args ...interface{}) *Error {
	return &Error{Cat: cat, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a gofem1d *Error of the given category.
func Is(err error, cat Category) bool {
	e, ok := err.(*Error)
	return ok && e.Cat == cat
}
