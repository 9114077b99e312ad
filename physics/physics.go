package physics

import (
	"github.com/cpmech/gofem1d/field"
	"github.com/cpmech/gofem1d/sparse"
)

// Steady is a physics that contributes to a steady Ax=b matrix
// equation: it owns one or more Domains, knows which rows of A/b are
// its own, and fills them from the Variable field it solves for.
type Steady interface {
	MatrixFill(a *sparse.Matrix, b sparse.Vector, x sparse.Vector) error
	SetStartRow(row int)
	StartRow() int
	VariableFields() []*field.VariableField
}

// Transient is a physics that contributes to the backward-Euler
// Ax(t+1) = Cx(t) + d matrix equation.
type Transient interface {
	MatrixFill(a, c *sparse.Matrix, d sparse.Vector, x, xLast sparse.Vector, dt float64) error
	SetStartRow(row int)
	StartRow() int
	VariableFields() []*field.VariableField
}

// startRowHolder is embedded by every concrete Physics to implement
// the SetStartRow/StartRow pair MatrixEquation uses to lay physics
// out one after another in the global row space. A fresh physics
// reports -1 until MatrixEquation assigns a real row.
type startRowHolder struct {
	row int
}

func newStartRowHolder() startRowHolder { return startRowHolder{row: -1} }

func (s *startRowHolder) SetStartRow(row int) { s.row = row }
func (s *startRowHolder) StartRow() int       { return s.row }
