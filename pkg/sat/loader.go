package sat

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/crillab/gophersat/bf"
	"github.com/rmohr/probeselect/pkg/api"
	"github.com/sirupsen/logrus"
)

var ErrNoAnnotated = errors.New("matrix has no annotated row")

type VarType string

const (
	VarTypeRow    VarType = "Row"
	VarTypeColumn VarType = "Column"
)

type Var struct {
	satVarName string
	varType    VarType
	Index      int
}

// Model is the formula together with the variables it was built from.
type Model struct {
	formula bf.Formula
	rows    map[string]*Var
	columns map[string]*Var
}

// Witness is one solution: the isolated row and the extra columns selected
// for it.
type Witness struct {
	Row     int
	Columns []int
}

type Loader struct {
	m         *Model
	rowVars   map[int]*Var
	colVars   map[int]*Var
	varsCount int
}

func NewLoader() *Loader {
	return &Loader{
		m: &Model{
			rows:    map[string]*Var{},
			columns: map[string]*Var{},
		},
		rowVars: map[int]*Var{},
		colVars: map[int]*Var{},
	}
}

func (loader *Loader) ticket() string {
	loader.varsCount++
	return "x" + strconv.Itoa(loader.varsCount)
}

// Load builds the purity formula for mx. Columns in forbidden are never
// selected, the base column is always part of the comparison. A nil model
// without an error means that the result is already known to be
// unsatisfiable.
func (loader *Loader) Load(mx *api.Matrix, forbidden map[int]bool) (*Model, error) {
	if !mx.HasAnnotated() {
		return nil, ErrNoAnnotated
	}
	if err := mx.Validate(); err != nil {
		return nil, err
	}

	agrees := func(row, col int) bool {
		return mx.Cell(row, col) == mx.Annotated[col]
	}

	var allowed []int
	for col := 1; col < mx.NumColumns(); col++ {
		if !forbidden[col] {
			allowed = append(allowed, col)
		}
	}
	var candidates []int
	for row := range mx.Rows {
		if agrees(row, 0) {
			candidates = append(candidates, row)
		}
	}
	if len(allowed) == 0 || len(candidates) == 0 {
		logrus.Debugf("purity formula trivially unsatisfiable: %d allowed columns, %d candidate rows", len(allowed), len(candidates))
		return nil, nil
	}

	for _, col := range allowed {
		v := &Var{satVarName: loader.ticket(), varType: VarTypeColumn, Index: col}
		loader.colVars[col] = v
		loader.m.columns[v.satVarName] = v
	}
	rowNames := []string{}
	for _, row := range candidates {
		v := &Var{satVarName: loader.ticket(), varType: VarTypeRow, Index: row}
		loader.rowVars[row] = v
		loader.m.rows[v.satVarName] = v
		rowNames = append(rowNames, v.satVarName)
	}

	ands := []bf.Formula{bf.Unique(rowNames...), bf.Or(toBFVars(loader.colVarsFor(allowed))...)}
	for _, row := range candidates {
		rowVar := bf.Var(loader.rowVars[row].satVarName)
		// the selection must stay inside the agreement set of the isolated row
		var agreeing []int
		for _, col := range allowed {
			if agrees(row, col) {
				agreeing = append(agreeing, col)
			} else {
				ands = append(ands, bf.Implies(rowVar, bf.Not(bf.Var(loader.colVars[col].satVarName))))
			}
		}
		// every other candidate needs a selected column it disagrees on
		for _, other := range candidates {
			if other == row {
				continue
			}
			var separating []int
			for _, col := range agreeing {
				if !agrees(other, col) {
					separating = append(separating, col)
				}
			}
			if len(separating) == 0 {
				ands = append(ands, bf.Not(rowVar))
				break
			}
			ands = append(ands, bf.Implies(rowVar, bf.Or(toBFVars(loader.colVarsFor(separating))...)))
		}
	}
	loader.m.formula = bf.And(ands...)
	logrus.Debugf("generated purity formula with %d variables", loader.varsCount)
	return loader.m, nil
}

func (loader *Loader) colVarsFor(cols []int) []*Var {
	vars := make([]*Var, 0, len(cols))
	for _, col := range cols {
		vars = append(vars, loader.colVars[col])
	}
	return vars
}

func toBFVars(vars []*Var) (bfvars []bf.Formula) {
	for _, v := range vars {
		bfvars = append(bfvars, bf.Var(v.satVarName))
	}
	return
}

func (v *Var) String() string {
	return fmt.Sprintf("%s(%s %d)", v.satVarName, v.varType, v.Index)
}
