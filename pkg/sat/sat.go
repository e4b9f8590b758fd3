package sat

import (
	"sort"

	"github.com/crillab/gophersat/bf"
	"github.com/rmohr/probeselect/pkg/api"
	"github.com/sirupsen/logrus"
)

// Solve returns a witness for the model, or nil if no column set isolates a
// single row.
func Solve(m *Model) *Witness {
	if m == nil {
		return nil
	}
	solution := bf.Solve(m.formula)
	if solution == nil {
		return nil
	}
	w := &Witness{Row: -1}
	for name, value := range solution {
		if !value {
			continue
		}
		if v, exists := m.rows[name]; exists {
			w.Row = v.Index
		} else if v, exists := m.columns[name]; exists {
			w.Columns = append(w.Columns, v.Index)
		}
	}
	sort.Ints(w.Columns)
	return w
}

// Feasible reports whether any set of allowed columns isolates exactly one
// row matching the annotated row.
func Feasible(mx *api.Matrix, forbidden map[int]bool) (bool, *Witness, error) {
	model, err := NewLoader().Load(mx, forbidden)
	if err != nil {
		return false, nil, err
	}
	w := Solve(model)
	if w == nil {
		return false, nil, nil
	}
	logrus.Debugf("purity is satisfiable, row %d is isolated by columns %v", w.Row, w.Columns)
	return true, w, nil
}
