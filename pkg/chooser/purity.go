package chooser

import (
	"github.com/rmohr/probeselect/pkg/api"
	"github.com/rmohr/probeselect/pkg/combo"
	"github.com/rmohr/probeselect/pkg/sat"
	"github.com/sirupsen/logrus"
)

// Purity picks the first subset, smallest sizes first, on which exactly one
// row agrees with the annotated row. The score is the negated number of extra
// probes.
type Purity struct {
	Size         int
	AllowSmaller bool
	// SkipPrecheck disables the SAT based feasibility check run before the
	// enumeration.
	SkipPrecheck bool
}

func NewPurity(size int, allowSmaller bool) *Purity {
	return &Purity{Size: size, AllowSmaller: allowSmaller}
}

func (p *Purity) Choose(id string, m *api.Matrix, forbidden []int) (*api.Subset, error) {
	if !m.HasAnnotated() || p.Size <= 0 || m.NumRows() == 0 {
		return nil, nil
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	excluded := toSet(forbidden)
	if !p.SkipPrecheck {
		feasible, _, err := sat.Feasible(m, excluded)
		if err != nil {
			return nil, err
		}
		if !feasible {
			logrus.Debugf("%s: no subset can isolate a single row", id)
			return nil, nil
		}
	}

	matcher := newMatchStack(m)
	var columns []int
	it := candidates(m.NumProbes(), p.Size, p.AllowSmaller)
	for it.Next() {
		columns = toColumns(columns, it.Value())
		if !combo.Disjoint(columns[1:], excluded) {
			continue
		}
		if matcher.count(columns) == 1 {
			logrus.Debugf("%s: subset %v isolates a single row", id, columns)
			return api.NewSubset(id, columns[1:], -float64(len(columns)-1)), nil
		}
	}
	return nil, nil
}

// matchStack tracks the rows agreeing with the annotated row on every prefix
// of the previous query.
type matchStack struct {
	agree [][]bool
	prev  []int
	stack [][]int
}

func newMatchStack(m *api.Matrix) *matchStack {
	agree := make([][]bool, m.NumColumns())
	for col := range agree {
		agree[col] = make([]bool, m.NumRows())
		for row := range m.Rows {
			agree[col][row] = m.Cell(row, col) == m.Annotated[col]
		}
	}
	all := make([]int, m.NumRows())
	for i := range all {
		all[i] = i
	}
	return &matchStack{agree: agree, stack: [][]int{all}}
}

func (s *matchStack) count(columns []int) int {
	p := 0
	for p < len(s.prev) && p < len(columns) && s.prev[p] == columns[p] {
		p++
	}
	s.stack = s.stack[:p+1]
	for _, col := range columns[p:] {
		parent := s.stack[len(s.stack)-1]
		rows := make([]int, 0, len(parent))
		for _, row := range parent {
			if s.agree[col][row] {
				rows = append(rows, row)
			}
		}
		s.stack = append(s.stack, rows)
	}
	s.prev = append(s.prev[:0], columns...)
	return len(s.stack[len(s.stack)-1])
}
