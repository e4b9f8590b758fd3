package api

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRaggedMatrix    = errors.New("matrix rows have different lengths")
	ErrAnnotatedLength = errors.New("annotated row length does not match matrix width")
	ErrNoBaseColumn    = errors.New("matrix has no base column")
)

const (
	errorValuePrefix    = "(error"
	errorValueSuffix    = ")"
	errorValueDelimiter = " "
)

// Value is a single denotation. Values are compared with ==, which makes them
// usable as map keys.
type Value struct {
	Text  string
	Error bool
}

func StringValue(text string) Value {
	return Value{Text: text}
}

func ErrorValue(msg string) Value {
	return Value{Text: msg, Error: true}
}

// ParseValue reads the textual form used in task files. "(error msg)" yields an
// error marker, everything else is taken verbatim.
func ParseValue(s string) Value {
	if strings.HasPrefix(s, errorValuePrefix) && strings.HasSuffix(s, errorValueSuffix) {
		inner := strings.TrimSuffix(strings.TrimPrefix(s, errorValuePrefix), errorValueSuffix)
		if inner == "" || strings.HasPrefix(inner, errorValueDelimiter) {
			return ErrorValue(strings.TrimPrefix(inner, errorValueDelimiter))
		}
	}
	return StringValue(s)
}

func (v Value) String() string {
	if v.Error {
		if v.Text == "" {
			return errorValuePrefix + errorValueSuffix
		}
		return errorValuePrefix + errorValueDelimiter + v.Text + errorValueSuffix
	}
	return v.Text
}

// Matrix holds the denotations of n representative rows on m+1 probes. Column 0
// is the original probe. Annotated is optional and holds the trusted value per
// column.
type Matrix struct {
	Rows      [][]Value
	Annotated []Value
}

func (m *Matrix) NumRows() int {
	return len(m.Rows)
}

// NumColumns returns m+1, the width including the base column.
func (m *Matrix) NumColumns() int {
	if len(m.Rows) > 0 {
		return len(m.Rows[0])
	}
	return len(m.Annotated)
}

// NumProbes returns m, the number of optional extra probes.
func (m *Matrix) NumProbes() int {
	if w := m.NumColumns(); w > 0 {
		return w - 1
	}
	return 0
}

func (m *Matrix) HasAnnotated() bool {
	return m.Annotated != nil
}

func (m *Matrix) Cell(row, col int) Value {
	return m.Rows[row][col]
}

func (m *Matrix) Validate() error {
	width := m.NumColumns()
	for i, row := range m.Rows {
		if len(row) != width {
			return fmt.Errorf("row %d has %d entries, expected %d: %w", i, len(row), width, ErrRaggedMatrix)
		}
	}
	if len(m.Rows) > 0 && width == 0 {
		return ErrNoBaseColumn
	}
	if m.Annotated != nil && len(m.Rows) > 0 && len(m.Annotated) != width {
		return fmt.Errorf("annotated row has %d entries, expected %d: %w", len(m.Annotated), width, ErrAnnotatedLength)
	}
	return nil
}

// Subset is a selection of probe columns. Columns always start with the base
// column 0. A Subset is never modified after construction.
type Subset struct {
	id      string
	columns []int
	score   float64
}

// NewSubset prepends the base column to the given extra columns, dropping
// duplicates while keeping the order of first occurrence.
func NewSubset(id string, extra []int, score float64) *Subset {
	columns := make([]int, 0, len(extra)+1)
	seen := map[int]bool{0: true}
	columns = append(columns, 0)
	for _, c := range extra {
		if seen[c] {
			continue
		}
		seen[c] = true
		columns = append(columns, c)
	}
	return &Subset{id: id, columns: columns, score: score}
}

func (s *Subset) ID() string {
	return s.id
}

// Columns returns a copy of the selected columns.
func (s *Subset) Columns() []int {
	return append([]int(nil), s.columns...)
}

// Extra returns the selected columns without the base column.
func (s *Subset) Extra() []int {
	return append([]int(nil), s.columns[1:]...)
}

func (s *Subset) Score() float64 {
	return s.score
}

// WithID returns a copy of the subset registered under another id.
func (s *Subset) WithID(id string) *Subset {
	return &Subset{id: id, columns: s.Columns(), score: s.score}
}

func (s *Subset) String() string {
	return fmt.Sprintf("%s %v %v", s.id, s.columns, s.score)
}
