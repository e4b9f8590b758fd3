package partition

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rmohr/probeselect/pkg/api"
	"github.com/rmohr/probeselect/pkg/api/probeselect"
)

var (
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrUnknownComputer  = errors.New("unknown partition computer")
)

type Computer interface {
	// GroupSizes returns the size of every group of rows sharing the same values
	// on the given columns. The sizes sum up to the number of rows.
	GroupSizes(columns []int) ([]int, error)
}

// New creates a fresh Computer for m. With diagnostic set, every query is
// answered by all implementations and compared.
func New(kind probeselect.ComputerKind, m *api.Matrix, diagnostic bool) (Computer, error) {
	if diagnostic {
		return NewChecked(m), nil
	}
	switch kind {
	case probeselect.ComputerBreakpoint, "":
		return NewBreakpoint(m), nil
	case probeselect.ComputerGrouped:
		return NewGrouped(m), nil
	case probeselect.ComputerDirect:
		return NewDirect(m), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownComputer, kind)
}

// uniqueIDs maps the values of every column to small integers, numbered in
// order of first appearance. The result is indexed by column, then by row.
func uniqueIDs(m *api.Matrix) [][]int {
	width := m.NumColumns()
	ids := make([][]int, width)
	for col := 0; col < width; col++ {
		mapping := map[api.Value]int{}
		ids[col] = make([]int, m.NumRows())
		for row := range m.Rows {
			v := m.Cell(row, col)
			id, exists := mapping[v]
			if !exists {
				id = len(mapping)
				mapping[v] = id
			}
			ids[col][row] = id
		}
	}
	return ids
}

func checkColumns(columns []int, width int) error {
	for _, c := range columns {
		if c < 0 || c >= width {
			return fmt.Errorf("column %d of %v, width %d: %w", c, columns, width, ErrColumnOutOfRange)
		}
	}
	return nil
}

func commonPrefix(a, b []int) int {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return i
}

// Sorted returns a sorted copy of the group sizes, which makes results of
// different implementations comparable.
func Sorted(sizes []int) []int {
	sorted := slices.Clone(sizes)
	slices.Sort(sorted)
	return sorted
}
