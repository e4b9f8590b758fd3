package partition

import (
	"strconv"
	"strings"

	"github.com/rmohr/probeselect/pkg/api"
)

// Direct hashes the complete tuple of every row on each query.
type Direct struct {
	m *api.Matrix
}

func NewDirect(m *api.Matrix) *Direct {
	return &Direct{m: m}
}

func (d *Direct) GroupSizes(columns []int) ([]int, error) {
	if err := checkColumns(columns, d.m.NumColumns()); err != nil {
		return nil, err
	}
	index := map[string]int{}
	var sizes []int
	for row := range d.m.Rows {
		key := tupleKey(d.m, row, columns)
		if i, exists := index[key]; exists {
			sizes[i]++
			continue
		}
		index[key] = len(sizes)
		sizes = append(sizes, 1)
	}
	return sizes, nil
}

// tupleKey encodes the values of a row on the columns without ambiguity. Every
// value is prefixed with its length and a marker distinguishing errors.
func tupleKey(m *api.Matrix, row int, columns []int) string {
	b := strings.Builder{}
	for _, col := range columns {
		v := m.Cell(row, col)
		b.WriteString(strconv.Itoa(len(v.Text)))
		if v.Error {
			b.WriteByte('!')
		} else {
			b.WriteByte(':')
		}
		b.WriteString(v.Text)
	}
	return b.String()
}
