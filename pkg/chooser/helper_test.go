package chooser

import (
	"math/rand"
	"strconv"

	"github.com/rmohr/probeselect/pkg/api"
)

// newMatrix builds a matrix from columns, the first one being the base column.
func newMatrix(columns ...[]string) *api.Matrix {
	m := &api.Matrix{}
	for row := range columns[0] {
		r := []api.Value{}
		for _, col := range columns {
			r = append(r, api.ParseValue(col[row]))
		}
		m.Rows = append(m.Rows, r)
	}
	return m
}

func withAnnotated(m *api.Matrix, annotated ...string) *api.Matrix {
	for _, v := range annotated {
		m.Annotated = append(m.Annotated, api.ParseValue(v))
	}
	return m
}

func randomMatrix(rnd *rand.Rand, rows, width, alphabet int) *api.Matrix {
	m := &api.Matrix{}
	for i := 0; i < rows; i++ {
		r := []api.Value{}
		for j := 0; j < width; j++ {
			r = append(r, api.StringValue(strconv.Itoa(rnd.Intn(alphabet))))
		}
		m.Rows = append(m.Rows, r)
	}
	m.Annotated = append([]api.Value(nil), m.Rows[rnd.Intn(rows)]...)
	if rnd.Intn(3) == 0 {
		m.Annotated[1+rnd.Intn(width-1)] = api.StringValue("unseen")
	}
	return m
}

func countMatches(m *api.Matrix, columns []int) (count int) {
	for row := range m.Rows {
		ok := true
		for _, col := range columns {
			ok = ok && m.Cell(row, col) == m.Annotated[col]
		}
		if ok {
			count++
		}
	}
	return count
}

// worked example: A = [1,1,2,2], B = [1,2,2,2], C duplicates A
func workedExample() *api.Matrix {
	return newMatrix(
		[]string{"x", "x", "x", "x"},
		[]string{"1", "1", "2", "2"},
		[]string{"1", "2", "2", "2"},
		[]string{"1", "1", "2", "2"},
	)
}
