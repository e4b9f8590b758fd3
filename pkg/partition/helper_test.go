package partition

import (
	"math/rand"
	"strconv"

	"github.com/rmohr/probeselect/pkg/api"
)

func newMatrix(columns ...[]string) *api.Matrix {
	m := &api.Matrix{}
	if len(columns) == 0 {
		return m
	}
	for row := range columns[0] {
		r := []api.Value{}
		for _, col := range columns {
			r = append(r, api.ParseValue(col[row]))
		}
		m.Rows = append(m.Rows, r)
	}
	return m
}

// randomMatrix draws every cell from a small alphabet so that groups collide.
func randomMatrix(rnd *rand.Rand, rows, width, alphabet int) *api.Matrix {
	m := &api.Matrix{}
	for i := 0; i < rows; i++ {
		r := []api.Value{}
		for j := 0; j < width; j++ {
			v := rnd.Intn(alphabet)
			if v == 0 {
				r = append(r, api.ErrorValue("boom"))
			} else {
				r = append(r, api.StringValue(strconv.Itoa(v)))
			}
		}
		m.Rows = append(m.Rows, r)
	}
	return m
}

func sum(sizes []int) (s int) {
	for _, v := range sizes {
		s += v
	}
	return s
}

type fakeComputer struct {
	sizes []int
}

func (f *fakeComputer) GroupSizes(columns []int) ([]int, error) {
	return f.sizes, nil
}
