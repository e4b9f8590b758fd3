package partition

import (
	"cmp"

	"github.com/rmohr/probeselect/pkg/api"
	"golang.org/x/exp/slices"
)

// level is one partition snapshot. perm orders the rows so that every group is
// contiguous, breaks holds the ascending start offsets of the groups.
type level struct {
	perm   []int
	breaks []int
}

// Breakpoint keeps the partitions of the previous query as permutation arrays
// with group boundaries. Refining a level only sorts the rows inside groups
// which still have more than one member. Level buffers are reused when the
// stack shrinks and grows again.
type Breakpoint struct {
	ids    [][]int
	n      int
	prev   []int
	levels []level
	depth  int
}

func NewBreakpoint(m *api.Matrix) *Breakpoint {
	n := m.NumRows()
	root := level{perm: make([]int, n)}
	for i := range root.perm {
		root.perm[i] = i
	}
	if n > 0 {
		root.breaks = []int{0}
	}
	return &Breakpoint{
		ids:    uniqueIDs(m),
		n:      n,
		levels: []level{root},
		depth:  0,
	}
}

func (b *Breakpoint) GroupSizes(columns []int) ([]int, error) {
	if err := checkColumns(columns, len(b.ids)); err != nil {
		return nil, err
	}
	p := commonPrefix(b.prev, columns)
	b.depth = p
	for _, col := range columns[p:] {
		b.push(b.ids[col])
	}
	b.prev = append(b.prev[:0], columns...)

	top := &b.levels[b.depth]
	sizes := make([]int, len(top.breaks))
	for i, start := range top.breaks {
		end := b.n
		if i+1 < len(top.breaks) {
			end = top.breaks[i+1]
		}
		sizes[i] = end - start
	}
	return sizes, nil
}

func (b *Breakpoint) push(ids []int) {
	if b.depth+1 == len(b.levels) {
		b.levels = append(b.levels, level{perm: make([]int, b.n)})
	}
	parent := &b.levels[b.depth]
	next := &b.levels[b.depth+1]
	copy(next.perm, parent.perm)
	next.breaks = next.breaks[:0]

	for i, start := range parent.breaks {
		end := b.n
		if i+1 < len(parent.breaks) {
			end = parent.breaks[i+1]
		}
		next.breaks = append(next.breaks, start)
		if end-start < 2 {
			continue
		}
		group := next.perm[start:end]
		slices.SortStableFunc(group, func(x, y int) int {
			return cmp.Compare(ids[x], ids[y])
		})
		for j := start + 1; j < end; j++ {
			if ids[next.perm[j]] != ids[next.perm[j-1]] {
				next.breaks = append(next.breaks, j)
			}
		}
	}
	b.depth++
}
