package partition

import (
	"github.com/rmohr/probeselect/pkg/api"
)

// Grouped keeps one partition per prefix length of the previous query. A
// partition is a list of groups, each group a list of row indices.
type Grouped struct {
	ids   [][]int
	prev  []int
	stack [][][]int
}

func NewGrouped(m *api.Matrix) *Grouped {
	all := make([]int, m.NumRows())
	for i := range all {
		all[i] = i
	}
	root := [][]int{}
	if len(all) > 0 {
		root = append(root, all)
	}
	return &Grouped{
		ids:   uniqueIDs(m),
		stack: [][][]int{root},
	}
}

func (g *Grouped) GroupSizes(columns []int) ([]int, error) {
	if err := checkColumns(columns, len(g.ids)); err != nil {
		return nil, err
	}
	p := commonPrefix(g.prev, columns)
	g.stack = g.stack[:p+1]
	for _, col := range columns[p:] {
		g.stack = append(g.stack, refineGroups(g.stack[len(g.stack)-1], g.ids[col]))
	}
	g.prev = append(g.prev[:0], columns...)

	top := g.stack[len(g.stack)-1]
	sizes := make([]int, len(top))
	for i, group := range top {
		sizes[i] = len(group)
	}
	return sizes, nil
}

func refineGroups(groups [][]int, ids []int) [][]int {
	refined := make([][]int, 0, len(groups))
	for _, group := range groups {
		if len(group) == 1 {
			refined = append(refined, group)
			continue
		}
		index := map[int]int{}
		first := len(refined)
		for _, row := range group {
			if i, exists := index[ids[row]]; exists {
				refined[i] = append(refined[i], row)
				continue
			}
			index[ids[row]] = len(refined)
			refined = append(refined, []int{row})
		}
		if len(refined)-first == 1 {
			// nothing split, share the parent group
			refined[first] = group
		}
	}
	return refined
}
