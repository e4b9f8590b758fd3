package chooser

import (
	"math"

	"github.com/rmohr/probeselect/pkg/api"
	"github.com/rmohr/probeselect/pkg/api/probeselect"
	"github.com/rmohr/probeselect/pkg/combo"
	"github.com/rmohr/probeselect/pkg/partition"
	"github.com/sirupsen/logrus"
)

// Entropy picks the subset maximizing the normalized entropy of the induced
// partition. Ties keep the subset seen first.
type Entropy struct {
	Size         int
	AllowSmaller bool
	Computer     probeselect.ComputerKind
	Diagnostic   bool
}

func NewEntropy(size int, allowSmaller bool) *Entropy {
	return &Entropy{Size: size, AllowSmaller: allowSmaller}
}

func (e *Entropy) Choose(id string, m *api.Matrix, forbidden []int) (*api.Subset, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	n := m.NumRows()
	if n == 0 || e.Size <= 0 {
		return nil, nil
	}
	// a fresh computer per search, its prefix cache must not outlive it
	computer, err := partition.New(e.Computer, m, e.Diagnostic)
	if err != nil {
		return nil, err
	}
	excluded := toSet(forbidden)

	var best []int
	bestScore := math.Inf(-1)
	var columns []int
	it := candidates(m.NumProbes(), e.Size, e.AllowSmaller)
	for it.Next() {
		columns = toColumns(columns, it.Value())
		if !combo.Disjoint(columns[1:], excluded) {
			continue
		}
		sizes, err := computer.GroupSizes(columns)
		if err != nil {
			return nil, err
		}
		if score := EntropyScore(sizes, n); score > bestScore {
			logrus.Debugf("%s: new best subset %v with score %v", id, columns, score)
			bestScore = score
			best = append(best[:0], columns[1:]...)
		}
	}
	if math.IsInf(bestScore, -1) {
		logrus.Debugf("%s: no candidate subset of size %d", id, e.Size)
		return nil, nil
	}
	return api.NewSubset(id, best, bestScore), nil
}

// EntropyScore is 1 - sum(c*ln c) / (n*ln n) over the group sizes c. It is 0
// if all rows share one group and 1 if every row is on its own.
func EntropyScore(sizes []int, n int) float64 {
	if n <= 1 {
		return 0
	}
	sum := 0.0
	for _, c := range sizes {
		if c > 1 {
			sum += float64(c) * math.Log(float64(c))
		}
	}
	nf := float64(n)
	score := 1 - sum/(nf*math.Log(nf))
	return math.Max(0, math.Min(1, score))
}
