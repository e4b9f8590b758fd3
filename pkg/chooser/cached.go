package chooser

import (
	"github.com/rmohr/probeselect/pkg/api"
	"github.com/rmohr/probeselect/pkg/cache"
	"github.com/sirupsen/logrus"
)

// Cached answers from subsets computed ahead of time.
type Cached struct {
	subsets map[string]*api.Subset
}

func NewCached(subsets map[string]*api.Subset) *Cached {
	return &Cached{subsets: subsets}
}

func LoadCached(path string) (*Cached, error) {
	subsets, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Loaded %d cached subsets from %s.", len(subsets), path)
	return NewCached(subsets), nil
}

// Choose ignores the matrix. Forbidden columns are rejected since a stored
// answer can't take them into account.
func (c *Cached) Choose(id string, _ *api.Matrix, forbidden []int) (*api.Subset, error) {
	if len(forbidden) > 0 {
		return nil, ErrForbiddenWithCache
	}
	return c.subsets[id], nil
}

func (c *Cached) Len() int {
	return len(c.subsets)
}
