package chooser

import (
	"errors"
	"fmt"

	"github.com/rmohr/probeselect/pkg/api"
	"github.com/rmohr/probeselect/pkg/api/probeselect"
	"github.com/rmohr/probeselect/pkg/cache"
	"github.com/rmohr/probeselect/pkg/combo"
)

var (
	ErrUnknownStrategy    = errors.New("unknown subset chooser strategy")
	ErrForbiddenWithCache = errors.New("cached subsets can't honor forbidden columns")
	ErrInvalidSize        = errors.New("subset size must not be negative")
)

type Chooser interface {
	// Choose returns the selected subset for the task id on matrix m, never
	// picking a column in forbidden. It returns nil if nothing qualifies.
	Choose(id string, m *api.Matrix, forbidden []int) (*api.Subset, error)
}

// New creates the chooser described by cfg.
func New(cfg *probeselect.Config) (Chooser, error) {
	if cfg.Size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, cfg.Size)
	}
	switch cfg.Strategy {
	case probeselect.StrategyEntropy, "":
		return &Entropy{
			Size:         cfg.Size,
			AllowSmaller: cfg.AllowSmaller,
			Computer:     cfg.Computer,
			Diagnostic:   cfg.Diagnostic,
		}, nil
	case probeselect.StrategyPurity:
		return &Purity{
			Size:         cfg.Size,
			AllowSmaller: cfg.AllowSmaller,
			SkipPrecheck: cfg.SkipPrecheck,
		}, nil
	case probeselect.StrategyCached:
		path := cfg.CacheFile
		if path == "" {
			var err error
			if path, err = cache.DefaultPath(); err != nil {
				return nil, err
			}
		}
		return LoadCached(path)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, cfg.Strategy)
}

func toSet(columns []int) map[int]bool {
	set := make(map[int]bool, len(columns))
	for _, c := range columns {
		set[c] = true
	}
	return set
}

// candidates iterates probe combinations of the requested size, or of all sizes
// up to it. Indices yielded by the iterator are probe indices starting at 0,
// which correspond to matrix column index+1.
func candidates(probes, size int, allowSmaller bool) combo.Iterator {
	if allowSmaller {
		return combo.SizeAtMostK(probes, size, combo.Ascending)
	}
	return combo.SizeK(probes, size)
}

// toColumns writes the matrix columns for a probe combination into buf,
// base column first.
func toColumns(buf []int, combination []int) []int {
	buf = append(buf[:0], 0)
	for _, idx := range combination {
		buf = append(buf, idx+1)
	}
	return buf
}
