package main

import (
	"github.com/rmohr/probeselect/pkg/api"
	"github.com/rmohr/probeselect/pkg/api/probeselect"
	"github.com/rmohr/probeselect/pkg/cache"
	"github.com/rmohr/probeselect/pkg/task"
	"github.com/spf13/pflag"
)

type chooserOpts struct {
	config       string
	strategy     string
	size         int
	allowSmaller bool
	computer     string
	diagnostic   bool
	skipPrecheck bool
	cacheFile    string
	forbidden    []int
}

func addChooserFlags(flags *pflag.FlagSet, opts *chooserOpts) {
	flags.StringVarP(&opts.config, "config", "c", "", "chooser configuration file, explicitly set flags take precedence")
	flags.StringVarP(&opts.strategy, "strategy", "s", string(probeselect.StrategyEntropy), "selection strategy (entropy, purity or cached)")
	flags.IntVarP(&opts.size, "size", "k", 1, "number of extra probes to select")
	flags.BoolVar(&opts.allowSmaller, "allow-smaller", false, "also consider subsets with fewer probes")
	flags.StringVar(&opts.computer, "computer", string(probeselect.ComputerBreakpoint), "partition implementation (breakpoint, grouped or direct)")
	flags.BoolVar(&opts.diagnostic, "diagnostic", false, "cross-check every partition with all implementations")
	flags.BoolVar(&opts.skipPrecheck, "skip-precheck", false, "don't run the SAT feasibility check before a purity search")
	flags.StringVar(&opts.cacheFile, "cache-file", "", "cache file for the cached strategy, defaults to the XDG cache directory")
	flags.IntSliceVar(&opts.forbidden, "forbid", nil, "probe columns which must not be selected, can be specified multiple times")
}

// resolveConfig loads the configuration file, if any, and applies every flag
// which was set explicitly on top of it.
func resolveConfig(flags *pflag.FlagSet, opts *chooserOpts) (*probeselect.Config, error) {
	cfg := &probeselect.Config{
		Strategy:     probeselect.Strategy(opts.strategy),
		Size:         opts.size,
		AllowSmaller: opts.allowSmaller,
		Computer:     probeselect.ComputerKind(opts.computer),
		Diagnostic:   opts.diagnostic,
		SkipPrecheck: opts.skipPrecheck,
		CacheFile:    opts.cacheFile,
		Forbidden:    opts.forbidden,
	}
	if opts.config == "" {
		return cfg, nil
	}
	fromFile, err := task.LoadConfig(opts.config)
	if err != nil {
		return nil, err
	}
	if flags.Changed("strategy") {
		fromFile.Strategy = cfg.Strategy
	}
	if flags.Changed("size") {
		fromFile.Size = cfg.Size
	}
	if flags.Changed("allow-smaller") {
		fromFile.AllowSmaller = cfg.AllowSmaller
	}
	if flags.Changed("computer") {
		fromFile.Computer = cfg.Computer
	}
	if flags.Changed("diagnostic") {
		fromFile.Diagnostic = cfg.Diagnostic
	}
	if flags.Changed("skip-precheck") {
		fromFile.SkipPrecheck = cfg.SkipPrecheck
	}
	if flags.Changed("cache-file") {
		fromFile.CacheFile = cfg.CacheFile
	}
	if flags.Changed("forbid") {
		fromFile.Forbidden = cfg.Forbidden
	}
	return fromFile, nil
}

// mergeForbidden unions the globally forbidden columns with the ones of a task.
func mergeForbidden(global, local []int) []int {
	if len(local) == 0 {
		return global
	}
	seen := map[int]bool{}
	merged := []int{}
	for _, c := range append(append([]int{}, global...), local...) {
		if !seen[c] {
			seen[c] = true
			merged = append(merged, c)
		}
	}
	return merged
}

func toEntries(tasks []probeselect.Task, selected []*api.Subset) []cache.Entry {
	entries := make([]cache.Entry, 0, len(tasks))
	for i, t := range tasks {
		entries = append(entries, cache.Entry{ID: t.ID, Subset: selected[i]})
	}
	return entries
}
