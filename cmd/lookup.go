package main

import (
	"os"

	"github.com/rmohr/probeselect/pkg/api"
	"github.com/rmohr/probeselect/pkg/cache"
	"github.com/rmohr/probeselect/pkg/chooser"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type lookupOpts struct {
	cacheFile string
	forbidden []int
}

var lookupopts = lookupOpts{}

func NewLookupCmd() *cobra.Command {

	lookupCmd := &cobra.Command{
		Use:   "lookup [ids]",
		Short: "prints cached subsets",
		Long:  `prints the cached subsets of the given task ids, or of all tasks if no id is given`,
		RunE: func(cmd *cobra.Command, ids []string) error {
			path := lookupopts.cacheFile
			if path == "" {
				var err error
				if path, err = cache.DefaultPath(); err != nil {
					return err
				}
			}
			subsets, err := cache.Load(path)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				ids = cache.SortedIDs(subsets)
			}
			cached := chooser.NewCached(subsets)
			entries := []cache.Entry{}
			for _, id := range ids {
				subset, err := cached.Choose(id, &api.Matrix{}, lookupopts.forbidden)
				if err != nil {
					return err
				}
				if subset == nil {
					logrus.Warnf("No subset cached for %s.", id)
				}
				entries = append(entries, cache.Entry{ID: id, Subset: subset})
			}
			return cache.Write(os.Stdout, entries)
		},
	}

	lookupCmd.Flags().StringVar(&lookupopts.cacheFile, "cache-file", "", "cache file to read, defaults to the XDG cache directory")
	lookupCmd.Flags().IntSliceVar(&lookupopts.forbidden, "forbid", nil, "forbidden probe columns, always rejected by cached lookups")
	return lookupCmd
}
