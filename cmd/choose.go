package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rmohr/probeselect/pkg/api"
	"github.com/rmohr/probeselect/pkg/api/probeselect"
	"github.com/rmohr/probeselect/pkg/cache"
	"github.com/rmohr/probeselect/pkg/chooser"
	"github.com/rmohr/probeselect/pkg/task"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type chooseOpts struct {
	chooserOpts
	in     []string
	out    string
	jobs   int
	strict bool
}

var chooseopts = chooseOpts{}

func NewChooseCmd() *cobra.Command {

	chooseCmd := &cobra.Command{
		Use:   "choose",
		Short: "selects probe subsets for disambiguation tasks",
		Long: `selects for every task of the given task files the subset of probes which is best suited to tell the hypotheses apart.
The result is printed in the cache format and can be written to a cache file for later lookups.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags(), &chooseopts.chooserOpts)
			if err != nil {
				return err
			}
			c, err := chooser.New(cfg)
			if err != nil {
				return err
			}
			logrus.Info("Loading tasks.")
			tasks, err := task.LoadTaskFiles(chooseopts.in)
			if err != nil {
				return err
			}
			logrus.Infof("Choosing subsets for %d tasks.", len(tasks.Tasks))
			selected, err := chooseAll(cmd.Context(), c, cfg, tasks.Tasks, chooseopts.jobs)
			if err != nil {
				return err
			}
			entries := toEntries(tasks.Tasks, selected)
			missing := 0
			for _, e := range entries {
				if e.Subset == nil {
					missing++
					logrus.Warnf("No subset selected for %s.", e.ID)
				}
			}
			if missing > 0 && chooseopts.strict {
				return fmt.Errorf("no subset selected for %d of %d tasks", missing, len(entries))
			}
			if err := cache.Write(os.Stdout, entries); err != nil {
				return err
			}
			if chooseopts.out != "" {
				logrus.Infof("Writing cache file %s.", chooseopts.out)
				return cache.WriteFile(chooseopts.out, entries)
			}
			logrus.Info("Done.")
			return nil
		},
	}

	addChooserFlags(chooseCmd.Flags(), &chooseopts.chooserOpts)
	chooseCmd.Flags().StringArrayVarP(&chooseopts.in, "input", "i", []string{"tasks.yaml"}, "task file with denotation matrices, can be specified multiple times")
	chooseCmd.Flags().StringVarP(&chooseopts.out, "output", "o", "", "cache file to write the selected subsets to")
	chooseCmd.Flags().IntVarP(&chooseopts.jobs, "jobs", "j", 1, "number of tasks solved in parallel")
	chooseCmd.Flags().BoolVar(&chooseopts.strict, "strict", false, "fail if a task yields no subset")
	return chooseCmd
}

// chooseAll solves independent tasks in parallel. Every Choose call creates
// its own partition computer, so the chooser can be shared.
func chooseAll(ctx context.Context, c chooser.Chooser, cfg *probeselect.Config, tasks []probeselect.Task, jobs int) ([]*api.Subset, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs < 1 {
		jobs = 1
	}
	selected := make([]*api.Subset, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range tasks {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t := &tasks[i]
			m, err := task.ToMatrix(t)
			if err != nil {
				return err
			}
			subset, err := c.Choose(t.ID, m, mergeForbidden(cfg.Forbidden, t.Forbidden))
			if err != nil {
				return fmt.Errorf("failed to choose subset for %s: %w", t.ID, err)
			}
			selected[i] = subset
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return selected, nil
}
