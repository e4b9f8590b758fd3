package main

import (
	"fmt"

	"github.com/rmohr/probeselect/pkg/combo"
	"github.com/rmohr/probeselect/pkg/partition"
	"github.com/rmohr/probeselect/pkg/task"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type verifyOpts struct {
	in   []string
	size int
}

var verifyopts = verifyOpts{}

func NewVerifyCmd() *cobra.Command {

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "cross-checks all partition implementations on the given tasks",
		Long: `enumerates every probe subset up to the given size in search order and verifies that all partition
implementations agree on every one of them. Any disagreement is a bug and makes the command fail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.Info("Loading tasks.")
			tasks, err := task.LoadTaskFiles(verifyopts.in)
			if err != nil {
				return err
			}
			for i := range tasks.Tasks {
				t := &tasks.Tasks[i]
				m, err := task.ToMatrix(t)
				if err != nil {
					return err
				}
				checked := partition.NewChecked(m)
				n, err := verifyMatrix(checked, m.NumRows(), m.NumProbes(), verifyopts.size)
				if err != nil {
					return fmt.Errorf("task %s: %w", t.ID, err)
				}
				logrus.Infof("Verified %d subsets for %s.", n, t.ID)
			}
			logrus.Info("Done.")
			return nil
		},
	}

	verifyCmd.Flags().StringArrayVarP(&verifyopts.in, "input", "i", []string{"tasks.yaml"}, "task file with denotation matrices, can be specified multiple times")
	verifyCmd.Flags().IntVarP(&verifyopts.size, "size", "k", 2, "largest subset size to verify")
	return verifyCmd
}

// verifyMatrix queries every subset of up to size probes and checks that the
// groups cover all rows.
func verifyMatrix(c partition.Computer, rows, probes, size int) (int, error) {
	logrus.Debugf("verifying up to %d subsets", subsetCount(probes, size))
	verified := 0
	columns := []int{}
	it := combo.SizeAtMostK(probes, size, combo.Ascending)
	for it.Next() {
		columns = append(columns[:0], 0)
		for _, idx := range it.Value() {
			columns = append(columns, idx+1)
		}
		sizes, err := c.GroupSizes(columns)
		if err != nil {
			return verified, err
		}
		total := 0
		for _, s := range sizes {
			total += s
		}
		if total != rows {
			return verified, fmt.Errorf("groups on columns %v cover %d of %d rows", columns, total, rows)
		}
		verified++
	}
	return verified, nil
}

func subsetCount(probes, size int) int {
	count := 0
	for k := 1; k <= size; k++ {
		count += combo.Binomial(probes, k)
	}
	return count
}
