package main

import (
	"github.com/rmohr/probeselect/pkg/api/probeselect"
	"github.com/rmohr/probeselect/pkg/task"
	"github.com/spf13/cobra"
)

type initOpts struct {
	strategy string
	size     int
	out      string
}

var initopts = initOpts{}

func NewInitCmd() *cobra.Command {

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a basic chooser configuration file",
		Long:  `Create a chooser configuration file with defaults for the given strategy, to be passed to the other commands with --config`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return task.NewConfigInit(initopts.strategy, initopts.size, initopts.out).Init()
		},
	}

	initCmd.Flags().StringVarP(&initopts.strategy, "strategy", "s", string(probeselect.StrategyEntropy), "selection strategy (entropy, purity or cached)")
	initCmd.Flags().IntVarP(&initopts.size, "size", "k", 2, "number of extra probes to select")
	initCmd.Flags().StringVarP(&initopts.out, "output", "o", "probeselect.yaml", "where to write the configuration")
	return initCmd
}
