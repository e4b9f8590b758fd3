package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "probeselect",
	Short: "probeselect is a tool which selects the probes best telling competing hypotheses apart",
	Long: `The tool partitions hypotheses by their denotations on perturbed variants of a dataset and selects
a small subset of variants which either maximizes the diversity of the hypotheses or isolates the one matching a trusted answer`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewChooseCmd())
	rootCmd.AddCommand(NewVerifyCmd())
	rootCmd.AddCommand(NewLookupCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
