package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rmohr/probeselect/pkg/api"
	"github.com/rmohr/probeselect/pkg/api/probeselect"
	"github.com/rmohr/probeselect/pkg/cache"
	"github.com/rmohr/probeselect/pkg/chooser"
	"github.com/rmohr/probeselect/pkg/partition"
	"github.com/spf13/pflag"
)

func newFlags(args ...string) (*pflag.FlagSet, *chooserOpts, error) {
	opts := &chooserOpts{}
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addChooserFlags(flags, opts)
	return flags, opts, flags.Parse(args)
}

func TestResolveConfigFromFlags(t *testing.T) {
	g := NewGomegaWithT(t)
	flags, opts, err := newFlags("--strategy", "purity", "-k", "3", "--allow-smaller", "--forbid", "2", "--forbid", "4")
	g.Expect(err).ToNot(HaveOccurred())

	cfg, err := resolveConfig(flags, opts)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(cfg).To(Equal(&probeselect.Config{
		Strategy:     probeselect.StrategyPurity,
		Size:         3,
		AllowSmaller: true,
		Computer:     probeselect.ComputerBreakpoint,
		Forbidden:    []int{2, 4},
	}))
}

func TestResolveConfigFlagsOverrideFile(t *testing.T) {
	g := NewGomegaWithT(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	g.Expect(os.WriteFile(path, []byte("strategy: purity\nsize: 4\ncomputer: grouped\nforbidden: [1]\n"), 0644)).To(Succeed())

	flags, opts, err := newFlags("--config", path, "--size", "2")
	g.Expect(err).ToNot(HaveOccurred())
	cfg, err := resolveConfig(flags, opts)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(cfg).To(Equal(&probeselect.Config{
		Strategy:  probeselect.StrategyPurity,
		Size:      2,
		Computer:  probeselect.ComputerGrouped,
		Forbidden: []int{1},
	}))
}

func TestResolveConfigMissingFile(t *testing.T) {
	g := NewGomegaWithT(t)
	flags, opts, err := newFlags("--config", filepath.Join(t.TempDir(), "missing.yaml"))
	g.Expect(err).ToNot(HaveOccurred())
	_, err = resolveConfig(flags, opts)
	g.Expect(err).To(HaveOccurred())
}

func TestMergeForbidden(t *testing.T) {
	g := NewGomegaWithT(t)
	g.Expect(mergeForbidden([]int{1, 2}, nil)).To(Equal([]int{1, 2}))
	g.Expect(mergeForbidden(nil, []int{3})).To(Equal([]int{3}))
	g.Expect(mergeForbidden([]int{1, 2}, []int{2, 3})).To(Equal([]int{1, 2, 3}))
}

func TestToEntries(t *testing.T) {
	g := NewGomegaWithT(t)
	subset := api.NewSubset("a", []int{1}, 0.5)
	entries := toEntries([]probeselect.Task{{ID: "a"}, {ID: "b"}}, []*api.Subset{subset, nil})
	g.Expect(entries).To(Equal([]cache.Entry{{ID: "a", Subset: subset}, {ID: "b"}}))
}

func workedTasks() []probeselect.Task {
	rows := [][]string{
		{"x", "1", "1", "1"},
		{"x", "1", "2", "1"},
		{"x", "2", "2", "2"},
		{"x", "2", "2", "2"},
	}
	return []probeselect.Task{
		{ID: "entropy", Rows: rows},
		{ID: "forbidden", Rows: rows, Forbidden: []int{1}},
		{ID: "empty"},
	}
}

func TestChooseAll(t *testing.T) {
	for _, jobs := range []int{0, 1, 4} {
		g := NewGomegaWithT(t)
		cfg := &probeselect.Config{Strategy: probeselect.StrategyEntropy, Size: 2}
		c, err := chooser.New(cfg)
		g.Expect(err).ToNot(HaveOccurred())

		selected, err := chooseAll(context.Background(), c, cfg, workedTasks(), jobs)
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(selected).To(HaveLen(3))
		g.Expect(selected[0].Columns()).To(Equal([]int{0, 1, 2}))
		g.Expect(selected[0].Score()).To(BeNumerically("~", 0.75, 1e-12))
		g.Expect(selected[1].Columns()).To(Equal([]int{0, 2, 3}))
		g.Expect(selected[2]).To(BeNil())
	}
}

func TestChooseAllRejectsCachedWithForbidden(t *testing.T) {
	g := NewGomegaWithT(t)
	c := chooser.NewCached(map[string]*api.Subset{})
	_, err := chooseAll(context.Background(), c, &probeselect.Config{}, workedTasks(), 2)
	g.Expect(err).To(MatchError(ContainSubstring("forbidden")))
}

func TestChooseAllFailsOnInvalidTask(t *testing.T) {
	g := NewGomegaWithT(t)
	tasks := []probeselect.Task{{ID: "ragged", Rows: [][]string{{"x", "1"}, {"x"}}}}
	_, err := chooseAll(context.Background(), chooser.NewEntropy(1, false), &probeselect.Config{}, tasks, 1)
	g.Expect(err).To(MatchError(ContainSubstring("ragged")))
}

func TestVerifyMatrix(t *testing.T) {
	g := NewGomegaWithT(t)
	tasks := workedTasks()
	m := &api.Matrix{}
	for _, row := range tasks[0].Rows {
		values := []api.Value{}
		for _, v := range row {
			values = append(values, api.ParseValue(v))
		}
		m.Rows = append(m.Rows, values)
	}
	n, err := verifyMatrix(partition.NewChecked(m), m.NumRows(), m.NumProbes(), 2)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(n).To(Equal(6))
	g.Expect(subsetCount(3, 2)).To(Equal(6))
}
