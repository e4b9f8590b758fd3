package task

import (
	"fmt"
	"os"

	"github.com/rmohr/probeselect/pkg/api"
	"github.com/rmohr/probeselect/pkg/api/probeselect"
	"sigs.k8s.io/yaml"
)

// LoadTaskFile reads a YAML or JSON file with disambiguation tasks.
func LoadTaskFile(file string) (*probeselect.TaskFile, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file %s: %v", file, err)
	}
	tasks := &probeselect.TaskFile{}
	if err := yaml.Unmarshal(data, tasks); err != nil {
		return nil, fmt.Errorf("failed to parse task file %s: %v", file, err)
	}
	seen := map[string]bool{}
	for i, t := range tasks.Tasks {
		if t.ID == "" {
			return nil, fmt.Errorf("task %d in %s has no id", i, file)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("task %s in %s is defined twice", t.ID, file)
		}
		seen[t.ID] = true
	}
	return tasks, nil
}

func LoadTaskFiles(files []string) (*probeselect.TaskFile, error) {
	all := &probeselect.TaskFile{}
	for _, file := range files {
		tasks, err := LoadTaskFile(file)
		if err != nil {
			return nil, err
		}
		all.Tasks = append(all.Tasks, tasks.Tasks...)
	}
	return all, nil
}

// ToMatrix converts the textual denotations of a task and validates the
// resulting matrix.
func ToMatrix(t *probeselect.Task) (*api.Matrix, error) {
	m := &api.Matrix{}
	for _, row := range t.Rows {
		values := make([]api.Value, 0, len(row))
		for _, cell := range row {
			values = append(values, api.ParseValue(cell))
		}
		m.Rows = append(m.Rows, values)
	}
	if t.Annotated != nil {
		m.Annotated = make([]api.Value, 0, len(t.Annotated))
		for _, cell := range t.Annotated {
			m.Annotated = append(m.Annotated, api.ParseValue(cell))
		}
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid matrix for task %s: %w", t.ID, err)
	}
	return m, nil
}

// LoadConfig reads a chooser configuration file.
func LoadConfig(file string) (*probeselect.Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	cfg := &probeselect.Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %v", file, err)
	}
	return cfg, nil
}
