package task

import (
	"fmt"
	"os"

	"github.com/rmohr/probeselect/pkg/api/probeselect"
	"sigs.k8s.io/yaml"
)

type ConfigInit struct {
	Strategy   probeselect.Strategy
	Size       int
	ConfigFile string
}

func (c *ConfigInit) Init() error {
	_, err := os.Stat(c.ConfigFile)
	if !os.IsNotExist(err) {
		return fmt.Errorf("config file %s already exists", c.ConfigFile)
	}
	cfg := &probeselect.Config{
		Strategy:     c.Strategy,
		Size:         c.Size,
		AllowSmaller: c.Strategy == probeselect.StrategyPurity,
		Computer:     probeselect.ComputerBreakpoint,
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(c.ConfigFile, data, 0660)
}

func NewConfigInit(strategy string, size int, configFile string) *ConfigInit {
	return &ConfigInit{
		Strategy:   probeselect.Strategy(strategy),
		Size:       size,
		ConfigFile: configFile,
	}
}
