package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-optics/dielectric/model"
)

// GridConfig describes the sampled energy window in eV.
type GridConfig struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Step  float64 `yaml:"step"`
}

// ModelConfig is the YAML layout accepted by --config.
type ModelConfig struct {
	Grid        GridConfig      `yaml:"grid"`
	Oscillators []model.Lorentz `yaml:"oscillators"`
}

var errEmptyGrid = errors.New("grid must satisfy 0 <= start < stop and step > 0")

// defaultModelConfig is a single broad oscillator at 3 eV sampled from
// 0.01 to 10 eV.
func defaultModelConfig() ModelConfig {
	return ModelConfig{
		Grid: GridConfig{Start: 0.01, Stop: 10, Step: 0.01},
		Oscillators: []model.Lorentz{
			{Energy: 3, Broadening: 0.8, Strength: 1},
		},
	}
}

// loadModelConfig reads a YAML model file on top of the defaults. An empty
// oscillator list keeps the default oscillator.
func loadModelConfig(path string) (ModelConfig, error) {
	cfg := defaultModelConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ModelConfig{}, fmt.Errorf("read config: %w", err)
	}

	var file ModelConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return ModelConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if file.Grid != (GridConfig{}) {
		cfg.Grid = file.Grid
	}

	if len(file.Oscillators) > 0 {
		cfg.Oscillators = file.Oscillators
	}

	return cfg, nil
}

// samples returns the number of grid points from Start up to and including Stop.
func (g GridConfig) samples() (int, error) {
	if !(g.Step > 0) || g.Start < 0 || !(g.Stop > g.Start) {
		return 0, fmt.Errorf("%w: %+v", errEmptyGrid, g)
	}

	return int(math.Floor((g.Stop-g.Start)/g.Step+1e-9)) + 1, nil
}
