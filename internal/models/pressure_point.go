package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PressurePoint is one named facial acupressure point. The dataset backs
// both the static advisory panel and the matching quiz.
type PressurePoint struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Location string `yaml:"location" json:"location"`
	Benefit  string `yaml:"benefit" json:"benefit"`
}

// PressurePointSet holds all points from the YAML data file.
type PressurePointSet struct {
	Points []PressurePoint `yaml:"points"`
}

// LoadPressurePoints reads and parses the pressure-point data file.
func LoadPressurePoints(path string) (*PressurePointSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pressure point file: %w", err)
	}

	var set PressurePointSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pressure point YAML: %w", err)
	}

	if len(set.Points) == 0 {
		return nil, fmt.Errorf("pressure point file %s contains no points", path)
	}
	return &set, nil
}
