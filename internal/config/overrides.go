package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/verisafe/shield/go-monitor/internal/region"
)

// #region override-file

// overrideRule is one YAML tightening rule. A missing center pins the
// rule to the box midpoint.
type overrideRule struct {
	Center *float64 `yaml:"center"`
	Radius float64  `yaml:"radius"`
}

type overrideFile struct {
	Overrides map[int]overrideRule `yaml:"overrides"`
}

// LoadOverrides reads a YAML override table. An empty path returns the
// built-in walker table.
func LoadOverrides(path string) (region.Overrides, error) {
	if path == "" {
		return region.DefaultWalkerOverrides(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides %s: %w", path, err)
	}
	var f overrideFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse overrides %s: %w", path, err)
	}

	out := make(region.Overrides, len(f.Overrides))
	for i, rule := range f.Overrides {
		if rule.Center == nil {
			out[i] = region.Override{AtMidpoint: true, Radius: rule.Radius}
			continue
		}
		out[i] = region.Override{Center: *rule.Center, Radius: rule.Radius}
	}
	return out, nil
}

// #endregion override-file
