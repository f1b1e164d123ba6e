package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/verisafe/shield/go-monitor/internal/region"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string                  `json:"description"`
	ObsLower    []float64               `json:"obs_lower"`
	ObsUpper    []float64               `json:"obs_upper"`
	Overrides   map[int]FixtureOverride `json:"overrides"`
	Selector    string                  `json:"selector"`
	Samples     []FixtureSample         `json:"samples"`
}

// FixtureOverride mirrors region.Override with JSON tags. A null
// center pins the rule to the box midpoint.
type FixtureOverride struct {
	Center *float64 `json:"center"`
	Radius float64  `json:"radius"`
}

// FixtureSample is one recorded state with its expected labels.
type FixtureSample struct {
	Index  int       `json:"index"`
	State  []float64 `json:"state"`
	Safe   bool      `json:"safe"`
	Unsafe bool      `json:"unsafe"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToOverrides converts the fixture table to a domain override table.
func (f *Fixture) ToOverrides() region.Overrides {
	out := make(region.Overrides, len(f.Overrides))
	for i, rule := range f.Overrides {
		if rule.Center == nil {
			out[i] = region.Override{AtMidpoint: true, Radius: rule.Radius}
			continue
		}
		out[i] = region.Override{Center: *rule.Center, Radius: rule.Radius}
	}
	return out
}

// ToEnvelope builds the envelope the fixture's samples are judged
// against.
func (f *Fixture) ToEnvelope() (*region.Envelope, error) {
	return region.NewEnvelope(f.ObsLower, f.ObsUpper, f.ToOverrides())
}

// ToSamples converts the fixture samples to domain samples.
func (f *Fixture) ToSamples() []Sample {
	samples := make([]Sample, 0, len(f.Samples))
	for _, fs := range f.Samples {
		samples = append(samples, Sample{
			Index:  fs.Index,
			State:  fs.State,
			Safe:   fs.Safe,
			Unsafe: fs.Unsafe,
		})
	}
	return samples
}

// ToSelector resolves the fixture's region selector, defaulting to the
// original copy.
func (f *Fixture) ToSelector() (region.Selector, error) {
	if f.Selector == "" {
		return region.SelectOriginal, nil
	}
	return region.ParseSelector(f.Selector)
}

// #endregion fixture-loader
