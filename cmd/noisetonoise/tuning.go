// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/ik5/noisetonoise/noise"
	"github.com/ik5/noisetonoise/preset"
)

// Tuning holds the pipeline parameter flags. Unset flags fall back to the
// preset file, then to noise.DefaultConfig.
type Tuning struct {
	Preset      string   `short:"p" type:"path" help:"JSON preset with pipeline parameters"`
	Interval    *int     `short:"i" help:"Window length in ms (1-1000)"`
	Floor       *float64 `help:"Lower threshold (0-1)" xor:"floor"`
	FloorSlider *float64 `help:"Lower threshold as a log slider position (0-1)" xor:"floor"`
	Ceiling     *float64 `help:"Upper threshold (0-1)"`
	Curve       *float64 `help:"Curve strength (0.1-10)"`
}

// Config merges the preset and flags and validates the result.
func (t Tuning) Config() (noise.Config, error) {
	cfg := noise.DefaultConfig()
	if t.Preset != "" {
		var err error
		if cfg, err = preset.LoadJSON(t.Preset); err != nil {
			return noise.Config{}, err
		}
	}

	return t.apply(cfg)
}

// apply overrides cfg with the flags that were set.
func (t Tuning) apply(cfg noise.Config) (noise.Config, error) {
	if t.Interval != nil {
		cfg.IntervalMs = *t.Interval
	}
	if t.FloorSlider != nil {
		cfg.LowerThreshold = noise.LowerThresholdFromSlider(*t.FloorSlider)
	}
	if t.Floor != nil {
		cfg.LowerThreshold = *t.Floor
	}
	if t.Ceiling != nil {
		cfg.UpperThreshold = *t.Ceiling
	}
	if t.Curve != nil {
		cfg.CurveStrength = *t.Curve
	}

	if err := cfg.Validate(); err != nil {
		return noise.Config{}, fmt.Errorf("parameters: %w", err)
	}

	return cfg, nil
}
