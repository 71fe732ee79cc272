// SPDX-License-Identifier: EPL-2.0

// Package preset loads and saves noise parameters as JSON files.
//
// Every field is optional; missing fields keep the value underneath:
//
//	{
//	  "interval_ms": 50,
//	  "floor_slider": 0.4,
//	  "curve_strength": 1.5
//	}
//
// floor_slider is the logarithmic slider position in [0, 1]. When both
// floor_slider and lower_threshold are set, lower_threshold wins.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/noisetonoise/noise"
)

var ErrInvalidPreset = errors.New("invalid preset")

// File is the JSON schema for presets.
type File struct {
	IntervalMs     *int     `json:"interval_ms,omitempty"`
	LowerThreshold *float64 `json:"lower_threshold,omitempty"`
	FloorSlider    *float64 `json:"floor_slider,omitempty"`
	UpperThreshold *float64 `json:"upper_threshold,omitempty"`
	CurveStrength  *float64 `json:"curve_strength,omitempty"`
}

// LoadJSON reads path and applies it on top of noise.DefaultConfig.
func LoadJSON(path string) (noise.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return noise.Config{}, fmt.Errorf("opening preset: %w", err)
	}
	defer f.Close()

	cfg := noise.DefaultConfig()
	if err := Decode(f, &cfg); err != nil {
		return noise.Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Decode parses a preset from r and applies it onto dst. Unknown fields are
// rejected so typos do not silently fall back to defaults.
func Decode(r io.Reader, dst *noise.Config) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var f File
	if err := dec.Decode(&f); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}

	return ApplyFile(dst, &f)
}

// ApplyFile applies a parsed preset onto dst. dst is left untouched when
// the merged result does not validate.
func ApplyFile(dst *noise.Config, f *File) error {
	if dst == nil {
		return fmt.Errorf("%w: nil destination config", ErrInvalidPreset)
	}
	if f == nil {
		return nil
	}

	cfg := *dst
	if f.IntervalMs != nil {
		cfg.IntervalMs = *f.IntervalMs
	}
	if f.FloorSlider != nil {
		pos := *f.FloorSlider
		if pos < 0 || pos > 1 {
			return fmt.Errorf("%w: floor_slider must be in [0,1]", ErrInvalidPreset)
		}
		cfg.LowerThreshold = noise.LowerThresholdFromSlider(pos)
	}
	if f.LowerThreshold != nil {
		cfg.LowerThreshold = *f.LowerThreshold
	}
	if f.UpperThreshold != nil {
		cfg.UpperThreshold = *f.UpperThreshold
	}
	if f.CurveStrength != nil {
		cfg.CurveStrength = *f.CurveStrength
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}

	*dst = cfg
	return nil
}

// FromConfig returns a File with every field set from cfg.
func FromConfig(cfg noise.Config) File {
	return File{
		IntervalMs:     &cfg.IntervalMs,
		LowerThreshold: &cfg.LowerThreshold,
		UpperThreshold: &cfg.UpperThreshold,
		CurveStrength:  &cfg.CurveStrength,
	}
}

// SaveJSON writes cfg to path as an indented preset.
func SaveJSON(path string, cfg noise.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	b, err := json.MarshalIndent(FromConfig(cfg), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding preset: %w", err)
	}

	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing preset: %w", err)
	}

	return nil
}
