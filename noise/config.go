// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"fmt"
	"math"
)

// Parameter ranges accepted by Validate.
const (
	MinIntervalMs = 1
	MaxIntervalMs = 1000

	MinCurveStrength = 0.1
	MaxCurveStrength = 10

	// MinSliderFloor is the smallest lower threshold the log slider can
	// reach (slider position 0).
	MinSliderFloor = 1e-5
)

// Config holds the four pipeline parameters.
type Config struct {
	// IntervalMs is the window length in milliseconds.
	IntervalMs int `json:"interval_ms"`

	// LowerThreshold is the noise floor. Normalized peaks at or below it map to 0.
	LowerThreshold float64 `json:"lower_threshold"`

	// UpperThreshold is the ceiling. Normalized peaks at or above it map to 1.
	UpperThreshold float64 `json:"upper_threshold"`

	// CurveStrength reshapes mapped values as v^(1/CurveStrength).
	// Values above 1 lift quiet sections, values below 1 suppress them.
	CurveStrength float64 `json:"curve_strength"`
}

// DefaultConfig returns the parameters the interactive tuner starts from.
func DefaultConfig() Config {
	return Config{
		IntervalMs:     100,
		LowerThreshold: MinSliderFloor,
		UpperThreshold: 1,
		CurveStrength:  2,
	}
}

// Validate reports the first out-of-range parameter wrapped in
// ErrInvalidConfig. LowerThreshold >= UpperThreshold is allowed; see
// MapThreshold for how that case maps.
func (c Config) Validate() error {
	if c.IntervalMs < MinIntervalMs || c.IntervalMs > MaxIntervalMs {
		return fmt.Errorf("%w: interval %dms outside [%d, %d]",
			ErrInvalidConfig, c.IntervalMs, MinIntervalMs, MaxIntervalMs)
	}
	if !inRange(c.LowerThreshold, 0, 1) {
		return fmt.Errorf("%w: lower threshold %v outside [0, 1]", ErrInvalidConfig, c.LowerThreshold)
	}
	if !inRange(c.UpperThreshold, 0, 1) {
		return fmt.Errorf("%w: upper threshold %v outside [0, 1]", ErrInvalidConfig, c.UpperThreshold)
	}
	if !inRange(c.CurveStrength, MinCurveStrength, MaxCurveStrength) {
		return fmt.Errorf("%w: curve strength %v outside [%v, %v]",
			ErrInvalidConfig, c.CurveStrength, MinCurveStrength, MaxCurveStrength)
	}

	return nil
}

// NaN fails both comparisons.
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// LowerThresholdFromSlider maps a log slider position in [0, 1] to a floor
// in [1e-5, 1].
func LowerThresholdFromSlider(pos float64) float64 {
	pos = clamp01(pos)
	return math.Pow(10, 5*pos-5)
}

// LowerThresholdToSlider is the inverse of LowerThresholdFromSlider.
// Floors below 1e-5 (including 0) pin the slider at 0.
func LowerThresholdToSlider(lower float64) float64 {
	if !(lower > MinSliderFloor) {
		return 0
	}

	return clamp01((math.Log10(lower) + 5) / 5)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}

	return v
}
