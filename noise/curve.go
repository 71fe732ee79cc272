// SPDX-License-Identifier: EPL-2.0

package noise

import "math"

// ApplyCurve raises v to 1/strength. The endpoints 0 and 1 are fixed
// points; strength must be positive (Config.Validate enforces this).
func ApplyCurve(v, strength float64) float64 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 1
	case strength == 1:
		return v
	}

	return math.Pow(v, 1/strength)
}

// Shape runs one window peak through normalization, thresholds and curve.
func Shape(windowPeak, globalPeak float64, cfg Config) float64 {
	n := Normalize(windowPeak, globalPeak)
	m := MapThreshold(n, cfg.LowerThreshold, cfg.UpperThreshold)

	return ApplyCurve(m, cfg.CurveStrength)
}
