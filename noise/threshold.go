// SPDX-License-Identifier: EPL-2.0

package noise

// MapThreshold remaps a normalized peak through the floor and ceiling:
// at or below lower is 0, at or above upper is 1, linear in between.
//
// When lower >= upper there is no band to interpolate over. Values at or
// below lower still map to 0 and everything else maps to 1. A value equal
// to lower therefore maps to 0 here, where a plain "n >= lower is 1" rule
// would give 1; this keeps n == lower at 0 in both regimes.
func MapThreshold(n, lower, upper float64) float64 {
	if n <= lower {
		return 0
	}
	if lower >= upper || n >= upper {
		return 1
	}

	return clamp01((n - lower) / (upper - lower))
}
