// SPDX-License-Identifier: EPL-2.0

package noise

// GlobalPeak is the largest absolute sample of the whole buffer.
func GlobalPeak(samples []float64) float64 {
	return peak(samples)
}

// Normalize scales a window peak against the global peak. Silence
// (globalPeak == 0) yields 0 rather than NaN.
func Normalize(windowPeak, globalPeak float64) float64 {
	if globalPeak <= 0 {
		return 0
	}

	return windowPeak / globalPeak
}
