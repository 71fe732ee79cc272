// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"testing"

	"github.com/ik5/noisetonoise/audio"
)

func mustWaveform(t testing.TB, samples []float64, rate int) *audio.Waveform {
	t.Helper()

	w, err := audio.NewWaveform(samples, rate)
	if err != nil {
		t.Fatalf("NewWaveform() error = %v", err)
	}
	return w
}

// linearConfig disables thresholds and curve so values equal normalized peaks.
func linearConfig(intervalMs int) Config {
	return Config{IntervalMs: intervalMs, LowerThreshold: 0, UpperThreshold: 1, CurveStrength: 1}
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
