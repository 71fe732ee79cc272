// SPDX-License-Identifier: EPL-2.0

package noise

import "math"

// Window is a half-open sample range [Start, End).
type Window struct {
	Start int
	End   int
}

// Len is 0 for empty windows.
func (w Window) Len() int {
	return max(w.End-w.Start, 0)
}

// SamplesCount returns how many whole windows of intervalMs fit in duration
// seconds. Anything under one window yields 0.
func SamplesCount(duration float64, intervalMs int) int {
	if intervalMs <= 0 || !(duration > 0) || math.IsInf(duration, 0) {
		return 0
	}

	return int(math.Floor(duration * 1000 / float64(intervalMs)))
}

// WindowAt returns the i-th window for the given interval and sample rate.
// Boundaries use integer arithmetic so adjacent windows share an edge
// exactly. End is capped at total.
func WindowAt(i, intervalMs, sampleRate, total int) Window {
	step := int64(intervalMs) * int64(sampleRate)
	start := int64(i) * step / 1000
	end := int64(i+1) * step / 1000

	return Window{
		Start: int(min(start, int64(total))),
		End:   int(min(end, int64(total))),
	}
}

// WindowPeak is the largest absolute sample in w, 0 for an empty window.
func WindowPeak(samples []float64, w Window) float64 {
	if w.End <= w.Start {
		return 0
	}

	return peak(samples[w.Start:w.End])
}

func peak(samples []float64) float64 {
	var p float64
	for _, s := range samples {
		if a := math.Abs(s); a > p {
			p = a
		}
	}

	return p
}
