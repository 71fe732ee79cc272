// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"context"
	"fmt"

	"github.com/ik5/noisetonoise/audio"
)

// Result is one complete run.
type Result struct {
	Values  []float64 `json:"values"`
	Balance float64   `json:"balance"`
}

// ProgressFunc receives the completed fraction of a run in (0, 1].
type ProgressFunc func(fraction float64)

// Run converts w into a noise sequence under cfg.
//
// progress, if non-nil, is called after every window with a non-decreasing
// fraction ending at exactly 1. A run too short for one window reports 1
// once and returns an empty sequence. ctx is checked between windows.
func Run(ctx context.Context, w *audio.Waveform, cfg Config, progress ProgressFunc) (Result, error) {
	if w == nil {
		return Result{}, ErrNoWaveform
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if progress == nil {
		progress = func(float64) {}
	}

	count := SamplesCount(w.Duration(), cfg.IntervalMs)
	if count == 0 {
		progress(1)
		return Result{Values: []float64{}}, nil
	}

	samples := w.Samples()
	globalPeak := GlobalPeak(samples)
	values := make([]float64, count)

	for i := range count {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("noise run stopped at window %d/%d: %w", i, count, err)
		}

		win := WindowAt(i, cfg.IntervalMs, w.SampleRate(), len(samples))
		values[i] = Shape(WindowPeak(samples, win), globalPeak, cfg)

		progress(float64(i+1) / float64(count))
	}

	return Result{
		Values:  values,
		Balance: Balance(values),
	}, nil
}
