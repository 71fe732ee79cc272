// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Silence returns n zero samples.
func Silence(n int) []float64 {
	return make([]float64, n)
}

// Constant returns n samples of value v.
func Constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Square returns a full-scale square wave that flips sign every half period.
// Every window longer than one sample peaks at amplitude.
func Square(n, period int, amplitude float64) []float64 {
	if period < 2 {
		period = 2
	}
	out := make([]float64, n)
	for i := range out {
		if (i/(period/2))%2 == 0 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out
}

// Sine returns n samples of a sine at freq Hz sampled at rate.
func Sine(n, rate int, freq, amplitude float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
	}
	return out
}

// Steps builds a signal made of equal-length blocks, one per level; within a
// block the samples alternate between +level and -level.
func Steps(blockLen int, levels ...float64) []float64 {
	out := make([]float64, 0, blockLen*len(levels))
	for _, lvl := range levels {
		for i := range blockLen {
			if i%2 == 0 {
				out = append(out, lvl)
			} else {
				out = append(out, -lvl)
			}
		}
	}
	return out
}
