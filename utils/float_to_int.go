// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to the int16 range.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 from overflowing
	return int16(x * 32767.0)
}

// Float32sToInts converts float PCM to int16-ranged ints, the layout
// go-audio encoders expect.
func Float32sToInts(src []float32) []int {
	out := make([]int, len(src))
	for i, v := range src {
		out[i] = int(Float32ToInt16(v))
	}

	return out
}
