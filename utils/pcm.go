// SPDX-License-Identifier: EPL-2.0

package utils

// PCMScale returns the divisor that maps signed integer PCM of the given bit
// depth to [-1, 1). Unknown depths fall back to 16-bit.
func PCMScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// IntsToFloat32 scales signed integer PCM into dst and returns the number of
// samples written.
func IntsToFloat32(dst []float32, src []int, bitDepth int) int {
	scale := PCMScale(bitDepth)
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(src[i]) / scale
	}

	return n
}
