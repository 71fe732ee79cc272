// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams with hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved stereo 16-bit PCM regardless of the
// source channel mode, so every Source from this package reports two
// channels. Samples are scaled to float32 in [-1, 1).
//
//	src, err := mp3.Decoder{}.Decode(file)
//
// A sample split across two decoder reads is carried over to the next
// ReadSamples call.
package mp3
