// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with jfreymuth/oggvorbis.
//
// Samples are already float32 in [-1, 1] and are copied straight into the
// caller's buffer. Reads always return whole frames; a destination shorter
// than one frame reads nothing.
//
//	src, err := vorbis.Decoder{}.Decode(file)
package vorbis
