// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF files with go-audio/aiff.
//
// 8, 16, 24 and 32-bit PCM is accepted at any sample rate and channel
// count. Samples are scaled to float32 in [-1, 1):
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
// go-audio seeks while parsing, so readers without Seek are buffered in
// memory first. AIFF-C compressed variants are not supported.
package aiff
