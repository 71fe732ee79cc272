// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files using go-audio/wav.
//
// Decoder accepts integer PCM at 8, 16, 24 and 32 bits with any number of
// channels. Samples come out as float32 in [-1, 1). 8-bit data is unsigned
// on disk and is re-centred before scaling.
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrOnlyPCMSupported) {
//	    // float or compressed WAV
//	}
//
// go-audio needs to seek between chunks. Readers that cannot seek are
// buffered in memory first.
//
// Encode and WriteFile store mono float samples as 16-bit PCM, which is what
// the record command keeps on disk:
//
//	err := wav.WriteFile("take.wav", 16000, samples)
package wav
