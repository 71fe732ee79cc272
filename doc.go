// SPDX-License-Identifier: EPL-2.0

// Package noisetonoise converts recorded audio into a normalized "noise
// intensity" sequence: one value in [0, 1] per fixed-length window, plus a
// balance figure saying how much of the recording sits above the midpoint.
//
// # Supported Formats
//
//   - WAV (8/16/24/32-bit PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//
// Only the first channel of multi-channel input is analysed.
//
// # Quick Start
//
//	res, err := noisetonoise.ConvertFile(ctx, "take.wav", noise.DefaultConfig(), nil)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(res.Values), noise.DescribeBalance(res.Balance))
//
// # Packages
//
//   - audio: Source/Decoder interfaces, format registry, Waveform
//   - noise: windowing, normalization, thresholds, curve, balance and the
//     recompute Orchestrator
//   - export: JSON output of a sequence
//   - preset: parameter files
//   - capture: microphone recording
//
// The noisetonoise command under cmd/ wraps all of this in a CLI with
// convert, watch, tune and record subcommands.
package noisetonoise
