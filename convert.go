// SPDX-License-Identifier: EPL-2.0

package noisetonoise

import (
	"context"
	"fmt"

	"github.com/ik5/noisetonoise/audio"
	"github.com/ik5/noisetonoise/formats/aiff"
	"github.com/ik5/noisetonoise/formats/mp3"
	"github.com/ik5/noisetonoise/formats/vorbis"
	"github.com/ik5/noisetonoise/formats/wav"
	"github.com/ik5/noisetonoise/noise"
)

// AnalysedChannel is the channel every convenience function keeps.
// Other channels are dropped, never mixed in.
const AnalysedChannel = 0

// DefaultRegistry returns a registry with every bundled decoder:
// wav, mp3, ogg/oga and aiff/aif.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// LoadFile decodes path into a Waveform using DefaultRegistry.
func LoadFile(path string) (*audio.Waveform, error) {
	return audio.DecodeFile(DefaultRegistry(), path, AnalysedChannel)
}

// ConvertSource drains src and runs the noise pipeline over it.
// src is not closed.
//
//	src, _ := wav.Decoder{}.Decode(file)
//	res, err := noisetonoise.ConvertSource(ctx, src, noise.DefaultConfig(), nil)
func ConvertSource(ctx context.Context, src audio.Source, cfg noise.Config, progress noise.ProgressFunc) (noise.Result, error) {
	if err := cfg.Validate(); err != nil {
		return noise.Result{}, err
	}

	w, err := audio.ReadWaveform(src, AnalysedChannel)
	if err != nil {
		return noise.Result{}, fmt.Errorf("loading waveform: %w", err)
	}

	return noise.Run(ctx, w, cfg, progress)
}

// ConvertFile decodes path and runs the noise pipeline over it.
func ConvertFile(ctx context.Context, path string, cfg noise.Config, progress noise.ProgressFunc) (noise.Result, error) {
	if err := cfg.Validate(); err != nil {
		return noise.Result{}, err
	}

	w, err := LoadFile(path)
	if err != nil {
		return noise.Result{}, err
	}

	return noise.Run(ctx, w, cfg, progress)
}
