// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
)

// maxIdleReads bounds consecutive (0, nil) reads before a stream is treated
// as finished.
const maxIdleReads = 64

// Waveform is a decoded single-channel amplitude buffer.
//
// A Waveform never changes after construction; new input replaces it
// wholesale. Samples returns the backing slice for speed and callers must
// treat it as read-only.
type Waveform struct {
	samples    []float64
	sampleRate int
	duration   float64
}

// NewWaveform copies samples into a Waveform. The duration is derived from
// the sample count and rate.
func NewWaveform(samples []float64, sampleRate int) (*Waveform, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	return NewWaveformWithDuration(samples, sampleRate, float64(len(samples))/float64(sampleRate))
}

// NewWaveformWithDuration is NewWaveform for decoders that report the
// duration separately from the sample count.
func NewWaveformWithDuration(samples []float64, sampleRate int, duration float64) (*Waveform, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		duration = 0
	}

	cp := make([]float64, len(samples))
	copy(cp, samples)

	return &Waveform{
		samples:    cp,
		sampleRate: sampleRate,
		duration:   duration,
	}, nil
}

// WaveformFromFloat32 builds a Waveform from mono float32 PCM, as delivered
// by capture devices.
func WaveformFromFloat32(samples []float32, sampleRate int) (*Waveform, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s)
	}

	return &Waveform{
		samples:    out,
		sampleRate: sampleRate,
		duration:   float64(len(out)) / float64(sampleRate),
	}, nil
}

func (w *Waveform) Samples() []float64 { return w.samples }
func (w *Waveform) Len() int           { return len(w.samples) }
func (w *Waveform) SampleRate() int    { return w.sampleRate }

// Duration in seconds.
func (w *Waveform) Duration() float64 { return w.duration }

// Float32 returns a float32 copy of the samples, e.g. for re-encoding the
// original recording.
func (w *Waveform) Float32() []float32 {
	out := make([]float32, len(w.samples))
	for i, s := range w.samples {
		out[i] = float32(s)
	}

	return out
}

// ReadWaveform drains src and keeps only the given channel.
// src is not closed.
func ReadWaveform(src Source, channel int) (*Waveform, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, src.SampleRate())
	}

	sel, err := NewChannelSelector(src, channel)
	if err != nil {
		return nil, err
	}

	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}
	buf := make([]float32, bufSize)
	samples := make([]float64, 0, bufSize)

	idle := 0
	for {
		n, err := sel.ReadSamples(buf)
		for i := range n {
			samples = append(samples, float64(buf[i]))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n > 0 {
			idle = 0
			continue
		}
		idle++
		if idle >= maxIdleReads {
			break
		}
	}

	return &Waveform{
		samples:    samples,
		sampleRate: src.SampleRate(),
		duration:   float64(len(samples)) / float64(src.SampleRate()),
	}, nil
}
