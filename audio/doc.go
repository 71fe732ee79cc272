// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoding side of the noise pipeline.
//
// This package contains the building blocks that turn encoded audio into a
// Waveform the noise package can analyse:
//   - Source interface for streamed PCM input
//   - Decoder interface and a Registry keyed by file extension
//   - ChannelSelector that keeps a single channel of interleaved input
//   - Waveform, an immutable single-channel float64 buffer
//
// # Source Interface
//
// The Source interface is the foundation of audio decoding:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Every decoder under formats/ returns a Source.
//
// # Channels
//
// Only one channel is analysed. Channels are never mixed; ChannelSelector
// drops every channel except the requested one:
//
//	left, _ := audio.NewChannelSelector(source, 0)
//	buf := make([]float32, 4096)
//	n, err := left.ReadSamples(buf)
//
// # Waveforms
//
// ReadWaveform drains a Source into a Waveform:
//
//	w, err := audio.ReadWaveform(source, 0)
//	fmt.Println(w.SampleRate(), w.Duration())
//
// A Waveform is never mutated after it is built. New input produces a new
// Waveform.
//
// # Format Registry
//
// The registry maps extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	w, err := audio.DecodeFile(registry, "take1.wav", 0)
//
// # Error Handling
//
// Sources return io.EOF when no more data is available. Decode failures are
// wrapped and returned to the caller; nothing is retried.
package audio
