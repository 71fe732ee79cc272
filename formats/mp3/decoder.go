// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/noisetonoise/audio"
	"github.com/ik5/noisetonoise/utils"
)

// go-mp3 always emits interleaved stereo, 16-bit little-endian.
const (
	outputChannels = 2
	bytesPerSample = 2
	defaultBufSize = 4096
)

// mp3Reader is the part of gomp3.Decoder the source needs.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	channels   int
	buf        []byte
	// pending holds a sample split across two Read calls.
	pending    [bytesPerSample]byte
	hasPending bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int {
	if n := cap(s.buf) / bytesPerSample; n > 0 {
		return n
	}
	return defaultBufSize
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * bytesPerSample
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	off := 0
	if s.hasPending {
		s.buf[0] = s.pending[0]
		off = 1
	}

	m, err := s.dec.Read(s.buf[off:])
	total := off + m
	samples := total / bytesPerSample

	s.hasPending = total%bytesPerSample == 1
	if s.hasPending {
		s.pending[0] = s.buf[total-1]
	}

	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[i*bytesPerSample:]))) / utils.PCMScale(16)
	}

	switch {
	case err == io.EOF:
		return samples, io.EOF
	case err != nil:
		return samples, fmt.Errorf("decoding mp3 frame: %w", err)
	}

	return samples, nil
}

// Decoder decodes MPEG-1/2 Layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   outputChannels,
		buf:        make([]byte, defaultBufSize*bytesPerSample),
	}, nil
}
