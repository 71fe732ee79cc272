// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/noisetonoise/internal/audiotest"
)

func TestChannelSelector_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 100, 0.5)
	sel, err := NewChannelSelector(src, 0)
	if err != nil {
		t.Fatalf("NewChannelSelector() error = %v", err)
	}

	if sel.Channels() != 1 {
		t.Errorf("ChannelSelector.Channels() = %d, want 1", sel.Channels())
	}

	buf := make([]float32, 10)
	n, err := sel.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}

	for i := range n {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestChannelSelector_PicksChannel(t *testing.T) {
	t.Parallel()

	// 4-channel source: channel c carries c/10
	newSrc := func() *audiotest.MockSource {
		return audiotest.NewMockSource(8000, 4, 100, func(sample int, channel int) float32 {
			return float32(channel) / 10.0
		})
	}

	for ch := range 4 {
		sel, err := NewChannelSelector(newSrc(), ch)
		if err != nil {
			t.Fatalf("NewChannelSelector(%d) error = %v", ch, err)
		}

		buf := make([]float32, 10)
		n, err := sel.ReadSamples(buf)
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
		if n != 10 {
			t.Fatalf("ReadSamples() n = %d, want 10", n)
		}

		want := float32(ch) / 10.0
		for i := range n {
			if buf[i] != want {
				t.Errorf("channel %d: buf[%d] = %v, want %v (no mixing)", ch, i, buf[i], want)
			}
		}
	}
}

func TestChannelSelector_InvalidChannel(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 10)

	for _, ch := range []int{-1, 2, 7} {
		if _, err := NewChannelSelector(src, ch); !errors.Is(err, ErrInvalidChannel) {
			t.Errorf("NewChannelSelector(%d) error = %v, want ErrInvalidChannel", ch, err)
		}
	}

	if _, err := NewChannelSelector(nil, 0); !errors.Is(err, ErrNilSource) {
		t.Errorf("NewChannelSelector(nil) error = %v, want ErrNilSource", err)
	}
}

func TestChannelSelector_EOF(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 5)
	sel, _ := NewChannelSelector(src, 1)

	buf := make([]float32, 10)
	n, err := sel.ReadSamples(buf)

	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	if n != 5 {
		t.Errorf("ReadSamples() n = %d, want 5", n)
	}

	n, err = sel.ReadSamples(buf)
	if err != io.EOF {
		t.Errorf("Second ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 0 {
		t.Errorf("Second ReadSamples() n = %d, want 0", n)
	}
}

func TestChannelSelector_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 100)
	sel, _ := NewChannelSelector(src, 0)

	n, err := sel.ReadSamples(nil)
	if err != nil {
		t.Errorf("ReadSamples() with empty buffer error = %v, want nil", err)
	}

	if n != 0 {
		t.Errorf("ReadSamples() with empty buffer n = %d, want 0", n)
	}
}

func TestChannelSelector_PreservesMetadata(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 2, 100)
	sel, _ := NewChannelSelector(src, 0)

	if sel.SampleRate() != 44100 {
		t.Errorf("ChannelSelector.SampleRate() = %d, want 44100", sel.SampleRate())
	}

	if sel.BufSize() != src.BufSize() {
		t.Errorf("ChannelSelector.BufSize() = %d, want %d", sel.BufSize(), src.BufSize())
	}

	if err := sel.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the wrapped source")
	}
}

// BenchmarkChannelSelector_Stereo benchmarks picking the left channel of stereo input
func BenchmarkChannelSelector_Stereo(b *testing.B) {
	src := audiotest.NewSineSource(8000, 2, 100000, 440.0)
	sel, _ := NewChannelSelector(src, 0)
	buf := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		src.Reset()
		for {
			_, err := sel.ReadSamples(buf)
			if err == io.EOF {
				break
			}
		}
	}
}

// splitFrameSource hands out interleaved data a fixed number of values at a
// time, regardless of frame boundaries.
type splitFrameSource struct {
	data     []float32
	channels int
	step     int
	pos      int
}

func (s *splitFrameSource) SampleRate() int { return 8000 }
func (s *splitFrameSource) Channels() int   { return s.channels }
func (s *splitFrameSource) BufSize() int    { return 16 }
func (s *splitFrameSource) Close() error    { return nil }

func (s *splitFrameSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	n := copy(dst[:min(len(dst), s.step)], s.data[s.pos:])
	s.pos += n

	return n, nil
}

func TestChannelSelector_FrameSplitAcrossReads(t *testing.T) {
	t.Parallel()

	const frames = 50

	tests := []struct {
		name     string
		channels int
		channel  int
		step     int
	}{
		{name: "stereo odd reads", channels: 2, channel: 0, step: 3},
		{name: "stereo right", channels: 2, channel: 1, step: 5},
		{name: "three channels", channels: 3, channel: 2, step: 4},
		{name: "single value reads", channels: 2, channel: 1, step: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// frame f carries f on the selected channel, -1 elsewhere
			data := make([]float32, 0, frames*tt.channels)
			for f := range frames {
				for ch := range tt.channels {
					v := float32(-1)
					if ch == tt.channel {
						v = float32(f)
					}
					data = append(data, v)
				}
			}

			sel, err := NewChannelSelector(&splitFrameSource{data: data, channels: tt.channels, step: tt.step}, tt.channel)
			if err != nil {
				t.Fatalf("NewChannelSelector() error = %v", err)
			}

			var got []float32
			buf := make([]float32, 2)
			for range 10 * frames * tt.channels {
				n, err := sel.ReadSamples(buf)
				got = append(got, buf[:n]...)
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					t.Fatalf("ReadSamples() error = %v", err)
				}
			}

			if len(got) != frames {
				t.Fatalf("read %d frames, want %d", len(got), frames)
			}
			for f, v := range got {
				if v != float32(f) {
					t.Fatalf("frame %d = %v, want %v", f, v, float32(f))
				}
			}
		})
	}
}
