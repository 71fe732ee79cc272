// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelSelector exposes a single channel of an interleaved Source as a mono
// Source. Other channels are dropped, not mixed.
type ChannelSelector struct {
	src     Source
	channel int
	tmp     []float32
	partial []float32
}

// NewChannelSelector wraps src and keeps only the given channel index.
func NewChannelSelector(src Source, channel int) (*ChannelSelector, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if channel < 0 || channel >= src.Channels() {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidChannel, channel, src.Channels())
	}

	return &ChannelSelector{
		src:     src,
		channel: channel,
		tmp:     make([]float32, 4096),
	}, nil
}

func (c *ChannelSelector) SampleRate() int { return c.src.SampleRate() }
func (c *ChannelSelector) Channels() int   { return 1 }
func (c *ChannelSelector) BufSize() int    { return c.src.BufSize() }
func (c *ChannelSelector) Close() error {
	err := c.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with up to len(dst) frames of the selected channel.
// Samples of a frame the source split across reads are kept for the next call.
func (c *ChannelSelector) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := c.src.Channels()
	if channels == 1 {
		return c.src.ReadSamples(dst)
	}

	samplesNeeded := len(dst) * channels

	// Grow tmp if needed, never shrink.
	if cap(c.tmp) < samplesNeeded {
		c.tmp = make([]float32, max(samplesNeeded, 8192))
	}
	c.tmp = c.tmp[:samplesNeeded]

	carried := copy(c.tmp, c.partial)
	c.partial = c.partial[:0]

	n, err := c.src.ReadSamples(c.tmp[carried:])
	total := carried + n

	frames := total / channels
	for f := range frames {
		dst[f] = c.tmp[f*channels+c.channel]
	}
	c.partial = append(c.partial, c.tmp[frames*channels:total]...)

	return frames, err
}
