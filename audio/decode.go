// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"os"
)

// Decode runs dec over r and collects the given channel into a Waveform.
// Any failure is terminal for this input.
func Decode(dec Decoder, r io.Reader, channel int) (*Waveform, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding audio: %w", err)
	}
	defer src.Close()

	return ReadWaveform(src, channel)
}

// DecodeFile opens path, picks a decoder from its extension and decodes it.
func DecodeFile(reg *Registry, path string, channel int) (*Waveform, error) {
	dec, err := reg.ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio file: %w", err)
	}
	defer f.Close()

	w, err := Decode(dec, f, channel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return w, nil
}
