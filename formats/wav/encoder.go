// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/noisetonoise/audio"
	"github.com/ik5/noisetonoise/utils"
)

const encodeBitDepth = 16

// Encode writes mono float PCM as a 16-bit PCM WAV stream. Samples outside
// [-1, 1] are clipped.
func Encode(w io.WriteSeeker, sampleRate int, samples []float32) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, sampleRate)
	}

	enc := wav.NewEncoder(w, sampleRate, encodeBitDepth, 1, formatPCM)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           utils.Float32sToInts(samples),
		SourceBitDepth: encodeBitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}

// WriteFile creates path and encodes samples into it.
func WriteFile(path string, sampleRate int, samples []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating wav file: %w", err)
	}

	if err := Encode(f, sampleRate, samples); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
