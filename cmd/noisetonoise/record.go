// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ik5/noisetonoise/capture"
	"github.com/ik5/noisetonoise/formats/wav"
	"github.com/ik5/noisetonoise/internal/cli"
	"github.com/ik5/noisetonoise/noise"
)

// DefaultRecordingName is where --keep stores the recording.
const DefaultRecordingName = "recorded_audio.wav"

var errNothingRecorded = errors.New("nothing was recorded")

// RecordCmd records from the default input device and converts the take.
type RecordCmd struct {
	Seconds float64 `short:"s" default:"5" help:"Recording length in seconds"`
	Keep    bool    `help:"Also save the recording as 16-bit WAV"`
	Wav     string  `default:"${default_recording}" help:"WAV path used with --keep"`

	Output `embed:""`
}

func (c *RecordCmd) duration() (time.Duration, error) {
	if c.Seconds <= 0 {
		return 0, fmt.Errorf("recording length must be positive, got %v", c.Seconds)
	}

	return time.Duration(c.Seconds * float64(time.Second)), nil
}

func (c *RecordCmd) Run(ctx context.Context, g *Globals, log *slog.Logger) error {
	cfg, err := g.Config()
	if err != nil {
		return err
	}
	d, err := c.duration()
	if err != nil {
		return err
	}

	rec, err := capture.NewRecorder(capture.DefaultSampleRate, capture.DefaultChunkSize)
	if err != nil {
		return err
	}
	defer func() {
		if err := rec.Close(); err != nil {
			log.Warn("closing recorder", "error", err)
		}
	}()

	w := c.summaryWriter()
	fmt.Fprintf(w, "%s %s (ctrl+c stops early)\n", cli.AccentStyle.Render("Recording"), d)

	samples, err := rec.Record(ctx, d)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return errNothingRecorded
	}
	log.Info("recorded", "samples", len(samples), "sample_rate", rec.SampleRate())

	if c.Keep {
		if err := wav.WriteFile(c.Wav, rec.SampleRate(), samples); err != nil {
			return err
		}
		cli.PrintSaved(w, c.Wav)
	}

	wave, err := rec.Waveform(samples)
	if err != nil {
		return err
	}

	// An interrupt only ends the take; still convert what was captured.
	res, err := noise.Run(context.WithoutCancel(ctx), wave, cfg, nil)
	if err != nil {
		return err
	}

	path, err := c.write(os.Stdout, "microphone", cfg, res)
	if err != nil {
		return err
	}

	cli.PrintSummary(w, "microphone", cfg, res)
	if path != "-" {
		cli.PrintSaved(w, path)
	}

	return nil
}
