// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/ik5/noisetonoise"
	"github.com/ik5/noisetonoise/internal/cli"
	"github.com/ik5/noisetonoise/noise"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// ConvertCmd converts one file.
type ConvertCmd struct {
	Input string `arg:"" name:"file" type:"existingfile" help:"Audio file (wav, mp3, ogg, aiff)"`

	Output `embed:""`

	NoProgress bool `help:"Do not draw a progress bar"`
	Quiet      bool `short:"q" help:"Do not print the summary"`
}

func (c *ConvertCmd) Run(ctx context.Context, g *Globals, log *slog.Logger) error {
	cfg, err := g.Config()
	if err != nil {
		return err
	}

	log.Info("converting", "file", c.Input, "interval_ms", cfg.IntervalMs,
		"lower", cfg.LowerThreshold, "upper", cfg.UpperThreshold, "curve", cfg.CurveStrength)

	var bar *progressBar
	var progress noise.ProgressFunc
	if !c.NoProgress {
		bar = newProgressBar(os.Stderr, "Converting ")
		progress = bar.set
	}

	start := time.Now()
	res, err := noisetonoise.ConvertFile(ctx, c.Input, cfg, progress)
	bar.finish(err)
	if err != nil {
		return err
	}

	path, err := c.write(os.Stdout, c.Input, cfg, res)
	if err != nil {
		return err
	}

	log.Info("converted", "file", c.Input, "windows", len(res.Values),
		"balance", res.Balance, "output", path, "took", time.Since(start))

	if !c.Quiet {
		w := c.summaryWriter()
		cli.PrintSummary(w, c.Input, cfg, res)
		if path != "-" {
			cli.PrintSaved(w, path)
		}
	}

	return nil
}

// progressBar adapts an mpb bar to noise.ProgressFunc. A nil bar does
// nothing.
type progressBar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

func newProgressBar(w io.Writer, name string) *progressBar {
	p := mpb.New(mpb.WithOutput(w), mpb.WithWidth(48))
	bar := p.AddBar(100,
		mpb.PrependDecorators(decor.Name(name)),
		mpb.AppendDecorators(decor.Percentage()),
	)

	return &progressBar{p: p, bar: bar}
}

func (b *progressBar) set(fraction float64) {
	b.bar.SetCurrent(int64(noise.Percent(fraction)))
}

func (b *progressBar) finish(err error) {
	if b == nil {
		return
	}
	if err != nil {
		b.bar.Abort(false)
	} else {
		b.bar.SetTotal(100, true)
	}
	b.p.Wait()
}
