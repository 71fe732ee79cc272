// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/ik5/noisetonoise"
	"github.com/ik5/noisetonoise/internal/cli"
	"github.com/ik5/noisetonoise/noise"
)

var errNoPreset = errors.New("watch needs --preset")

// WatchCmd reconverts a file every time the preset changes.
type WatchCmd struct {
	Input string `arg:"" name:"file" type:"existingfile" help:"Audio file (wav, mp3, ogg, aiff)"`

	Output `embed:""`

	Debounce time.Duration `default:"250ms" help:"Quiet period after a preset change before reconverting"`
}

func (c *WatchCmd) Run(ctx context.Context, g *Globals, log *slog.Logger) error {
	if g.Preset == "" {
		return errNoPreset
	}

	wave, err := noisetonoise.LoadFile(c.Input)
	if err != nil {
		return err
	}

	cfg, err := g.Config()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch the directory.
	presetPath := filepath.Clean(g.Preset)
	if err := watcher.Add(filepath.Dir(presetPath)); err != nil {
		return fmt.Errorf("watching %s: %w", presetPath, err)
	}

	ctx, cancel := context.WithCancel(ctx)

	results := make(chan noise.Outcome, 1)
	orch := noise.NewOrchestrator(
		noise.WithDebounce(c.Debounce),
		noise.WithLogger(log),
		noise.WithOnResult(func(o noise.Outcome) {
			select {
			case results <- o:
			case <-ctx.Done():
			}
		}),
	)
	defer func() {
		cancel()
		orch.Close()
	}()

	current := cfg
	pending := orch.Schedule(wave, current)
	log.Info("watching preset", "preset", presetPath, "file", c.Input)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != presetPath || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			next, err := g.Config()
			if err != nil {
				log.Warn("ignoring preset change", "preset", presetPath, "error", err)
				continue
			}
			if next == current {
				continue
			}
			current = next
			pending = orch.Schedule(wave, current)
			log.Debug("preset changed", "request", pending, "config", current)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "error", err)

		case o := <-results:
			if o.Request != pending {
				continue
			}
			if o.Err != nil {
				log.Warn("conversion failed", "request", o.Request, "error", o.Err)
				continue
			}

			path, err := c.write(os.Stdout, c.Input, current, o.Result)
			if err != nil {
				return err
			}
			w := c.summaryWriter()
			cli.PrintSummary(w, c.Input, current, o.Result)
			if path != "-" {
				cli.PrintSaved(w, path)
			}
		}
	}
}
