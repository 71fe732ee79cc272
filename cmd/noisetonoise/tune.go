// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ik5/noisetonoise"
	"github.com/ik5/noisetonoise/internal/ui"
	"github.com/ik5/noisetonoise/noise"
)

// TuneCmd opens the interactive tuner.
type TuneCmd struct {
	Input string `arg:"" name:"file" type:"existingfile" help:"Audio file (wav, mp3, ogg, aiff)"`
	Save  string `short:"o" default:"${default_output}" help:"File the s key writes values to"`

	Debounce time.Duration `default:"100ms" help:"Quiet period after a change before recomputing"`
}

// programSender forwards to the program, holding messages back until it
// has been attached.
type programSender struct {
	p     *tea.Program
	ready chan struct{}
}

func newProgramSender() *programSender {
	return &programSender{ready: make(chan struct{})}
}

func (s *programSender) attach(p *tea.Program) {
	s.p = p
	close(s.ready)
}

func (s *programSender) Send(msg any) {
	<-s.ready
	s.p.Send(msg)
}

func (c *TuneCmd) Run(ctx context.Context, g *Globals, log *slog.Logger) error {
	cfg, err := g.Config()
	if err != nil {
		return err
	}

	wave, err := noisetonoise.LoadFile(c.Input)
	if err != nil {
		return err
	}

	sender := newProgramSender()
	orch := noise.NewOrchestrator(
		noise.WithDebounce(c.Debounce),
		noise.WithLogger(log),
		noise.WithProgress(ui.ProgressFunc(sender)),
		noise.WithOnResult(ui.ResultFunc(sender)),
	)
	defer orch.Close()

	model := ui.NewModel(c.Input, wave, cfg, orch)
	if c.Save != "" {
		model.OutputPath = c.Save
	}
	model.PresetPath = g.Preset

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	sender.attach(p)

	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("UI error: %w", err)
	}

	if m, ok := final.(ui.Model); ok {
		log.Info("tuner closed", "config", m.Config, "request", m.Pending)
	}

	return nil
}
