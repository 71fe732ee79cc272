// SPDX-License-Identifier: EPL-2.0

// Package ui provides the Bubbletea tuner for noisetonoise.
package ui

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ik5/noisetonoise/audio"
	"github.com/ik5/noisetonoise/export"
	"github.com/ik5/noisetonoise/noise"
	"github.com/ik5/noisetonoise/preset"
)

// Scheduler queues a recompute and returns its request id.
type Scheduler interface {
	Schedule(w *audio.Waveform, cfg noise.Config) uint64
}

// Param identifies the tunable row under the cursor.
type Param int

const (
	ParamInterval Param = iota
	ParamFloor
	ParamCeiling
	ParamCurve
	paramCount
)

func (p Param) String() string {
	switch p {
	case ParamInterval:
		return "Interval"
	case ParamFloor:
		return "Floor"
	case ParamCeiling:
		return "Ceiling"
	case ParamCurve:
		return "Curve"
	default:
		return fmt.Sprintf("Param(%d)", int(p))
	}
}

// Step sizes for one key press.
const (
	intervalStep = 10
	sliderStep   = 0.05
	ceilingStep  = 0.05
	curveStep    = 0.1
)

// Model is the tuner state. Every parameter change schedules a recompute;
// only messages for the newest request are applied.
type Model struct {
	Source string
	Config noise.Config

	// OutputPath is where "s" writes the values, PresetPath where "p"
	// writes the parameters. An empty PresetPath disables "p".
	OutputPath string
	PresetPath string

	Cursor  Param
	Pending uint64
	Percent int

	Result    noise.Result
	HasResult bool
	Err       error
	Status    string

	Width  int
	Height int

	wave  *audio.Waveform
	sched Scheduler
}

// NewModel schedules the first run for cfg and returns the tuner.
func NewModel(source string, w *audio.Waveform, cfg noise.Config, sched Scheduler) Model {
	m := Model{
		Source:     source,
		Config:     cfg,
		OutputPath: export.DefaultFileName,
		wave:       w,
		sched:      sched,
	}
	m.Pending = sched.Schedule(w, cfg)

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case ProgressMsg:
		if msg.Request == m.Pending {
			m.Percent = msg.Percent
		}

	case ResultMsg:
		if msg.Request != m.Pending {
			return m, nil
		}
		m.Percent = 100
		m.Err = msg.Err
		if msg.Err == nil {
			m.Result = msg.Result
			m.HasResult = true
		}

	case SavedMsg:
		if msg.Err != nil {
			m.Status = "save failed: " + msg.Err.Error()
		} else {
			m.Status = "saved " + msg.Path
		}
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.Cursor = (m.Cursor + paramCount - 1) % paramCount
	case "down", "j":
		m.Cursor = (m.Cursor + 1) % paramCount
	case "left", "h", "-":
		return m.adjust(-1), nil
	case "right", "l", "+", "=":
		return m.adjust(1), nil
	case "r":
		m.Config = noise.DefaultConfig()
		return m.reschedule(), nil
	case "s":
		if !m.HasResult {
			m.Status = "nothing to save yet"
			return m, nil
		}
		return m, saveValues(m.OutputPath, m.Result.Values)
	case "p":
		if m.PresetPath == "" {
			m.Status = "no preset file"
			return m, nil
		}
		return m, savePreset(m.PresetPath, m.Config)
	}

	return m, nil
}

// adjust moves the parameter under the cursor by dir steps, clamped to the
// range Validate accepts.
func (m Model) adjust(dir int) Model {
	cfg := m.Config
	d := float64(dir)

	switch m.Cursor {
	case ParamInterval:
		cfg.IntervalMs = min(max(cfg.IntervalMs+dir*intervalStep, noise.MinIntervalMs), noise.MaxIntervalMs)
	case ParamFloor:
		pos := noise.LowerThresholdToSlider(cfg.LowerThreshold) + d*sliderStep
		cfg.LowerThreshold = noise.LowerThresholdFromSlider(pos)
	case ParamCeiling:
		cfg.UpperThreshold = math.Min(math.Max(cfg.UpperThreshold+d*ceilingStep, 0), 1)
	case ParamCurve:
		v := math.Round((cfg.CurveStrength+d*curveStep)*10) / 10
		cfg.CurveStrength = math.Min(math.Max(v, noise.MinCurveStrength), noise.MaxCurveStrength)
	}

	if cfg == m.Config {
		return m
	}
	m.Config = cfg

	return m.reschedule()
}

func (m Model) reschedule() Model {
	if err := m.Config.Validate(); err != nil {
		m.Err = err
		return m
	}
	m.Err = nil
	m.Status = ""
	m.Percent = 0
	m.Pending = m.sched.Schedule(m.wave, m.Config)

	return m
}

func saveValues(path string, values []float64) tea.Cmd {
	return func() tea.Msg {
		p, err := export.WriteJSONFile(path, values)
		return SavedMsg{Path: p, Err: err}
	}
}

func savePreset(path string, cfg noise.Config) tea.Cmd {
	return func() tea.Msg {
		err := preset.SaveJSON(path, cfg)
		return SavedMsg{Path: path, Err: err}
	}
}
