// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ik5/noisetonoise/internal/cli"
	"github.com/ik5/noisetonoise/noise"
)

const (
	defaultWidth = 60
	barWidth     = 40
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#888888")).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFA500"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

func (m Model) View() string {
	width := m.Width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render("noisetonoise · " + filepath.Base(m.Source)))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(renderParams(m)))
	b.WriteString("\n")
	b.WriteString(renderProgressBar(m.Percent, barWidth))
	b.WriteString("\n\n")

	switch {
	case m.Err != nil:
		cli.PrintError(&b, m.Err.Error())
	case m.HasResult:
		b.WriteString(Sparkline(m.Result.Values, max(width-4, 1)))
		b.WriteString("\n")
		b.WriteString(renderBalance(m.Result))
		b.WriteString("\n")
	default:
		b.WriteString("computing...\n")
	}

	if m.Status != "" {
		b.WriteString(cli.AccentStyle.Render(m.Status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓ select · ←/→ adjust · r reset · s save values · p save preset · q quit"))
	b.WriteString("\n")

	return b.String()
}

func renderParams(m Model) string {
	rows := []string{
		fmt.Sprintf("%dms", m.Config.IntervalMs),
		fmt.Sprintf("%.5f (slider %.2f)", m.Config.LowerThreshold, noise.LowerThresholdToSlider(m.Config.LowerThreshold)),
		fmt.Sprintf("%.2f", m.Config.UpperThreshold),
		fmt.Sprintf("%.1f", m.Config.CurveStrength),
	}

	var b strings.Builder
	for i, v := range rows {
		marker := "  "
		label := fmt.Sprintf("%-9s", Param(i).String())
		if Param(i) == m.Cursor {
			marker = cursorStyle.Render("▸ ")
			label = cursorStyle.Render(label)
		}
		b.WriteString(marker + label + " " + cli.ValueStyle.Render(v))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderProgressBar(percent, width int) string {
	percent = min(max(percent, 0), 100)
	filled := percent * width / 100

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	return fmt.Sprintf("%s %d%%", bar, percent)
}

func renderBalance(res noise.Result) string {
	report := noise.DescribeBalance(res.Balance)

	return fmt.Sprintf("%s %s  %s",
		cli.KeyStyle.Render("Balance:"),
		cli.SeverityStyle(report.Severity).Render(report.String()),
		cli.KeyStyle.Render(fmt.Sprintf("(%d windows)", len(res.Values))))
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws values in [0, 1] as at most width bars. When there are
// more values than columns each bar shows the maximum of its bucket.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	cols := min(width, len(values))
	out := make([]rune, cols)
	for c := range cols {
		lo := c * len(values) / cols
		hi := max((c+1)*len(values)/cols, lo+1)

		v := 0.0
		for _, x := range values[lo:hi] {
			v = max(v, x)
		}
		v = min(max(v, 0), 1)

		out[c] = sparkRunes[int(v*float64(len(sparkRunes)-1)+0.5)]
	}

	return string(out)
}
