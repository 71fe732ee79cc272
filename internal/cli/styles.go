// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/ik5/noisetonoise/noise"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#5FAFD7") // signal blue
	accentColor  = lipgloss.Color("#FFA500")
	mutedColor   = lipgloss.Color("#888888")
	textColor    = lipgloss.Color("#FFFFFF")

	noticeColor   = lipgloss.Color("#D7D700")
	warningColor  = lipgloss.Color("#FF8700")
	criticalColor = lipgloss.Color("#D70000")
	okColor       = lipgloss.Color("#00AA00")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(criticalColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	AccentStyle = lipgloss.NewStyle().
			Foreground(accentColor)
)

// SeverityStyle colours text by balance severity.
func SeverityStyle(s noise.Severity) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true)
	switch s {
	case noise.Critical:
		return st.Foreground(criticalColor)
	case noise.Warning:
		return st.Foreground(warningColor)
	case noise.Notice:
		return st.Foreground(noticeColor)
	default:
		return st.Foreground(okColor)
	}
}

// KeyValue renders "key: value" with the shared styles.
func KeyValue(key, value string) string {
	return KeyStyle.Render(key+":") + " " + ValueStyle.Render(value)
}

func PrintVersion(w io.Writer, version string) {
	fmt.Fprintln(w, TitleStyle.Render("noisetonoise"))
	fmt.Fprintln(w, KeyValue("Version", version))
	fmt.Fprintln(w)
}

func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintSummary writes the one-screen summary shown after a conversion.
func PrintSummary(w io.Writer, source string, cfg noise.Config, res noise.Result) {
	report := noise.DescribeBalance(res.Balance)

	fmt.Fprintln(w, KeyValue("Source", source))
	fmt.Fprintln(w, KeyValue("Windows", fmt.Sprintf("%d x %dms", len(res.Values), cfg.IntervalMs)))
	fmt.Fprintln(w, KeyValue("Thresholds", fmt.Sprintf("%.5g .. %.5g", cfg.LowerThreshold, cfg.UpperThreshold)))
	fmt.Fprintln(w, KeyValue("Curve", fmt.Sprintf("%.2f", cfg.CurveStrength)))
	fmt.Fprintf(w, "%s %s\n", KeyStyle.Render("Balance:"), SeverityStyle(report.Severity).Render(report.String()))
}

// PrintSaved reports where the values were written.
func PrintSaved(w io.Writer, path string) {
	fmt.Fprintf(w, "%s %s\n", AccentStyle.Render("Saved"), path)
}
