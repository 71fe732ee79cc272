// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ik5/noisetonoise/noise"
)

func TestSparkline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []float64
		width  int
		want   string
	}{
		{name: "empty", values: nil, width: 10, want: ""},
		{name: "zero width", values: []float64{1}, width: 0, want: ""},
		{name: "one per column", values: []float64{0, 0.5, 1}, width: 10, want: "▁▅█"},
		{name: "bucket max", values: []float64{0, 1, 0, 0}, width: 2, want: "█▁"},
		{name: "clamped", values: []float64{-1, 2}, width: 2, want: "▁█"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Sparkline(tt.values, tt.width); got != tt.want {
				t.Fatalf("Sparkline() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSparklineWidth(t *testing.T) {
	t.Parallel()

	values := make([]float64, 1000)
	if n := utf8.RuneCountInString(Sparkline(values, 37)); n != 37 {
		t.Fatalf("width = %d, want 37", n)
	}
}

func TestRenderProgressBar(t *testing.T) {
	t.Parallel()

	got := renderProgressBar(50, 10)
	if got != "█████░░░░░ 50%" {
		t.Fatalf("bar = %q", got)
	}
	if got := renderProgressBar(150, 4); got != "████ 100%" {
		t.Fatalf("over = %q", got)
	}
}

func TestViewStates(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	if v := m.View(); !strings.Contains(v, "computing") || !strings.Contains(v, "Interval") {
		t.Fatalf("initial view:\n%s", v)
	}

	m, _ = update(t, m, ResultMsg{noise.Outcome{Request: 1, Result: noise.Result{Values: []float64{0, 1, 1, 1}, Balance: 25}}})
	v := m.View()
	for _, want := range []string{"25.0% above (notice)", "4 windows", "100%", "in.wav"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q:\n%s", want, v)
		}
	}

	m.Err = errors.New("decode failed")
	if v := m.View(); !strings.Contains(v, "decode failed") {
		t.Fatalf("error view:\n%s", v)
	}
}
