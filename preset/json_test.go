// SPDX-License-Identifier: EPL-2.0

package preset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/noisetonoise/noise"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "preset.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return path
}

func TestLoadJSONAppliesOverDefaults(t *testing.T) {
	t.Parallel()

	path := writePreset(t, `{
  "interval_ms": 50,
  "upper_threshold": 0.8,
  "curve_strength": 1.5
}`)

	cfg, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}

	want := noise.DefaultConfig()
	want.IntervalMs = 50
	want.UpperThreshold = 0.8
	want.CurveStrength = 1.5
	if cfg != want {
		t.Fatalf("LoadJSON() = %+v, want %+v", cfg, want)
	}
}

func TestLoadJSONFloorSlider(t *testing.T) {
	t.Parallel()

	cfg, err := LoadJSON(writePreset(t, `{"floor_slider": 0.6}`))
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if math.Abs(cfg.LowerThreshold-0.01) > 1e-12 {
		t.Fatalf("lower threshold = %v, want 0.01", cfg.LowerThreshold)
	}

	// explicit threshold beats the slider
	cfg, err = LoadJSON(writePreset(t, `{"floor_slider": 0.6, "lower_threshold": 0.2}`))
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if cfg.LowerThreshold != 0.2 {
		t.Fatalf("lower threshold = %v, want 0.2", cfg.LowerThreshold)
	}
}

func TestLoadJSONRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "syntax", content: `{"interval_ms": `},
		{name: "unknown field", content: `{"intervall_ms": 10}`},
		{name: "interval range", content: `{"interval_ms": 5000}`},
		{name: "curve range", content: `{"curve_strength": 0}`},
		{name: "slider range", content: `{"floor_slider": 1.5}`},
		{name: "wrong type", content: `{"upper_threshold": "high"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadJSON(writePreset(t, tt.content))
			if !errors.Is(err, ErrInvalidPreset) {
				t.Fatalf("LoadJSON() error = %v, want ErrInvalidPreset", err)
			}
		})
	}
}

func TestLoadJSONMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadJSON(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("LoadJSON() error = %v, want os.ErrNotExist", err)
	}
}

func TestApplyFileLeavesDestinationOnError(t *testing.T) {
	t.Parallel()

	cfg := noise.DefaultConfig()
	interval := 20
	curve := -1.0

	err := ApplyFile(&cfg, &File{IntervalMs: &interval, CurveStrength: &curve})
	if !errors.Is(err, noise.ErrInvalidConfig) {
		t.Fatalf("ApplyFile() error = %v, want ErrInvalidConfig", err)
	}
	if cfg != noise.DefaultConfig() {
		t.Fatalf("destination modified: %+v", cfg)
	}

	if err := ApplyFile(nil, &File{}); !errors.Is(err, ErrInvalidPreset) {
		t.Fatalf("ApplyFile(nil) error = %v", err)
	}
	if err := ApplyFile(&cfg, nil); err != nil {
		t.Fatalf("ApplyFile(nil file) error = %v", err)
	}
}

func TestSaveJSONRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "saved.json")
	cfg := noise.Config{IntervalMs: 250, LowerThreshold: 0.05, UpperThreshold: 0.7, CurveStrength: 3}

	if err := SaveJSON(path, cfg); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"interval_ms": 250`) {
		t.Errorf("saved preset:\n%s", data)
	}

	got, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if got != cfg {
		t.Fatalf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestSaveJSONRejectsInvalid(t *testing.T) {
	t.Parallel()

	bad := noise.DefaultConfig()
	bad.IntervalMs = 0
	if err := SaveJSON(filepath.Join(t.TempDir(), "x.json"), bad); !errors.Is(err, noise.ErrInvalidConfig) {
		t.Fatalf("SaveJSON() error = %v, want ErrInvalidConfig", err)
	}
}
