// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	want := Config{IntervalMs: 100, LowerThreshold: 1e-5, UpperThreshold: 1, CurveStrength: 2}
	if cfg != want {
		t.Errorf("DefaultConfig() = %+v, want %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	base := DefaultConfig()
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "interval min", mutate: func(c *Config) { c.IntervalMs = 1 }},
		{name: "interval max", mutate: func(c *Config) { c.IntervalMs = 1000 }},
		{name: "interval zero", mutate: func(c *Config) { c.IntervalMs = 0 }, wantErr: true},
		{name: "interval too long", mutate: func(c *Config) { c.IntervalMs = 1001 }, wantErr: true},
		{name: "lower zero", mutate: func(c *Config) { c.LowerThreshold = 0 }},
		{name: "lower negative", mutate: func(c *Config) { c.LowerThreshold = -0.1 }, wantErr: true},
		{name: "lower NaN", mutate: func(c *Config) { c.LowerThreshold = math.NaN() }, wantErr: true},
		{name: "upper above one", mutate: func(c *Config) { c.UpperThreshold = 1.01 }, wantErr: true},
		{name: "inverted thresholds", mutate: func(c *Config) { c.LowerThreshold, c.UpperThreshold = 0.8, 0.2 }},
		{name: "curve min", mutate: func(c *Config) { c.CurveStrength = 0.1 }},
		{name: "curve max", mutate: func(c *Config) { c.CurveStrength = 10 }},
		{name: "curve zero", mutate: func(c *Config) { c.CurveStrength = 0 }, wantErr: true},
		{name: "curve negative", mutate: func(c *Config) { c.CurveStrength = -2 }, wantErr: true},
		{name: "curve Inf", mutate: func(c *Config) { c.CurveStrength = math.Inf(1) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := base
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestLowerThresholdSlider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pos   float64
		lower float64
	}{
		{0, 1e-5},
		{0.2, 1e-4},
		{0.6, 1e-2},
		{1, 1},
	}

	for _, tt := range tests {
		if got := LowerThresholdFromSlider(tt.pos); math.Abs(got-tt.lower) > tt.lower*1e-9 {
			t.Errorf("LowerThresholdFromSlider(%v) = %v, want %v", tt.pos, got, tt.lower)
		}
		if got := LowerThresholdToSlider(tt.lower); math.Abs(got-tt.pos) > 1e-9 {
			t.Errorf("LowerThresholdToSlider(%v) = %v, want %v", tt.lower, got, tt.pos)
		}
	}
}

func TestLowerThresholdSlider_OutOfRange(t *testing.T) {
	t.Parallel()

	if got := LowerThresholdToSlider(0); got != 0 {
		t.Errorf("LowerThresholdToSlider(0) = %v, want 0", got)
	}
	if got := LowerThresholdToSlider(math.NaN()); got != 0 {
		t.Errorf("LowerThresholdToSlider(NaN) = %v, want 0", got)
	}
	if got := LowerThresholdFromSlider(-3); math.Abs(got-1e-5) > 1e-15 {
		t.Errorf("LowerThresholdFromSlider(-3) = %v, want 1e-5", got)
	}
	if got := LowerThresholdFromSlider(7); got != 1 {
		t.Errorf("LowerThresholdFromSlider(7) = %v, want 1", got)
	}
}
