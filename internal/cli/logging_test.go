// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "text info", level: "info", format: "text"},
		{name: "default format", level: "debug", format: ""},
		{name: "json", level: "warn", format: "JSON"},
		{name: "bad level", level: "loud", format: "text", wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			l, err := NewLogger(&buf, tt.level, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && l == nil {
				t.Fatal("NewLogger() returned nil logger")
			}
		})
	}
}

func TestNewLoggerFiltersLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := NewLogger(&buf, "warn", "text")
	if err != nil {
		t.Fatal(err)
	}

	l.Info("hidden")
	l.Warn("shown")

	got := buf.String()
	if strings.Contains(got, "hidden") || !strings.Contains(got, "shown") {
		t.Fatalf("output = %q", got)
	}
}

func TestNewLoggerJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := NewLogger(&buf, "info", "json")
	if err != nil {
		t.Fatal(err)
	}
	l.Info("converted", "windows", 20)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("not JSON: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "converted" || rec["windows"] != float64(20) {
		t.Fatalf("record = %v", rec)
	}
}

func TestNewLoggerUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := NewLogger(&bytes.Buffer{}, "info", "yaml")
	if !errors.Is(err, ErrUnknownLogFormat) {
		t.Fatalf("err = %v, want ErrUnknownLogFormat", err)
	}
}
