// SPDX-License-Identifier: EPL-2.0

// Package export writes noise sequences as JSON.
//
// The plain form is a bare array of floats, the same payload the original
// tool offered for download and clipboard copy:
//
//	[0.12,0.5,1,0]
//
// WriteReport adds the balance and the parameters that produced the values.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ik5/noisetonoise/noise"
)

// DefaultFileName is used when no output path is given.
const DefaultFileName = "audio_noise_data.json"

// Report is the self-describing output form.
type Report struct {
	Source  string       `json:"source,omitempty"`
	Config  noise.Config `json:"config"`
	Count   int          `json:"count"`
	Balance float64      `json:"balance"`
	Values  []float64    `json:"values"`
}

// NewReport bundles a result with its parameters.
func NewReport(source string, cfg noise.Config, res noise.Result) Report {
	values := res.Values
	if values == nil {
		values = []float64{}
	}

	return Report{
		Source:  source,
		Config:  cfg,
		Count:   len(values),
		Balance: res.Balance,
		Values:  values,
	}
}

// WriteJSON writes values as a single JSON array followed by a newline.
// A nil slice is written as [].
func WriteJSON(w io.Writer, values []float64) error {
	if values == nil {
		values = []float64{}
	}

	if err := json.NewEncoder(w).Encode(values); err != nil {
		return fmt.Errorf("encoding noise values: %w", err)
	}

	return nil
}

// WriteReport writes r as indented JSON.
func WriteReport(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding noise report: %w", err)
	}

	return nil
}

// WriteJSONFile writes values to path, or DefaultFileName when path is empty.
// It returns the path written.
func WriteJSONFile(path string, values []float64) (string, error) {
	return writeFile(path, func(w io.Writer) error { return WriteJSON(w, values) })
}

// WriteReportFile is WriteJSONFile for reports.
func WriteReportFile(path string, r Report) (string, error) {
	return writeFile(path, func(w io.Writer) error { return WriteReport(w, r) })
}

func writeFile(path string, write func(io.Writer) error) (string, error) {
	if path == "" {
		path = DefaultFileName
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}

	return path, nil
}
