// SPDX-License-Identifier: EPL-2.0

package main

import (
	"io"
	"os"

	"github.com/ik5/noisetonoise/export"
	"github.com/ik5/noisetonoise/noise"
)

// Output selects where and how results are written.
type Output struct {
	Output string `short:"o" default:"${default_output}" help:"Output JSON file, - for stdout"`
	Report bool   `help:"Write a report with source, parameters and balance instead of bare values"`
}

// write stores res and returns the path used, "-" for stdout.
func (o Output) write(stdout io.Writer, source string, cfg noise.Config, res noise.Result) (string, error) {
	if o.Output == "-" {
		if o.Report {
			return "-", export.WriteReport(stdout, export.NewReport(source, cfg, res))
		}
		return "-", export.WriteJSON(stdout, res.Values)
	}

	if o.Report {
		return export.WriteReportFile(o.Output, export.NewReport(source, cfg, res))
	}

	return export.WriteJSONFile(o.Output, res.Values)
}

// summaryWriter is where human-readable output goes: stderr when the values
// themselves go to stdout.
func (o Output) summaryWriter() io.Writer {
	if o.Output == "-" {
		return os.Stderr
	}

	return os.Stdout
}
