// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ik5/noisetonoise/export"
	"github.com/ik5/noisetonoise/internal/cli"
)

var (
	version = "0.0.1"
)

// Globals are the flags shared by every command.
type Globals struct {
	Version   versionFlag `short:"v" help:"Show version information"`
	LogLevel  string      `default:"warn" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string      `default:"text" enum:"text,json" help:"Log format on stderr (text, json)"`

	Tuning `embed:""`
}

// CLI defines the command-line interface
type CLI struct {
	Globals `embed:""`

	Convert ConvertCmd `cmd:"" help:"Convert an audio file to noise values"`
	Watch   WatchCmd   `cmd:"" help:"Reconvert whenever the preset file changes"`
	Tune    TuneCmd    `cmd:"" help:"Tune the parameters interactively"`
	Record  RecordCmd  `cmd:"" help:"Record from the microphone and convert"`
}

type versionFlag bool

func (versionFlag) BeforeReset(app *kong.Kong, vars kong.Vars) error {
	cli.PrintVersion(app.Stdout, vars["version"])
	app.Exit(0)
	return nil
}

func newParser(c *CLI, opts ...kong.Option) (*kong.Kong, error) {
	base := []kong.Option{
		kong.Name("noisetonoise"),
		kong.Description("Turn audio into a normalized noise intensity sequence"),
		kong.UsageOnError(),
		kong.Vars{
			"version":           version,
			"default_output":    export.DefaultFileName,
			"default_recording": DefaultRecordingName,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	}

	return kong.New(c, append(base, opts...)...)
}

func main() {
	var c CLI
	parser, err := newParser(&c)
	if err != nil {
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger, err := cli.NewLogger(os.Stderr, c.LogLevel, c.LogFormat)
	if err != nil {
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx.BindTo(ctx, (*context.Context)(nil))
	if err := kctx.Run(&c.Globals, logger); err != nil {
		logger.Debug("command failed", "command", kctx.Command(), "error", err)
		cli.PrintError(os.Stderr, err.Error())
		stop()
		os.Exit(1)
	}
}
