// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var ErrUnknownLogFormat = errors.New("unknown log format")

// NewLogger builds the command's logger. format is "text" or "json";
// level is any name slog.Level understands (debug, info, warn, error).
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
	}
}
