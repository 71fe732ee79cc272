// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidChannel, "channel index out of range"},
		{ErrInvalidSampleRate, "sample rate must be positive"},
		{ErrUnsupportedFormat, "unsupported audio format"},
		{ErrNilSource, "nil audio source"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: %q", ErrUnsupportedFormat, ".flac")
	if !errors.Is(wrapped, ErrUnsupportedFormat) {
		t.Error("errors.Is() failed for wrapped ErrUnsupportedFormat")
	}

	joined := errors.Join(ErrInvalidSampleRate, errors.New("additional context"))
	if !errors.Is(joined, ErrInvalidSampleRate) {
		t.Error("errors.Is() failed for joined ErrInvalidSampleRate")
	}

	if errors.Is(ErrInvalidChannel, ErrInvalidSampleRate) {
		t.Error("distinct sentinels must not match")
	}
}
