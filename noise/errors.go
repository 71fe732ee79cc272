// SPDX-License-Identifier: EPL-2.0

package noise

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid noise config")
	ErrNoWaveform    = errors.New("no waveform loaded")

	// ErrSuperseded is returned when a newer request was issued while a
	// run was in flight. The result of the older run is discarded.
	ErrSuperseded = errors.New("recompute superseded by a newer request")
)
