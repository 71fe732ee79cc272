// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidChannel    = errors.New("channel index out of range")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNilSource         = errors.New("nil audio source")
)
