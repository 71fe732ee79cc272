// SPDX-License-Identifier: EPL-2.0

package ui

import "github.com/ik5/noisetonoise/noise"

// ProgressMsg carries an orchestrator progress report into the program.
type ProgressMsg struct {
	noise.Progress
}

// ResultMsg carries the outcome of the newest scheduled recompute.
type ResultMsg struct {
	noise.Outcome
}

// SavedMsg reports where the values were written.
type SavedMsg struct {
	Path string
	Err  error
}

// Sender delivers messages to a running program.
type Sender interface {
	Send(msg any)
}

// ProgressFunc forwards orchestrator progress to s.
func ProgressFunc(s Sender) func(noise.Progress) {
	return func(p noise.Progress) { s.Send(ProgressMsg{p}) }
}

// ResultFunc forwards orchestrator outcomes to s.
func ResultFunc(s Sender) func(noise.Outcome) {
	return func(o noise.Outcome) { s.Send(ResultMsg{o}) }
}
