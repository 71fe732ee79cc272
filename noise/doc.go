// SPDX-License-Identifier: EPL-2.0

// Package noise turns a decoded waveform into a sequence of "noise
// intensity" values in [0, 1].
//
// A run splits the waveform into fixed-length windows and takes the peak
// absolute amplitude of each. Every peak is then:
//
//  1. normalized against the loudest sample of the whole waveform
//  2. remapped through a floor (LowerThreshold) and ceiling (UpperThreshold)
//  3. reshaped by a power curve, v^(1/CurveStrength)
//
// The share of values above 0.5 gives the balance, from -50 (all quiet) to
// 50 (all loud).
//
//	w, _ := audio.DecodeFile(registry, "take.wav", 0)
//	res, err := noise.Run(ctx, w, noise.DefaultConfig(), nil)
//	fmt.Println(len(res.Values), noise.DescribeBalance(res.Balance))
//
// # Interactive use
//
// Orchestrator keeps one committed result and coalesces parameter changes.
// Schedule waits for a short debounce, cancels whatever is still running
// and delivers only the newest outcome:
//
//	o := noise.NewOrchestrator(
//	    noise.WithProgress(func(p noise.Progress) { bar.SetPercent(p.Percent) }),
//	    noise.WithOnResult(func(out noise.Outcome) { redraw(out.Result) }),
//	)
//	defer o.Close()
//	o.Schedule(w, cfg)
//
// Silence, empty input and empty windows are not errors; they produce zeros
// or an empty sequence.
package noise
