// SPDX-License-Identifier: EPL-2.0

// Package compare measures how different two recordings sound.
//
// A Pipeline takes two buffers with their sample rates, brings each to
// engine.SampleRate when needed, analyses both with a fresh engine and
// returns either the raw distance or a mean opinion score:
//
//	p := compare.NewPipeline()
//	mos, err := p.MOS(buffer.Float32s(ref), 44100, buffer.Float32s(test), 16000)
//
// Errors are *Error values of one of two kinds. ErrUsage means the call
// itself was wrong (bad buffer, wrong element type or shape) and no work
// was done. ErrRuntime wraps a failure from the resampler or the engine,
// including panics, and keeps the cause reachable with errors.Is.
//
// Comparator skips resampling and reuses a single engine, for callers that
// already hold 48 kHz audio.
package compare
