// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"encoding/binary"
	"math"
)

const (
	// SampleRate is the only rate the engine analyses, in Hz.
	SampleRate = 48000
	// NumRotators is the number of frequency channels per spectrogram step.
	NumRotators = 128
)

// Engine analyses 48 kHz mono audio and compares the results.
type Engine interface {
	// Analyze turns samples at SampleRate into a spectrogram.
	Analyze(samples []float32) (*Spectrogram, error)
	// Distance is non-negative, symmetric and zero for identical input.
	Distance(a, b *Spectrogram) float64
}

// Factory builds a fresh Engine for one comparison.
type Factory func() Engine

// Spectrogram holds Steps rows of Dims values each, row-major.
type Spectrogram struct {
	Steps  int
	Dims   int
	Values []float32
}

func NewSpectrogram(steps, dims int) *Spectrogram {
	return &Spectrogram{
		Steps:  steps,
		Dims:   dims,
		Values: make([]float32, steps*dims),
	}
}

// Row returns step i. The slice aliases Values.
func (s *Spectrogram) Row(i int) []float32 {
	return s.Values[i*s.Dims : (i+1)*s.Dims]
}

// Bytes encodes the values as little-endian float32.
func (s *Spectrogram) Bytes() []byte {
	out := make([]byte, 4*len(s.Values))
	for i, v := range s.Values {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(v))
	}

	return out
}
