// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/floats"
)

const (
	frameSize = 1024
	hopSize   = 256

	minBandHz = 20.0
	maxBandHz = 20000.0

	// powerFloor keeps silence finite at -100 dB.
	powerFloor = 1e-10
	silenceDB  = -100.0
	dbRange    = 100.0
)

type band struct{ lo, hi int }

// Spectral is a log-band STFT engine: every hop of 256 samples becomes
// NumRotators band levels in dB between 20 Hz and 20 kHz. Distance is
// the mean absolute level difference scaled by the 100 dB range, with the
// shorter input padded by silence. It is not a model of hearing, only a
// deterministic stand-in that keeps the Engine contract.
//
// A Spectral holds no per-call state and is safe for concurrent use.
type Spectral struct {
	maxSteps int
	window   []float64
	scale    float64
	bands    []band
}

type Option func(*Spectral)

// WithMaxSteps caps the spectrogram length. Analyze fails with
// ErrOutOfMemory past it. Zero means no limit.
func WithMaxSteps(n int) Option {
	return func(s *Spectral) { s.maxSteps = n }
}

func NewSpectral(opts ...Option) *Spectral {
	s := &Spectral{
		window: window.Hann(frameSize),
		bands:  logBands(),
	}
	// normalize so a full scale sine peaks near 0.25 (-6 dB)
	s.scale = 1 / math.Pow(floats.Sum(s.window), 2)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewFactory returns a Factory producing Spectral engines.
func NewFactory(opts ...Option) Factory {
	return func() Engine { return NewSpectral(opts...) }
}

func logBands() []band {
	binHz := float64(SampleRate) / frameSize
	maxBin := frameSize / 2

	bands := make([]band, NumRotators)
	ratio := maxBandHz / minBandHz
	for k := range bands {
		f0 := minBandHz * math.Pow(ratio, float64(k)/NumRotators)
		f1 := minBandHz * math.Pow(ratio, float64(k+1)/NumRotators)

		lo := min(int(f0/binHz), maxBin)
		hi := min(int(math.Ceil(f1/binHz)), maxBin+1)
		if hi <= lo {
			hi = lo + 1
		}
		bands[k] = band{lo: lo, hi: hi}
	}

	return bands
}

// Steps is the number of spectrogram rows produced for n samples.
func Steps(n int) int {
	return (n + hopSize - 1) / hopSize
}

func (s *Spectral) Analyze(samples []float32) (*Spectrogram, error) {
	steps := Steps(len(samples))
	if s.maxSteps > 0 && steps > s.maxSteps {
		return nil, fmt.Errorf("%w: %d steps, limit %d", ErrOutOfMemory, steps, s.maxSteps)
	}

	spec := NewSpectrogram(steps, NumRotators)
	frame := make([]float64, frameSize)
	power := make([]float64, frameSize/2+1)

	for i := range steps {
		start := i * hopSize
		clear(frame)
		for j, v := range samples[start:min(start+frameSize, len(samples))] {
			frame[j] = float64(v)
		}
		floats.Mul(frame, s.window)

		spectrum := fft.FFTReal(frame)
		for k := range power {
			re, im := real(spectrum[k]), imag(spectrum[k])
			power[k] = (re*re + im*im) * s.scale
		}

		row := spec.Row(i)
		for b, bd := range s.bands {
			mean := floats.Sum(power[bd.lo:bd.hi]) / float64(bd.hi-bd.lo)
			row[b] = float32(10 * math.Log10(mean+powerFloor))
		}
	}

	return spec, nil
}

func (s *Spectral) Distance(a, b *Spectrogram) float64 {
	as, ad := shapeOf(a)
	bs, bd := shapeOf(b)
	steps, dims := max(as, bs), max(ad, bd)
	if steps == 0 || dims == 0 {
		return 0
	}

	x := make([]float64, dims)
	y := make([]float64, dims)

	var total float64
	for i := range steps {
		fillRow(x, a, i)
		fillRow(y, b, i)
		total += floats.Distance(x, y, 1)
	}

	return total / float64(steps*dims) / dbRange
}

func shapeOf(s *Spectrogram) (int, int) {
	if s == nil {
		return 0, 0
	}
	return s.Steps, s.Dims
}

// fillRow copies row i of s into dst, padding with silence where s has
// no data.
func fillRow(dst []float64, s *Spectrogram, i int) {
	steps, dims := shapeOf(s)
	for j := range dst {
		if i < steps && j < dims {
			dst[j] = float64(s.Values[i*dims+j])
		} else {
			dst[j] = silenceDB
		}
	}
}
