// SPDX-License-Identifier: EPL-2.0

package compare

import (
	"sync"

	"github.com/ik5/ohrli/engine"
	"go.uber.org/zap"
)

// Comparator keeps one engine for many comparisons of audio that is
// already at engine.SampleRate. The engine must be safe for concurrent
// use when the Comparator is shared.
type Comparator struct {
	engine engine.Engine
	logger *zap.Logger
}

// NewComparator accepts the same options as NewPipeline; WithResampler is
// ignored since no resampling happens here.
func NewComparator(opts ...Option) *Comparator {
	p := NewPipeline(opts...)

	return &Comparator{
		engine: p.factory(),
		logger: p.logger,
	}
}

var defaultComparator = sync.OnceValue(func() *Comparator { return NewComparator() })

// Default returns a process wide Comparator built on first use.
func Default() *Comparator { return defaultComparator() }

func (c *Comparator) SampleRate() int  { return engine.SampleRate }
func (c *Comparator) NumRotators() int { return engine.NumRotators }

// Compare returns the distance between a and b, or its MOS when
// returnDistance is false.
func (c *Comparator) Compare(a, b []float32, returnDistance bool) (result float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = 0, recovered(r)
		}
	}()

	specA, err := c.engine.Analyze(a)
	if err != nil {
		return 0, Runtime(err)
	}
	specB, err := c.engine.Analyze(b)
	if err != nil {
		return 0, Runtime(err)
	}

	distance := c.engine.Distance(specA, specB)
	c.logger.Debug("distance computed", zap.Float64("distance", distance))

	if returnDistance {
		return distance, nil
	}

	return engine.MOSFromZimtohrli(distance), nil
}

// Analyze returns the spectrogram of samples as little-endian float32
// bytes, NumRotators values per step.
func (c *Comparator) Analyze(samples []float32) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, recovered(r)
		}
	}()

	spec, err := c.engine.Analyze(samples)
	if err != nil {
		return nil, Runtime(err)
	}

	return spec.Bytes(), nil
}
