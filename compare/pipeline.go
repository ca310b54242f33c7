// SPDX-License-Identifier: EPL-2.0

package compare

import (
	"fmt"

	"github.com/ik5/ohrli/buffer"
	"github.com/ik5/ohrli/engine"
	"github.com/ik5/ohrli/resample"
	"go.uber.org/zap"
)

// Variant selects what a comparison returns.
type Variant int

const (
	VariantMOS Variant = iota
	VariantDistance
)

func (v Variant) String() string {
	if v == VariantDistance {
		return "distance"
	}
	return "mos"
}

// Pipeline compares two buffers recorded at arbitrary rates. It holds no
// per-call state: every comparison borrows its own views and builds its
// own engine, so a Pipeline is safe for concurrent use.
type Pipeline struct {
	factory   engine.Factory
	resampler resample.Resampler
	logger    *zap.Logger
}

type Option func(*Pipeline)

func WithFactory(f engine.Factory) Option {
	return func(p *Pipeline) { p.factory = f }
}

func WithResampler(r resample.Resampler) Option {
	return func(p *Pipeline) { p.resampler = r }
}

func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// NewPipeline defaults to the spectral engine and the high quality soxr
// resampler.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		factory: engine.NewFactory(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.resampler == nil {
		p.resampler = defaultResampler()
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}

	return p
}

func defaultResampler() resample.Resampler {
	r, err := resample.NewSoxr(resample.DefaultQuality)
	if err != nil {
		return resample.Cubic{}
	}
	return r
}

// MOS returns the mean opinion score of b against a.
func (p *Pipeline) MOS(a buffer.Exporter, rateA float64, b buffer.Exporter, rateB float64) (float64, error) {
	return p.Run(VariantMOS, a, rateA, b, rateB)
}

// Distance returns the raw distance between a and b.
func (p *Pipeline) Distance(a buffer.Exporter, rateA float64, b buffer.Exporter, rateB float64) (float64, error) {
	return p.Run(VariantDistance, a, rateA, b, rateB)
}

// Run performs one comparison. Both views are released before it returns,
// whatever the outcome.
func (p *Pipeline) Run(variant Variant, a buffer.Exporter, rateA float64, b buffer.Exporter, rateB float64) (float64, error) {
	viewA, err := acquire(a)
	if err != nil {
		return 0, Usage("audio_a is not a valid buffer")
	}
	defer viewA.Release()

	viewB, err := acquire(b)
	if err != nil {
		return 0, Usage("audio_b is not a valid buffer")
	}
	defer viewB.Release()

	if viewA.Itemsize() != 4 || viewB.Itemsize() != 4 {
		return 0, Usage("audio arrays must contain float32 values")
	}
	if viewA.Ndim() != 1 || viewB.Ndim() != 1 {
		return 0, Usage("audio arrays must be 1-dimensional")
	}

	return p.compute(variant, viewA.Float32s(), rateA, viewB.Float32s(), rateB)
}

// acquire turns a panicking exporter, such as a typed nil, into
// ErrNotBuffer.
func acquire(e buffer.Exporter) (v *buffer.View, err error) {
	if e == nil {
		return nil, buffer.ErrNotBuffer
	}
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, fmt.Errorf("%w: %v", buffer.ErrNotBuffer, r)
		}
	}()

	v, err = e.View()
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, buffer.ErrNotBuffer
	}

	return v, nil
}

// compute runs resampling, analysis and distance. Panics raised by the
// collaborators end up as runtime errors.
func (p *Pipeline) compute(variant Variant, a []float32, rateA float64, b []float32, rateB float64) (result float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = 0, recovered(r)
		}
	}()

	if a, err = p.toCanonical("audio_a", a, rateA); err != nil {
		return 0, Runtime(err)
	}
	if b, err = p.toCanonical("audio_b", b, rateB); err != nil {
		return 0, Runtime(err)
	}

	eng := p.factory()
	specA, err := eng.Analyze(a)
	if err != nil {
		return 0, Runtime(err)
	}
	specB, err := eng.Analyze(b)
	if err != nil {
		return 0, Runtime(err)
	}

	distance := eng.Distance(specA, specB)
	p.logger.Debug("distance computed",
		zap.Float64("distance", distance),
		zap.Int("steps_a", specA.Steps),
		zap.Int("steps_b", specB.Steps),
		zap.Stringer("variant", variant),
	)

	if variant == VariantDistance {
		return distance, nil
	}

	return engine.MOSFromZimtohrli(distance), nil
}

// toCanonical resamples samples to engine.SampleRate unless they are
// already there.
func (p *Pipeline) toCanonical(name string, samples []float32, rate float64) ([]float32, error) {
	if rate == engine.SampleRate {
		return samples, nil
	}

	p.logger.Debug("resampling",
		zap.String("operand", name),
		zap.Float64("from", rate),
		zap.Int("to", engine.SampleRate),
		zap.Int("samples", len(samples)),
	)

	return p.resampler.Resample(samples, rate, engine.SampleRate)
}
