// SPDX-License-Identifier: EPL-2.0

package ohrli

import (
	"sync"

	"github.com/ik5/ohrli/audio"
	"github.com/ik5/ohrli/compare"
	"github.com/ik5/ohrli/engine"
	"github.com/ik5/ohrli/formats/aiff"
	"github.com/ik5/ohrli/formats/mp3"
	"github.com/ik5/ohrli/formats/vorbis"
	"github.com/ik5/ohrli/formats/wav"
	"github.com/ik5/ohrli/resample"
	"go.uber.org/zap"
)

// Comparer bundles a comparison pipeline with the decoders used to load
// files. The zero value is not usable; build one with New.
type Comparer struct {
	pipeline   *compare.Pipeline
	comparator *compare.Comparator
	resampler  resample.Resampler
	registry   *audio.Registry
	bufferSize int
	logger     *zap.Logger
}

type settings struct {
	factory    engine.Factory
	resampler  resample.Resampler
	registry   *audio.Registry
	bufferSize int
	logger     *zap.Logger
}

type Option func(*settings)

// WithEngine replaces the reference spectral engine.
func WithEngine(f engine.Factory) Option {
	return func(s *settings) { s.factory = f }
}

func WithResampler(r resample.Resampler) Option {
	return func(s *settings) { s.resampler = r }
}

// WithRegistry replaces the decoders used by CompareFiles and LoadMono.
func WithRegistry(r *audio.Registry) Option {
	return func(s *settings) { s.registry = r }
}

// WithBufferSize sets the read size used while decoding files.
func WithBufferSize(n int) Option {
	return func(s *settings) { s.bufferSize = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

func New(opts ...Option) *Comparer {
	s := settings{
		factory:    engine.NewFactory(),
		bufferSize: 4096,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.registry == nil {
		s.registry = DefaultRegistry()
	}
	if s.resampler == nil {
		r, err := resample.NewSoxr(resample.DefaultQuality)
		if err != nil {
			s.resampler = resample.Cubic{}
		} else {
			s.resampler = r
		}
	}

	copts := []compare.Option{
		compare.WithFactory(s.factory),
		compare.WithResampler(s.resampler),
		compare.WithLogger(s.logger),
	}

	return &Comparer{
		pipeline:   compare.NewPipeline(copts...),
		comparator: compare.NewComparator(copts...),
		resampler:  s.resampler,
		registry:   s.registry,
		bufferSize: s.bufferSize,
		logger:     s.logger,
	}
}

// DefaultRegistry knows wav, mp3, ogg and aiff files.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})

	return r
}

var defaultComparer = sync.OnceValue(func() *Comparer { return New() })

// Default is the Comparer used by the package level functions.
func Default() *Comparer { return defaultComparer() }

// Pipeline exposes the underlying comparison pipeline.
func (c *Comparer) Pipeline() *compare.Pipeline { return c.pipeline }

// SampleRate is the rate every comparison is carried out at.
func SampleRate() int { return engine.SampleRate }

// NumRotators is the number of frequency channels of a spectrogram step.
func NumRotators() int { return engine.NumRotators }

// MOSFromZimtohrli converts a distance to a mean opinion score in [1, 5].
func MOSFromZimtohrli(distance float64) float64 {
	return engine.MOSFromZimtohrli(distance)
}
