// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"fmt"
	"sort"
	"strings"

	resampling "github.com/tphakala/go-audio-resampling"
)

var qualities = map[string]resampling.QualitySpec{
	"quick":    {Preset: resampling.QualityQuick},
	"low":      {Preset: resampling.QualityLow},
	"medium":   {Preset: resampling.QualityMedium},
	"high":     {Preset: resampling.QualityHigh},
	"veryhigh": {Preset: resampling.QualityVeryHigh},
}

// DefaultQuality is used when no quality is named.
const DefaultQuality = "high"

// Qualities lists the preset names NewSoxr accepts.
func Qualities() []string {
	names := make([]string, 0, len(qualities))
	for name := range qualities {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Soxr is a polyphase FIR resampler. Each call runs a fresh, flushed
// stream so no filter state leaks between sequences.
type Soxr struct {
	quality resampling.QualitySpec
}

func NewSoxr(quality string) (*Soxr, error) {
	if quality == "" {
		quality = DefaultQuality
	}

	spec, ok := qualities[strings.ToLower(quality)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuality, quality)
	}

	return &Soxr{quality: spec}, nil
}

func (s *Soxr) Resample(samples []float32, sourceRate, targetRate float64) ([]float32, error) {
	if err := checkRates(sourceRate, targetRate); err != nil {
		return nil, err
	}
	if sourceRate == targetRate || len(samples) == 0 {
		return clone(samples), nil
	}

	r, err := resampling.New(&resampling.Config{
		InputRate:  sourceRate,
		OutputRate: targetRate,
		Channels:   1,
		Quality:    s.quality,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}

	in := make([]float64, len(samples))
	for i, v := range samples {
		in[i] = float64(v)
	}

	out, err := r.Process(in)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	tail, err := r.Flush()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	out = append(out, tail...)

	result := make([]float32, len(out))
	for i, v := range out {
		result[i] = float32(v)
	}

	return result, nil
}
