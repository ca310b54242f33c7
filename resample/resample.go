// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Resampler converts a mono sequence from one rate to another. The result
// is always a new slice owned by the caller.
type Resampler interface {
	Resample(samples []float32, sourceRate, targetRate float64) ([]float32, error)
}

// Func adapts a plain function to Resampler.
type Func func(samples []float32, sourceRate, targetRate float64) ([]float32, error)

func (f Func) Resample(samples []float32, sourceRate, targetRate float64) ([]float32, error) {
	return f(samples, sourceRate, targetRate)
}

const (
	KindSoxr  = "soxr"
	KindCubic = "cubic"
)

// New builds a resampler by name. quality only applies to soxr.
func New(kind, quality string) (Resampler, error) {
	switch strings.ToLower(kind) {
	case "", KindSoxr:
		return NewSoxr(quality)
	case KindCubic:
		return Cubic{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownResampler, kind)
	}
}

// Kinds lists the names New accepts.
func Kinds() []string {
	kinds := []string{KindSoxr, KindCubic}
	sort.Strings(kinds)
	return kinds
}

func checkRates(sourceRate, targetRate float64) error {
	for _, r := range [...]float64{sourceRate, targetRate} {
		if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidRate, r)
		}
	}

	return nil
}

func clone(samples []float32) []float32 {
	return append(make([]float32, 0, len(samples)), samples...)
}
