// SPDX-License-Identifier: EPL-2.0

package ohrli

import (
	"math"
	"strconv"
	"strings"

	"github.com/ik5/ohrli/buffer"
	"github.com/ik5/ohrli/compare"
)

// CompareAudioArrays takes exactly audio_a, sample_rate_a, audio_b and
// sample_rate_b and returns the MOS of b against a. Buffers are anything
// buffer.FromAny accepts; rates are any Go number, a numeric string or a
// value with a Float64() (float64, error) method.
func CompareAudioArrays(args ...any) (float64, error) {
	return Default().CompareAudioArrays(args...)
}

// CompareAudioArraysDistance is CompareAudioArrays returning the raw distance.
func CompareAudioArraysDistance(args ...any) (float64, error) {
	return Default().CompareAudioArraysDistance(args...)
}

func (c *Comparer) CompareAudioArrays(args ...any) (float64, error) {
	return c.run(compare.VariantMOS, args)
}

func (c *Comparer) CompareAudioArraysDistance(args ...any) (float64, error) {
	return c.run(compare.VariantDistance, args)
}

func (c *Comparer) run(variant compare.Variant, args []any) (float64, error) {
	if len(args) != 4 {
		return 0, compare.Usagef("expected 4 arguments: audio_a, sample_rate_a, audio_b, sample_rate_b, got %d", len(args))
	}

	rateA, ok := toFloat(args[1])
	if !ok {
		return 0, compare.Usage("sample_rate_a must be a float")
	}
	rateB, ok := toFloat(args[3])
	if !ok {
		return 0, compare.Usage("sample_rate_b must be a float")
	}

	a, err := buffer.FromAny(args[0])
	if err != nil {
		return 0, compare.Usage("audio_a is not a valid buffer")
	}
	b, err := buffer.FromAny(args[2])
	if err != nil {
		return 0, compare.Usage("audio_b is not a valid buffer")
	}

	return c.pipeline.Run(variant, a, rateA, b, rateB)
}

type float64er interface {
	Float64() (float64, error)
}

// toFloat accepts any Go number, a bool as 1 or 0, json.Number and
// numeric strings.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case float64er:
		f, err := x.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// CompareAudio compares two mono signals. It refuses empty input and
// non-positive rates before doing any work.
func CompareAudio(a []float32, rateA float64, b []float32, rateB float64, returnDistance bool) (float64, error) {
	return Default().CompareAudio(a, rateA, b, rateB, returnDistance)
}

func (c *Comparer) CompareAudio(a []float32, rateA float64, b []float32, rateB float64, returnDistance bool) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, compare.Usage("audio arrays cannot be empty")
	}
	if !positive(rateA) || !positive(rateB) {
		return 0, compare.Usage("sample rates must be positive")
	}

	variant := compare.VariantMOS
	if returnDistance {
		variant = compare.VariantDistance
	}

	return c.pipeline.Run(variant, buffer.Float32s(a), rateA, buffer.Float32s(b), rateB)
}

func positive(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 0)
}
