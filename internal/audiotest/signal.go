// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"
	"math/rand/v2"
)

// Sine returns seconds of a sine tone at rate.
func Sine(rate, seconds, frequency, amplitude float64) []float32 {
	out := make([]float32, int(rate*seconds))
	for i := range out {
		out[i] = float32(amplitude * math.Sin(2*math.Pi*frequency*float64(i)/rate))
	}

	return out
}

// Noise returns deterministic white noise for a given seed.
func Noise(n int, amplitude float64, seed uint64) []float32 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	out := make([]float32, n)
	for i := range out {
		out[i] = float32(amplitude * (2*rng.Float64() - 1))
	}

	return out
}

// Mix adds b onto a copy of a; the result has the length of a.
func Mix(a, b []float32) []float32 {
	out := make([]float32, len(a))
	copy(out, a)
	for i := range min(len(a), len(b)) {
		out[i] += b[i]
	}

	return out
}
