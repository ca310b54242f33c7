// SPDX-License-Identifier: EPL-2.0

package ohrli_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/ik5/ohrli"
	"github.com/ik5/ohrli/compare"
)

func sine(rate float64, seconds float64) []float32 {
	out := make([]float32, int(rate*seconds))
	for i := range out {
		out[i] = float32(0.5 * math.Sin(2*math.Pi*440*float64(i)/rate))
	}
	return out
}

func ExampleCompareAudioArrays() {
	ref := sine(48000, 0.2)

	mos, err := ohrli.CompareAudioArrays(ref, 48000, ref, 48000.0)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("MOS %.1f\n", mos)
	// Output: MOS 5.0
}

func ExampleCompareAudioArraysDistance_arity() {
	ref := sine(48000, 0.01)

	_, err := ohrli.CompareAudioArraysDistance(ref, 48000, ref)
	fmt.Println(errors.Is(err, compare.ErrUsage))
	fmt.Println(err)
	// Output:
	// true
	// expected 4 arguments: audio_a, sample_rate_a, audio_b, sample_rate_b, got 3
}

func ExampleAssessQuality() {
	ref := sine(48000, 0.2)

	_, quality, err := ohrli.AssessQuality(ref, ref, 48000)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(quality)
	// Output: Excellent
}

func ExampleSampleRate() {
	fmt.Println(ohrli.SampleRate(), ohrli.NumRotators())
	// Output: 48000 128
}
