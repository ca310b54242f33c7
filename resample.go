// SPDX-License-Identifier: EPL-2.0

package ohrli

import (
	"fmt"

	"github.com/ik5/ohrli/audio"
	"github.com/ik5/ohrli/engine"
	"github.com/ik5/ohrli/utils"
)

// ResampleToMono16 mixes src down to mono, resamples it to targetRate with
// the Comparer's resampler and returns 16-bit PCM ready for wav.WriteWAV16.
func (c *Comparer) ResampleToMono16(src audio.Source, targetRate int) ([]int16, int, error) {
	samples, err := audio.ReadMono(src, c.bufferSize)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	if src.SampleRate() != targetRate {
		samples, err = c.resampler.Resample(samples, float64(src.SampleRate()), float64(targetRate))
		if err != nil {
			return nil, 0, fmt.Errorf("%w", err)
		}
	}

	return utils.Float32sToInt16(samples), targetRate, nil
}

// ToCanonical is ResampleToMono16 at the engine rate.
func (c *Comparer) ToCanonical(src audio.Source) ([]int16, error) {
	pcm16, _, err := c.ResampleToMono16(src, engine.SampleRate)
	return pcm16, err
}
