// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"fmt"
	"math"

	"github.com/ik5/ohrli/audio"
)

// Cubic runs the streaming cubic resampler of the audio package over an
// in-memory sequence.
type Cubic struct {
	// BufferSize is the read size; zero picks the source default.
	BufferSize int
}

func (c Cubic) Resample(samples []float32, sourceRate, targetRate float64) ([]float32, error) {
	if err := checkRates(sourceRate, targetRate); err != nil {
		return nil, err
	}
	if sourceRate == targetRate {
		return clone(samples), nil
	}

	src := audio.NewSliceSource(samples, int(math.Round(sourceRate)), 1)
	out, err := audio.ReadAll(audio.NewResamplerFrom(src, sourceRate, targetRate), c.BufferSize)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return out, nil
}
