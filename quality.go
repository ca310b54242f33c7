// SPDX-License-Identifier: EPL-2.0

package ohrli

import (
	"fmt"

	"github.com/ik5/ohrli/engine"
)

// AssessQuality rates test against reference, both at rate.
func AssessQuality(reference, test []float32, rate float64) (float64, engine.Quality, error) {
	return Default().AssessQuality(reference, test, rate)
}

func (c *Comparer) AssessQuality(reference, test []float32, rate float64) (float64, engine.Quality, error) {
	mos, err := c.CompareAudio(reference, rate, test, rate, false)
	if err != nil {
		return 0, "", err
	}

	return mos, engine.QualityOf(mos), nil
}

// BatchCompare returns the MOS of every test signal against reference.
// Audio already at SampleRate skips resampling and shares one engine.
func BatchCompare(reference []float32, tests [][]float32, rate float64) ([]float64, error) {
	return Default().BatchCompare(reference, tests, rate)
}

func (c *Comparer) BatchCompare(reference []float32, tests [][]float32, rate float64) ([]float64, error) {
	if len(tests) == 0 {
		return nil, ErrEmptyBatch
	}

	scores := make([]float64, len(tests))
	for i, test := range tests {
		var (
			mos float64
			err error
		)
		if rate == engine.SampleRate {
			mos, err = c.comparator.Compare(reference, test, false)
		} else {
			mos, err = c.CompareAudio(reference, rate, test, rate, false)
		}
		if err != nil {
			return nil, fmt.Errorf("test %d: %w", i, err)
		}
		scores[i] = mos
	}

	return scores, nil
}
