// SPDX-License-Identifier: EPL-2.0

package ohrli

import (
	"fmt"
	"os"

	"github.com/ik5/ohrli/audio"
	"go.uber.org/zap"
)

// LoadMono decodes path, chosen by its extension, and mixes it down to
// mono. The returned rate is the file's own.
func LoadMono(path string) ([]float32, float64, error) {
	return Default().LoadMono(path)
}

func (c *Comparer) LoadMono(path string) ([]float32, float64, error) {
	dec, err := c.registry.ForPath(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	defer src.Close()

	samples, err := audio.ReadMono(src, c.bufferSize)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	c.logger.Debug("loaded",
		zap.String("path", path),
		zap.Int("rate", src.SampleRate()),
		zap.Int("channels", src.Channels()),
		zap.Int("samples", len(samples)),
	)

	return samples, float64(src.SampleRate()), nil
}

// CompareFiles loads both files and compares them at their native rates.
func CompareFiles(pathA, pathB string, returnDistance bool) (float64, error) {
	return Default().CompareFiles(pathA, pathB, returnDistance)
}

func (c *Comparer) CompareFiles(pathA, pathB string, returnDistance bool) (float64, error) {
	a, rateA, err := c.LoadMono(pathA)
	if err != nil {
		return 0, err
	}
	b, rateB, err := c.LoadMono(pathB)
	if err != nil {
		return 0, err
	}

	return c.CompareAudio(a, rateA, b, rateB, returnDistance)
}
