// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

const (
	defaultBufSize = 4096
	maxIdleReads   = 100
)

// ReadAll drains src and returns every interleaved sample it produced.
// bufferSize <= 0 falls back to src.BufSize(), then to 4096.
func ReadAll(src Source, bufferSize int) ([]float32, error) {
	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}
	if bufferSize <= 0 {
		bufferSize = defaultBufSize
	}

	channels := max(src.Channels(), 1)
	if rem := bufferSize % channels; rem != 0 {
		bufferSize += channels - rem
	}

	buf := make([]float32, bufferSize)
	out := make([]float32, 0, bufferSize)
	idle := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n > 0 {
			idle = 0
			continue
		}
		if idle++; idle >= maxIdleReads {
			return nil, io.ErrNoProgress
		}
	}
}

// ReadMono drains src through a MonoMixer.
func ReadMono(src Source, bufferSize int) ([]float32, error) {
	if src.Channels() <= 0 {
		return nil, ErrNoChannels
	}

	return ReadAll(NewMonoMixer(src), bufferSize)
}
