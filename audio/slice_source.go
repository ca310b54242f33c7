// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// SliceSource serves interleaved samples that are already in memory.
// The slice is read, never modified.
type SliceSource struct {
	samples    []float32
	sampleRate int
	channels   int
	offset     int
}

func NewSliceSource(samples []float32, sampleRate, channels int) *SliceSource {
	return &SliceSource{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   max(channels, 1),
	}
}

func (s *SliceSource) SampleRate() int { return s.sampleRate }
func (s *SliceSource) Channels() int   { return s.channels }
func (s *SliceSource) BufSize() int    { return defaultBufSize }
func (s *SliceSource) Close() error    { return nil }

// ReadSamples copies whole frames only.
func (s *SliceSource) ReadSamples(dst []float32) (int, error) {
	if s.offset >= len(s.samples) {
		return 0, io.EOF
	}

	n := len(dst) - len(dst)%s.channels
	n = copy(dst[:n], s.samples[s.offset:])
	s.offset += n

	if s.offset >= len(s.samples) {
		return n, io.EOF
	}

	return n, nil
}
