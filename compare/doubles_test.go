// SPDX-License-Identifier: EPL-2.0

package compare

import (
	"github.com/ik5/ohrli/buffer"
	"github.com/ik5/ohrli/engine"
)

// countingExporter records every view it hands out and gets back.
type countingExporter struct {
	data     []float32
	itemsize int
	shape    []int
	err      error

	acquired int
	released int
}

func float32Exporter(data []float32) *countingExporter {
	return &countingExporter{data: data, itemsize: 4, shape: []int{len(data)}}
}

func (c *countingExporter) View() (*buffer.View, error) {
	if c.err != nil {
		return nil, c.err
	}

	c.acquired++
	return buffer.NewView(c.data, c.itemsize, c.shape, func() { c.released++ }), nil
}

// countingResampler passes samples through and counts calls per source rate.
type countingResampler struct {
	calls map[float64]int
	err   error
}

func newCountingResampler() *countingResampler {
	return &countingResampler{calls: make(map[float64]int)}
}

func (r *countingResampler) Resample(samples []float32, from, to float64) ([]float32, error) {
	r.calls[from]++
	if r.err != nil {
		return nil, r.err
	}
	return append([]float32(nil), samples...), nil
}

func (r *countingResampler) total() int {
	n := 0
	for _, c := range r.calls {
		n += c
	}
	return n
}

// faultyEngine wraps the spectral engine with counters and fault injection.
type faultyEngine struct {
	inner     engine.Engine
	analyzed  [][]float32
	failAfter int // Analyze fails once this many calls succeeded; -1 never
	err       error
	panicWith any
}

func newFaultyEngine() *faultyEngine {
	return &faultyEngine{inner: engine.NewSpectral(), failAfter: -1}
}

func (f *faultyEngine) Analyze(samples []float32) (*engine.Spectrogram, error) {
	if f.failAfter >= 0 && len(f.analyzed) >= f.failAfter {
		if f.panicWith != nil {
			panic(f.panicWith)
		}
		return nil, f.err
	}

	f.analyzed = append(f.analyzed, samples)
	return f.inner.Analyze(samples)
}

func (f *faultyEngine) Distance(a, b *engine.Spectrogram) float64 {
	if f.panicWith != nil && f.failAfter < 0 {
		panic(f.panicWith)
	}
	return f.inner.Distance(a, b)
}

func (f *faultyEngine) factory() engine.Factory {
	return func() engine.Engine { return f }
}
