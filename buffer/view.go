// SPDX-License-Identifier: EPL-2.0

package buffer

import (
	"sync"
	"sync/atomic"
)

// View is a read-only window onto memory owned by an Exporter. The memory
// stays valid until Release is called; callers must not keep references
// to the samples after that.
type View struct {
	samples  []float32
	itemsize int
	shape    []int

	once     sync.Once
	release  func()
	released atomic.Bool
}

// NewView describes borrowed memory. samples is only read when itemsize is
// 4; other item sizes carry their geometry alone. release may be nil.
func NewView(samples []float32, itemsize int, shape []int, release func()) *View {
	return &View{
		samples:  samples,
		itemsize: itemsize,
		shape:    shape,
		release:  release,
	}
}

// Itemsize is the size of one element in bytes.
func (v *View) Itemsize() int { return v.itemsize }

// Ndim is the number of dimensions.
func (v *View) Ndim() int { return len(v.shape) }

// Shape returns a copy of the dimension lengths.
func (v *View) Shape() []int { return append([]int(nil), v.shape...) }

// Len is the total number of elements.
func (v *View) Len() int {
	if len(v.shape) == 0 {
		return 0
	}

	n := 1
	for _, d := range v.shape {
		n *= d
	}
	return n
}

// Float32s returns the borrowed samples in row-major order, or nil when
// the elements are not 4 bytes wide or the view was released.
func (v *View) Float32s() []float32 {
	if v.itemsize != 4 || v.released.Load() {
		return nil
	}
	return v.samples
}

// Release hands the memory back to the exporter. Only the first call has
// an effect; later calls report ErrReleased.
func (v *View) Release() error {
	err := ErrReleased
	v.once.Do(func() {
		err = nil
		v.released.Store(true)
		v.samples = nil
		if v.release != nil {
			v.release()
		}
	})

	return err
}

// Released reports whether Release has run.
func (v *View) Released() bool { return v.released.Load() }
