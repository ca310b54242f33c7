// SPDX-License-Identifier: EPL-2.0

// Package buffer lends sample memory to the comparison pipeline.
//
// An Exporter produces a View: the element size, the shape and, for 4-byte
// elements, the float32 samples themselves. Views borrow memory and must be
// released exactly once:
//
//	v, err := buffer.Float32s(samples).View()
//	if err != nil {
//	    return err
//	}
//	defer v.Release()
//
// Callers never receive a copy of a []float32 that is already contiguous
// and one dimensional.
package buffer
