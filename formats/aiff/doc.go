// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// Samples are big-endian signed integers of 8, 16, 24 or 32 bits and come
// out as float32 in [-1, 1]. Compressed AIFF-C is rejected with
// ErrUnsupportedBitDepth or ErrUnsupportedAiffLayout depending on how the
// header reads.
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not an AIFF stream
//	}
package aiff
